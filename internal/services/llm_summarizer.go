package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"financial-assistant/internal/config"
	"financial-assistant/internal/models"

	"google.golang.org/genai"
)

const (
	FocusSpending = "spending patterns and budget optimization"

	msgNothingToSummarize = "No transactions found to summarize."
	msgNothingToAnswer    = "No transaction data available to answer the question."
	msgEmptyCategoryFmt   = "No transactions found in category: %s"

	defaultMaxTransactions = 50
	defaultContextSize     = 30
)

// GenerateContentAPI is the part of the genai client used for text generation.
// *genai.Models satisfies it.
type GenerateContentAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type llmSummarizer struct {
	api             GenerateContentAPI
	model           string
	maxTransactions int
	contextSize     int
	temperature     float32
	timeout         time.Duration
	breaker         CircuitBreakerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewLLMSummarizer returns a Gemini-backed summarizer, or a disabled one when api is nil
func NewLLMSummarizer(
	api GenerateContentAPI,
	cfg *config.LLMConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LLMSummarizerInterface {
	if api == nil {
		return NewDisabledLLMSummarizer()
	}

	maxTxns := cfg.MaxTransactions
	if maxTxns <= 0 {
		maxTxns = defaultMaxTransactions
	}
	contextSize := cfg.ContextSize
	if contextSize <= 0 {
		contextSize = defaultContextSize
	}

	return &llmSummarizer{
		api:             api,
		model:           cfg.Model,
		maxTransactions: maxTxns,
		contextSize:     contextSize,
		temperature:     float32(cfg.Temperature),
		timeout:         cfg.Timeout,
		breaker:         breaker,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *llmSummarizer) Enabled() bool {
	return true
}

func (s *llmSummarizer) Model() string {
	return s.model
}

func (s *llmSummarizer) Summarize(ctx context.Context, transactions []models.Transaction, focus string) models.LLMResult {
	if len(transactions) == 0 {
		return models.LLMResult{Status: models.LLMStatusEmpty, Text: msgNothingToSummarize, Model: s.model}
	}
	return s.generate(ctx, "summarize", summaryPrompt(transactions, s.maxTransactions, focus))
}

func (s *llmSummarizer) SpendingInsights(ctx context.Context, transactions []models.Transaction) models.LLMResult {
	return s.Summarize(ctx, transactions, FocusSpending)
}

func (s *llmSummarizer) CategoryAnalysis(ctx context.Context, transactions []models.Transaction, category string) models.LLMResult {
	matching := filterCategory(transactions, category)
	if len(matching) == 0 {
		return models.LLMResult{Status: models.LLMStatusEmpty, Text: fmt.Sprintf(msgEmptyCategoryFmt, category), Model: s.model}
	}
	return s.Summarize(ctx, matching, CategoryFocus(category))
}

func (s *llmSummarizer) Answer(ctx context.Context, transactions []models.Transaction, question string) models.LLMResult {
	if len(transactions) == 0 {
		return models.LLMResult{Status: models.LLMStatusEmpty, Text: msgNothingToAnswer, Model: s.model}
	}
	return s.generate(ctx, "answer", questionPrompt(transactions, s.contextSize, question))
}

func (s *llmSummarizer) generate(ctx context.Context, operation, prompt string) models.LLMResult {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	var text string
	err := Execute(s.breaker, func() error {
		resp, err := s.api.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature: genai.Ptr(s.temperature),
		})
		if err != nil {
			return err
		}
		if resp == nil {
			return errors.New("empty response from model")
		}
		text = strings.TrimSpace(resp.Text())
		if text == "" {
			return errors.New("empty response from model")
		}
		return nil
	})
	s.metrics.RecordProcessingTime(MetricLLMDuration, time.Since(start))

	if err != nil {
		s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": operation, "status": string(models.LLMStatusFailed)})
		s.logger.WarnContext(ctx, "LLM request failed",
			"operation", operation,
			"model", s.model,
			"error", err,
		)
		return models.LLMResult{
			Status: models.LLMStatusFailed,
			Model:  s.model,
			Err:    fmt.Errorf("%w: %w", ErrLLMUnavailable, err),
		}
	}

	s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": operation, "status": string(models.LLMStatusOK)})
	return models.LLMResult{Status: models.LLMStatusOK, Text: text, Model: s.model}
}

// CategoryFocus is the focus used for a category analysis
func CategoryFocus(category string) string {
	return category + " expenses and optimization opportunities"
}

func filterCategory(transactions []models.Transaction, category string) []models.Transaction {
	out := make([]models.Transaction, 0)
	for i := range transactions {
		if transactions[i].Category == category {
			out = append(out, transactions[i])
		}
	}
	return out
}

func summaryPrompt(transactions []models.Transaction, limit int, focus string) string {
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}

	lines := make([]string, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		lines[i] = fmt.Sprintf("- %s | Category: %s | Amount: ₹%s | Type: %s | Date: %s",
			orDefault(t.Description, models.UnknownLabel),
			orDefault(t.Category, "N/A"),
			t.Amount.String(),
			orDefault(t.Type, "N/A"),
			orDefault(t.Date, "N/A"),
		)
	}

	focusInstruction := ""
	if focus != "" {
		focusInstruction = " Focus particularly on " + focus + "."
	}

	return fmt.Sprintf(`You are a financial advisor analyzing transaction data.
Provide a clear, concise summary of the following financial transactions.%s

Include:
1. Overall spending patterns
2. Top spending categories
3. Notable transactions or trends
4. Financial health insights
5. Actionable recommendations

Transactions (%d shown):
%s

Provide a professional, helpful summary in 200-300 words.`, focusInstruction, len(transactions), strings.Join(lines, "\n"))
}

func questionPrompt(transactions []models.Transaction, limit int, question string) string {
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}

	lines := make([]string, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		lines[i] = fmt.Sprintf("%s - ₹%s (%s) on %s", t.Description, t.Amount.String(), t.Category, t.Date)
	}

	return fmt.Sprintf(`You are a financial advisor with access to transaction data.

Transaction Data (sample):
%s

User Question: %s

Provide a clear, accurate answer based on the transaction data. If the data doesn't contain enough information to answer fully, say so and provide what insights you can.`, strings.Join(lines, "\n"), question)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

type disabledLLMSummarizer struct{}

// NewDisabledLLMSummarizer returns a summarizer whose calls all report LLMStatusDisabled
func NewDisabledLLMSummarizer() LLMSummarizerInterface {
	return disabledLLMSummarizer{}
}

func (disabledLLMSummarizer) Enabled() bool { return false }

func (disabledLLMSummarizer) Model() string { return "" }

func (d disabledLLMSummarizer) Summarize(context.Context, []models.Transaction, string) models.LLMResult {
	return d.result()
}

func (d disabledLLMSummarizer) SpendingInsights(context.Context, []models.Transaction) models.LLMResult {
	return d.result()
}

func (d disabledLLMSummarizer) CategoryAnalysis(context.Context, []models.Transaction, string) models.LLMResult {
	return d.result()
}

func (d disabledLLMSummarizer) Answer(context.Context, []models.Transaction, string) models.LLMResult {
	return d.result()
}

func (disabledLLMSummarizer) result() models.LLMResult {
	return models.LLMResult{
		Status: models.LLMStatusDisabled,
		Text:   ErrLLMDisabled.Error(),
		Err:    ErrLLMDisabled,
	}
}
