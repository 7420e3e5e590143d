package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"financial-assistant/internal/dto"
	"financial-assistant/internal/errors"
	"financial-assistant/internal/models"
	"financial-assistant/internal/services"
	"financial-assistant/internal/validation"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves rule-based and model-written summaries
type SummaryHandler struct {
	catalog services.CatalogServiceInterface
	summary services.SummaryServiceInterface
	llm     services.LLMSummarizerInterface
	audit   services.SearchAuditLoggerInterface
	metrics services.MetricsRecorderInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(
	catalog services.CatalogServiceInterface,
	summary services.SummaryServiceInterface,
	llm services.LLMSummarizerInterface,
	audit services.SearchAuditLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *SummaryHandler {
	return &SummaryHandler{
		catalog: catalog,
		summary: summary,
		llm:     llm,
		audit:   audit,
		metrics: metrics,
	}
}

func (h *SummaryHandler) bindSummaryRequest(c echo.Context) (*dto.SummaryRequest, error) {
	req := dto.SummaryRequest{Limit: dto.DefaultSummaryLimit}
	if err := c.Bind(&req); err != nil {
		return nil, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	req.UserID = strings.TrimSpace(req.UserID)
	req.Category = strings.TrimSpace(req.Category)

	if err := c.Validate(&req); err != nil {
		return nil, SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	return &req, nil
}

// Summary computes the statistical report for the selected transactions
// @Summary Summarize transactions
// @Description Rule-based report for a user, a category or the first transactions of the index. A user filter wins over a category filter.
// @Tags Summary
// @Accept json
// @Produce json
// @Param request body dto.SummaryRequest false "Selection"
// @Success 200 {object} dto.SummaryResponse "Report and its text rendering"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 503 {object} errors.ErrorResponse "SEARCH_001 - Index not built"
// @Router /api/summary [post]
func (h *SummaryHandler) Summary(c echo.Context) error {
	start := time.Now()

	req, err := h.bindSummaryRequest(c)
	if req == nil {
		return err
	}

	transactions, err := h.catalog.Select(req.UserID, req.Category, req.Limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	report := h.summary.Summarize(transactions)

	h.metrics.IncrementCounter(services.MetricSummaryRequest, map[string]string{"operation": "summary"})
	h.audit.LogSummary(c.Request().Context(), "summary", len(transactions), time.Since(start))

	return c.JSON(http.StatusOK, dto.SummaryResponse{
		Summary:          report,
		TextSummary:      h.summary.RenderText(report),
		TransactionCount: len(transactions),
	})
}

// Summarize asks the language model for a written analysis of the selected transactions
// @Summary LLM summary
// @Tags Summary
// @Accept json
// @Produce json
// @Param request body dto.SummaryRequest false "Selection"
// @Success 200 {object} dto.LLMSummaryResponse "Model-written summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 502 {object} errors.ErrorResponse "LLM_002 - LLM request failed"
// @Failure 503 {object} errors.ErrorResponse "LLM_001 - LLM service not available"
// @Router /api/summarize [post]
func (h *SummaryHandler) Summarize(c echo.Context) error {
	if !h.llm.Enabled() {
		return SendError(c, errors.LLMDisabled)
	}

	start := time.Now()

	req, err := h.bindSummaryRequest(c)
	if req == nil {
		return err
	}

	transactions, err := h.catalog.Select(req.UserID, req.Category, req.Limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	ctx := c.Request().Context()
	var result models.LLMResult
	if req.UserID == "" && req.Category != "" {
		result = h.llm.CategoryAnalysis(ctx, transactions, req.Category)
	} else {
		result = h.llm.Summarize(ctx, transactions, "")
	}

	h.metrics.IncrementCounter(services.MetricSummaryRequest, map[string]string{"operation": "summarize"})
	h.audit.LogSummary(ctx, "summarize", len(transactions), time.Since(start))

	switch result.Status {
	case models.LLMStatusDisabled:
		return SendError(c, errors.LLMDisabled)
	case models.LLMStatusFailed:
		slog.WarnContext(ctx, "llm request failed", "trace_id", getTraceID(c), "error", result.Err)
		return SendError(c, errors.LLMFailed)
	}

	return c.JSON(http.StatusOK, dto.LLMSummaryResponse{
		Summary:          result.Text,
		Status:           result.Status,
		TransactionCount: len(transactions),
		Model:            result.Model,
	})
}

// Ask answers a free-form question from the first transactions of the index
// @Summary Ask a question
// @Tags Summary
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse "Answer"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 502 {object} errors.ErrorResponse "LLM_002 - LLM request failed"
// @Failure 503 {object} errors.ErrorResponse "LLM_001 - LLM service not available"
// @Router /api/ask [post]
func (h *SummaryHandler) Ask(c echo.Context) error {
	start := time.Now()

	req := dto.AskRequest{ContextLimit: dto.DefaultContextLimit}
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	req.Question = sanitizeText(req.Question)

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	if !h.llm.Enabled() {
		return SendError(c, errors.LLMDisabled)
	}

	transactions, err := h.catalog.Select("", "", req.ContextLimit)
	if err != nil {
		return SendServiceError(c, err)
	}

	ctx := c.Request().Context()
	result := h.llm.Answer(ctx, transactions, req.Question)

	h.audit.LogQuestion(ctx, req.Question, len(transactions), result.Status, time.Since(start))

	switch result.Status {
	case models.LLMStatusDisabled:
		return SendError(c, errors.LLMDisabled)
	case models.LLMStatusFailed:
		slog.WarnContext(ctx, "llm request failed", "trace_id", getTraceID(c), "error", result.Err)
		return SendError(c, errors.LLMFailed)
	}

	return c.JSON(http.StatusOK, dto.AskResponse{
		Question:    req.Question,
		Answer:      result.Text,
		Status:      result.Status,
		ContextSize: len(transactions),
	})
}
