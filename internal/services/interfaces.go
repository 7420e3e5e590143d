package services

import (
	"context"
	"time"

	"financial-assistant/internal/models"

	"github.com/shopspring/decimal"
)

// EmbeddingIndexServiceInterface maintains the similarity index over transaction text
type EmbeddingIndexServiceInterface interface {
	// Build embeds every transaction and atomically publishes a new snapshot
	Build(ctx context.Context, transactions []models.Transaction) error

	// Search returns up to k nearest transactions to query, closest first
	Search(ctx context.Context, query string, k int) ([]models.SearchResult, error)

	// Rebuild is Build that returns the snapshot it published and, with
	// persist set, writes exactly that snapshot to the snapshot store
	Rebuild(ctx context.Context, transactions []models.Transaction, persist bool) (*models.IndexSnapshot, error)

	// Persist writes the published snapshot to the snapshot store
	Persist(ctx context.Context) error

	// Load reads, verifies and publishes the snapshot held by the snapshot store
	Load(ctx context.Context) error

	Ready() bool
	Snapshot() *models.IndexSnapshot
	Transactions() []models.Transaction
}

// SearchServiceInterface runs similarity search with structured post-filters
type SearchServiceInterface interface {
	Search(ctx context.Context, query string, topK int, filters models.SearchFilters) ([]models.SearchResult, error)
}

// SummaryServiceInterface computes statistical reports over transaction collections
type SummaryServiceInterface interface {
	Summarize(transactions []models.Transaction) models.SummaryReport
	RenderText(report models.SummaryReport) string
}

// CatalogServiceInterface answers listing and statistics queries over the published snapshot
type CatalogServiceInterface interface {
	Stats() (*models.TransactionStats, error)
	Categories() ([]string, error)
	Users() ([]string, error)
	ListTransactions(filters models.ListFilters) (*models.TransactionPage, error)

	// Select picks the transactions a summary or question works on
	Select(userID, category string, limit int) ([]models.Transaction, error)
}

// LLMSummarizerInterface produces natural-language analyses of transactions
type LLMSummarizerInterface interface {
	Enabled() bool
	Model() string
	Summarize(ctx context.Context, transactions []models.Transaction, focus string) models.LLMResult
	SpendingInsights(ctx context.Context, transactions []models.Transaction) models.LLMResult
	CategoryAnalysis(ctx context.Context, transactions []models.Transaction, category string) models.LLMResult
	Answer(ctx context.Context, transactions []models.Transaction, question string) models.LLMResult
}

// IndexerInterface rebuilds the index from the configured dataset source
type IndexerInterface interface {
	Reindex(ctx context.Context) (*models.IndexSnapshot, error)
	Source() string
}

// TransactionGeneratorInterface generates synthetic transaction datasets
type TransactionGeneratorInterface interface {
	Generate(opts GeneratorOptions) []models.Transaction
	GenerateForUser(userID string, count, firstID int) []models.Transaction
	GenerateAmount(category string) (decimal.Decimal, string)
}

type TokenServiceInterface interface {
	GenerateAdminToken(subject string, ttl time.Duration) (string, time.Time, error)
	ValidateAdminToken(tokenString string) (*models.AdminClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type SearchAuditLoggerInterface interface {
	LogSearch(ctx context.Context, query string, topK, resultCount int, duration time.Duration)
	LogSearchFailed(ctx context.Context, query string, err error, duration time.Duration)
	LogSummary(ctx context.Context, operation string, transactionCount int, duration time.Duration)
	LogQuestion(ctx context.Context, question string, contextSize int, status models.LLMStatus, duration time.Duration)
	LogIndexPublished(ctx context.Context, generation string, count int, source string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
