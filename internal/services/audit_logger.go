package services

import (
	"context"
	"log/slog"
	"time"

	"financial-assistant/internal/logger"
	"financial-assistant/internal/models"
)

const maxLoggedQueryLength = 120

// SearchAuditLogger writes one structured line per user-facing operation
type SearchAuditLogger struct {
	logger *slog.Logger
}

func NewSearchAuditLogger(logger *slog.Logger) SearchAuditLoggerInterface {
	return &SearchAuditLogger{
		logger: logger,
	}
}

func (al *SearchAuditLogger) LogSearch(ctx context.Context, query string, topK, resultCount int, duration time.Duration) {
	al.logger.InfoContext(ctx, "search completed",
		slog.String("event_type", "search"),
		slog.String("query", truncateQuery(query)),
		slog.Int("top_k", topK),
		slog.Int("result_count", resultCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", logger.TraceID(ctx)),
	)
}

func (al *SearchAuditLogger) LogSearchFailed(ctx context.Context, query string, err error, duration time.Duration) {
	al.logger.WarnContext(ctx, "search failed",
		slog.String("event_type", "search_failed"),
		slog.String("query", truncateQuery(query)),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", logger.TraceID(ctx)),
	)
}

func (al *SearchAuditLogger) LogSummary(ctx context.Context, operation string, transactionCount int, duration time.Duration) {
	al.logger.InfoContext(ctx, "summary generated",
		slog.String("event_type", "summary"),
		slog.String("operation", operation),
		slog.Int("transaction_count", transactionCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", logger.TraceID(ctx)),
	)
}

func (al *SearchAuditLogger) LogQuestion(ctx context.Context, question string, contextSize int, status models.LLMStatus, duration time.Duration) {
	al.logger.InfoContext(ctx, "question answered",
		slog.String("event_type", "ask"),
		slog.String("query", truncateQuery(question)),
		slog.Int("context_size", contextSize),
		slog.String("status", string(status)),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", logger.TraceID(ctx)),
	)
}

func (al *SearchAuditLogger) LogIndexPublished(ctx context.Context, generation string, count int, source string) {
	al.logger.InfoContext(ctx, "index snapshot published",
		slog.String("event_type", "index_published"),
		slog.String("generation", generation),
		slog.Int("count", count),
		slog.String("source", source),
		slog.String("trace_id", logger.TraceID(ctx)),
	)
}

func truncateQuery(query string) string {
	runes := []rune(query)
	if len(runes) <= maxLoggedQueryLength {
		return query
	}
	return string(runes[:maxLoggedQueryLength]) + "..."
}
