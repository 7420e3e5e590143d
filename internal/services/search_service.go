package services

import (
	"context"
	"strings"
	"time"

	"financial-assistant/internal/models"

	"github.com/shopspring/decimal"
)

// candidateMultiplier is how many nearest neighbours are fetched per requested result
const candidateMultiplier = 2

type searchService struct {
	index   EmbeddingIndexServiceInterface
	metrics MetricsRecorderInterface
	audit   SearchAuditLoggerInterface
}

func NewSearchService(index EmbeddingIndexServiceInterface, metrics MetricsRecorderInterface, audit SearchAuditLoggerInterface) SearchServiceInterface {
	return &searchService{
		index:   index,
		metrics: metrics,
		audit:   audit,
	}
}

// Search fetches 2*topK candidates and keeps those matching every filter, in
// similarity order, until topK are collected. Fewer results is not an error.
func (s *searchService) Search(ctx context.Context, query string, topK int, filters models.SearchFilters) ([]models.SearchResult, error) {
	start := time.Now()

	results, err := s.search(ctx, query, topK, filters)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime(MetricSearchDuration, duration)

	if err != nil {
		s.metrics.IncrementCounter(MetricSearchRequest, map[string]string{"status": "failed"})
		s.audit.LogSearchFailed(ctx, query, err, duration)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricSearchRequest, map[string]string{"status": "success"})
	s.audit.LogSearch(ctx, query, topK, len(results), duration)
	return results, nil
}

func (s *searchService) search(ctx context.Context, query string, topK int, filters models.SearchFilters) ([]models.SearchResult, error) {
	if topK <= 0 {
		return nil, ErrInvalidTopK
	}
	if !s.index.Ready() {
		return nil, ErrNotReady
	}

	candidates, err := s.index.Search(ctx, query, topK*candidateMultiplier)
	if err != nil {
		return nil, err
	}

	if filters.IsEmpty() {
		if len(candidates) > topK {
			candidates = candidates[:topK]
		}
		return candidates, nil
	}

	results := make([]models.SearchResult, 0, topK)
	for i := range candidates {
		if !filters.Matches(&candidates[i].Transaction) {
			continue
		}
		results = append(results, candidates[i])
		if len(results) == topK {
			break
		}
	}
	return results, nil
}

// ParseFilters builds search filters from raw request values. Blank values are unset.
func ParseFilters(userID, category, minAmount, maxAmount string) (models.SearchFilters, error) {
	var filters models.SearchFilters

	if v := strings.TrimSpace(userID); v != "" {
		filters.UserID = &v
	}
	if v := strings.TrimSpace(category); v != "" {
		filters.Category = &v
	}

	lower, err := parseAmountFilter("min_amount", minAmount)
	if err != nil {
		return models.SearchFilters{}, err
	}
	filters.MinAmount = lower

	upper, err := parseAmountFilter("max_amount", maxAmount)
	if err != nil {
		return models.SearchFilters{}, err
	}
	filters.MaxAmount = upper

	return filters, nil
}

func parseAmountFilter(field, raw string) (*decimal.Decimal, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(v)
	if err != nil {
		return nil, &InvalidFilterError{Field: field, Value: raw}
	}
	return &amount, nil
}
