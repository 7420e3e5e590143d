package services

import (
	"slices"
	"sort"
	"time"

	"financial-assistant/internal/models"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const (
	// filteredListingCap bounds user and category listings before pagination
	filteredListingCap = 1000

	cacheKeyStats      = "stats"
	cacheKeyCategories = "categories"
	cacheKeyUsers      = "users"
)

type catalogService struct {
	index EmbeddingIndexServiceInterface
	cache *cache.Cache
}

// NewCatalogService creates a catalog over the published snapshot. Derived
// listings are cached per snapshot generation for ttl.
func NewCatalogService(index EmbeddingIndexServiceInterface, ttl, cleanupInterval time.Duration) CatalogServiceInterface {
	return &catalogService{
		index: index,
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (s *catalogService) snapshot() (*models.IndexSnapshot, error) {
	snap := s.index.Snapshot()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap, nil
}

// cached returns the value stored for key in the current generation, computing it on a miss
func cached[T any](s *catalogService, snap *models.IndexSnapshot, key string, compute func() T) T {
	fullKey := snap.Generation + ":" + key
	if v, ok := s.cache.Get(fullKey); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}

	v := compute()
	s.cache.SetDefault(fullKey, v)
	return v
}

func (s *catalogService) Stats() (*models.TransactionStats, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return cached(s, snap, cacheKeyStats, func() *models.TransactionStats {
		return computeStats(snap.Transactions)
	}), nil
}

func computeStats(transactions []models.Transaction) *models.TransactionStats {
	users := make(map[string]struct{})
	categories := make(map[string]int64)
	var total, debit, credit decimal.Decimal

	for i := range transactions {
		txn := &transactions[i]
		users[txn.UserID] = struct{}{}
		categories[models.LabelOrUnknown(txn.Category)]++

		total = total.Add(txn.Amount)
		switch txn.Type {
		case models.TransactionTypeDebit:
			debit = debit.Add(txn.Amount)
		case models.TransactionTypeCredit:
			credit = credit.Add(txn.Amount)
		}
	}

	userList := make([]string, 0, len(users))
	for id := range users {
		userList = append(userList, id)
	}
	sort.Strings(userList)

	return &models.TransactionStats{
		TotalTransactions: len(transactions),
		TotalUsers:        len(userList),
		Users:             userList,
		Categories:        categories,
		TotalAmount:       roundMoney(total),
		TotalDebit:        roundMoney(debit),
		TotalCredit:       roundMoney(credit),
		NetBalance:        roundMoney(credit.Sub(debit)),
	}
}

func (s *catalogService) Categories() ([]string, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return cached(s, snap, cacheKeyCategories, func() []string {
		return distinct(snap.Transactions, func(t *models.Transaction) string {
			return models.LabelOrUnknown(t.Category)
		})
	}), nil
}

func (s *catalogService) Users() ([]string, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return cached(s, snap, cacheKeyUsers, func() []string {
		return distinct(snap.Transactions, func(t *models.Transaction) string {
			return models.LabelOrUnknown(t.UserID)
		})
	}), nil
}

func distinct(transactions []models.Transaction, key func(*models.Transaction) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range transactions {
		k := key(&transactions[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ListTransactions pages through the collection. A user or category filter
// selects the newest matches first, capped at 1000 entries.
func (s *catalogService) ListTransactions(filters models.ListFilters) (*models.TransactionPage, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	var matches []models.Transaction
	switch {
	case filters.UserID != "":
		matches = newestMatching(snap.Transactions, filteredListingCap, func(t *models.Transaction) bool {
			return t.UserID == filters.UserID
		})
	case filters.Category != "":
		matches = newestMatching(snap.Transactions, filteredListingCap, func(t *models.Transaction) bool {
			return t.Category == filters.Category
		})
	default:
		matches = snap.Transactions
	}

	offset := max(filters.Offset, 0)
	limit := max(filters.Limit, 0)

	total := len(matches)
	start := min(offset, total)
	end := min(start+limit, total)
	page := matches[start:end]

	return &models.TransactionPage{
		Total:        total,
		Count:        len(page),
		Offset:       offset,
		Limit:        limit,
		HasMore:      offset+limit < total,
		Transactions: page,
	}, nil
}

// Select returns up to limit transactions of a user (newest first), else of a
// category (newest first), else the first limit in collection order.
func (s *catalogService) Select(userID, category string, limit int) ([]models.Transaction, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []models.Transaction{}, nil
	}

	switch {
	case userID != "":
		return newestMatching(snap.Transactions, limit, func(t *models.Transaction) bool {
			return t.UserID == userID
		}), nil
	case category != "":
		return newestMatching(snap.Transactions, limit, func(t *models.Transaction) bool {
			return t.Category == category
		}), nil
	default:
		return snap.Transactions[:min(limit, len(snap.Transactions))], nil
	}
}

// newestMatching returns up to limit matching transactions ordered by timestamp
// descending. Equal timestamps keep collection order.
func newestMatching(transactions []models.Transaction, limit int, match func(*models.Transaction) bool) []models.Transaction {
	out := make([]models.Transaction, 0)
	for i := range transactions {
		if match(&transactions[i]) {
			out = append(out, transactions[i])
		}
	}

	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		default:
			return 0
		}
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
