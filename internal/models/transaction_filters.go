package models

import "github.com/shopspring/decimal"

// SearchFilters contains the structured predicates applied after similarity ranking.
// A nil field is unset.
type SearchFilters struct {
	UserID    *string
	Category  *string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// IsEmpty reports whether no filter is set
func (f SearchFilters) IsEmpty() bool {
	return f.UserID == nil && f.Category == nil && f.MinAmount == nil && f.MaxAmount == nil
}

// Matches applies all set filters as a conjunction
func (f SearchFilters) Matches(t *Transaction) bool {
	if f.UserID != nil && t.UserID != *f.UserID {
		return false
	}

	if f.Category != nil && t.Category != *f.Category {
		return false
	}

	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}

	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}

	return true
}

// ListFilters narrows a transaction listing
type ListFilters struct {
	UserID   string
	Category string
	Offset   int
	Limit    int
}
