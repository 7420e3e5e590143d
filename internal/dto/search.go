package dto

import (
	"financial-assistant/internal/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultTopK = 10
	MaxTopK     = 100
)

// SearchRequest is the body of POST /api/search
type SearchRequest struct {
	Query     string           `json:"query" validate:"required,max=500,safe_text"`
	TopK      int              `json:"top_k" validate:"min=1,max=100"`
	UserID    *string          `json:"user_id,omitempty" validate:"omitempty,user_id"`
	Category  *string          `json:"category,omitempty" validate:"omitempty,max=50,no_markup"`
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
}

// SearchQueryParams are the query parameters of GET /api/search
type SearchQueryParams struct {
	Query     string `query:"q" validate:"required,max=500,safe_text"`
	TopK      int    `query:"top_k" validate:"min=1,max=100"`
	UserID    string `query:"user_id" validate:"omitempty,user_id"`
	Category  string `query:"category" validate:"omitempty,max=50,no_markup"`
	MinAmount string `query:"min_amount"`
	MaxAmount string `query:"max_amount"`
}

// Filters converts the optional body fields into search filters. Blank strings are unset.
func (r *SearchRequest) Filters() models.SearchFilters {
	var filters models.SearchFilters
	if r.UserID != nil && *r.UserID != "" {
		filters.UserID = r.UserID
	}
	if r.Category != nil && *r.Category != "" {
		filters.Category = r.Category
	}
	filters.MinAmount = r.MinAmount
	filters.MaxAmount = r.MaxAmount
	return filters
}

// SearchResponse is returned by both search endpoints
type SearchResponse struct {
	Query        string                `json:"query"`
	TotalResults int                   `json:"total_results"`
	Results      []models.SearchResult `json:"results"`
}
