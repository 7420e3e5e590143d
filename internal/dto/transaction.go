package dto

import "financial-assistant/internal/models"

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// ListTransactionsParams are the query parameters of GET /api/transactions
type ListTransactionsParams struct {
	UserID   string `query:"user_id" validate:"omitempty,user_id"`
	Category string `query:"category" validate:"omitempty,max=50,no_markup"`
	Limit    int    `query:"limit" validate:"min=1,max=500"`
	Offset   int    `query:"offset" validate:"min=0"`
}

// Filters converts the params into catalog list filters
func (p *ListTransactionsParams) Filters() models.ListFilters {
	return models.ListFilters{
		UserID:   p.UserID,
		Category: p.Category,
		Offset:   p.Offset,
		Limit:    p.Limit,
	}
}

// ListTransactionsResponse is one page of the collection
type ListTransactionsResponse struct {
	Total        int                  `json:"total"`
	Count        int                  `json:"count"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
	HasMore      bool                 `json:"has_more"`
	Transactions []models.Transaction `json:"transactions"`
}

// NewListTransactionsResponse builds the response from a catalog page
func NewListTransactionsResponse(page *models.TransactionPage) ListTransactionsResponse {
	txns := page.Transactions
	if txns == nil {
		txns = []models.Transaction{}
	}
	return ListTransactionsResponse{
		Total:        page.Total,
		Count:        page.Count,
		Offset:       page.Offset,
		Limit:        page.Limit,
		HasMore:      page.HasMore,
		Transactions: txns,
	}
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type UsersResponse struct {
	Users []string `json:"users"`
}
