package models

import "github.com/shopspring/decimal"

// EmptySummaryMessage is the message of the report built from no transactions
const EmptySummaryMessage = "No transactions to summarize"

// NoSpendingCategory is reported when every category is income
const NoSpendingCategory = "None"

// SummaryReport is the statistical view computed from a transaction collection.
// When Message is set the report is the empty sentinel and the other fields are zero.
type SummaryReport struct {
	Message         string                 `json:"message,omitempty"`
	Overview        *SummaryOverview       `json:"overview,omitempty"`
	ByCategory      []CategorySummary      `json:"by_category,omitempty"`
	TopCategories   []TopCategory          `json:"top_categories,omitempty"`
	ByUser          []UserSummary          `json:"by_user,omitempty"`
	ByPaymentMethod []PaymentMethodSummary `json:"by_payment_method,omitempty"`
	ByMonth         []MonthlySummary       `json:"by_month,omitempty"`
	Insights        *SummaryInsights       `json:"insights,omitempty"`
}

// IsEmpty reports whether this is the empty sentinel report
func (r *SummaryReport) IsEmpty() bool {
	return r.Message != ""
}

// SummaryOverview holds the collection-wide totals
type SummaryOverview struct {
	TotalTransactions  int             `json:"total_transactions"`
	TotalDebit         decimal.Decimal `json:"total_debit"`
	TotalCredit        decimal.Decimal `json:"total_credit"`
	NetBalance         decimal.Decimal `json:"net_balance"`
	AverageTransaction decimal.Decimal `json:"average_transaction"`
}

// CategorySummary contains aggregated transaction data by category
type CategorySummary struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
}

// TopCategory is an entry of the ranked category list
type TopCategory struct {
	Category         string          `json:"category"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int64           `json:"transaction_count"`
}

// UserSummary contains aggregated transaction data by user
type UserSummary struct {
	UserID           string          `json:"user_id"`
	TransactionCount int64           `json:"transaction_count"`
	TotalDebit       decimal.Decimal `json:"total_debit"`
	TotalCredit      decimal.Decimal `json:"total_credit"`
	NetBalance       decimal.Decimal `json:"net_balance"`
}

// PaymentMethodSummary counts transactions per payment method
type PaymentMethodSummary struct {
	PaymentMethod    string `json:"payment_method"`
	TransactionCount int64  `json:"count"`
}

// MonthlySummary contains aggregated transaction data per calendar month
type MonthlySummary struct {
	Month            string          `json:"month"`
	TransactionCount int64           `json:"count"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
}

// SummaryInsights holds values derived from the rollups
type SummaryInsights struct {
	TopSpendingCategory string          `json:"top_spending_category"`
	TopSpendingAmount   decimal.Decimal `json:"top_spending_amount"`
	SavingsRate         decimal.Decimal `json:"savings_rate"`
}
