package models

import "github.com/shopspring/decimal"

// TransactionStats describes the whole indexed collection
type TransactionStats struct {
	TotalTransactions int              `json:"total_transactions"`
	TotalUsers        int              `json:"total_users"`
	Users             []string         `json:"users"`
	Categories        map[string]int64 `json:"categories"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	TotalDebit        decimal.Decimal  `json:"total_debit"`
	TotalCredit       decimal.Decimal  `json:"total_credit"`
	NetBalance        decimal.Decimal  `json:"net_balance"`
}

// TransactionPage is one page of a transaction listing
type TransactionPage struct {
	Total        int           `json:"total"`
	Count        int           `json:"count"`
	Offset       int           `json:"offset"`
	Limit        int           `json:"limit"`
	HasMore      bool          `json:"has_more"`
	Transactions []Transaction `json:"transactions"`
}
