package repositories

import (
	"financial-assistant/internal/models"
)

// TransactionRepositoryInterface defines the contract for the transaction store.
// Transactions come back in the order they were stored.
type TransactionRepositoryInterface interface {
	ListAll() ([]models.Transaction, error)
	ReplaceAll(transactions []models.Transaction) error
	Count() (int64, error)
	Source() string
}
