package repositories

import (
	"fmt"

	"financial-assistant/internal/models"

	"gorm.io/gorm"
)

const insertBatchSize = 500

// transactionRepository implements TransactionRepositoryInterface on GORM
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// ListAll returns every stored transaction ordered by position
func (r *transactionRepository) ListAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("position ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ReplaceAll swaps the stored collection for transactions in a single database transaction
func (r *transactionRepository) ReplaceAll(transactions []models.Transaction) error {
	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return fmt.Errorf("invalid transaction at position %d: %w", i, err)
		}
		transactions[i].Position = int64(i)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}

		if len(transactions) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(&transactions, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert transactions: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

func (r *transactionRepository) Source() string {
	return "database:" + r.db.Dialector.Name()
}
