package database

import (
	"fmt"
	"testing"

	"financial-assistant/internal/config"
	"financial-assistant/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Each new connection to ":memory:" is a fresh database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DatabaseDriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestTransaction inserts a debit transaction for userID at position
func CreateTestTransaction(t *testing.T, db *DB, userID string, position int64) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		ID:            fmt.Sprintf("TXN%06d", position+1),
		Position:      position,
		UserID:        userID,
		Date:          "2024-03-15",
		Timestamp:     "2024-03-15T12:30:00",
		Description:   "Restaurant at Test Kitchen",
		Merchant:      "Restaurant - Test Kitchen",
		Category:      models.CategoryFoodDining,
		Subcategory:   "Restaurant",
		Amount:        decimal.NewFromFloat(250.75),
		Currency:      models.DefaultCurrency,
		Type:          models.TransactionTypeDebit,
		PaymentMethod: models.PaymentMethodUPI,
		Status:        models.TransactionStatusCompleted,
		Location:      "Mumbai",
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup table transactions: %v", err)
	}
}
