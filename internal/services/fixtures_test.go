package services_test

import (
	"fmt"
	"log/slog"

	"financial-assistant/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

var discardLogger = slog.New(slog.DiscardHandler)

func newTransaction(id int, userID, category, txnType string, amount float64) models.Transaction {
	return models.Transaction{
		ID:            fmt.Sprintf("TXN%06d", id),
		UserID:        userID,
		Date:          "2024-03-15",
		Timestamp:     fmt.Sprintf("2024-03-15T10:%02d:00", id%60),
		Description:   gofakeit.Sentence(5),
		Merchant:      gofakeit.Company(),
		Category:      category,
		Amount:        decimal.NewFromFloat(amount),
		Currency:      models.DefaultCurrency,
		Type:          txnType,
		PaymentMethod: models.PaymentMethodUPI,
		Status:        models.TransactionStatusCompleted,
		Location:      gofakeit.City(),
	}
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID: "TXN000001", UserID: "USER001", Date: "2024-01-05", Timestamp: "2024-01-05T09:15:00",
			Description: "Coffee Shop at Blue Tokai", Merchant: "Coffee Shop - Blue Tokai",
			Category: models.CategoryFoodDining, Subcategory: "Coffee Shop",
			Amount: decimal.NewFromFloat(250), Currency: "INR", Type: models.TransactionTypeDebit,
			PaymentMethod: models.PaymentMethodUPI, Status: models.TransactionStatusCompleted, Location: "Pune",
		},
		{
			ID: "TXN000002", UserID: "USER001", Date: "2024-01-10", Timestamp: "2024-01-10T18:40:00",
			Description: "Flight at IndiGo", Merchant: "Flight - IndiGo",
			Category: models.CategoryTravel, Subcategory: "Flight",
			Amount: decimal.NewFromFloat(12500.5), Currency: "INR", Type: models.TransactionTypeDebit,
			PaymentMethod: models.PaymentMethodCreditCard, Status: models.TransactionStatusCompleted, Location: "Delhi",
		},
		{
			ID: "TXN000003", UserID: "USER002", Date: "2024-02-01", Timestamp: "2024-02-01T09:00:00",
			Description: "Salary at Acme Corp", Merchant: "Acme Corp",
			Category: models.CategoryIncome, Subcategory: "Salary",
			Amount: decimal.NewFromFloat(45000), Currency: "INR", Type: models.TransactionTypeCredit,
			PaymentMethod: models.PaymentMethodNetBanking, Status: models.TransactionStatusCompleted, Location: "Mumbai",
		},
		{
			ID: "TXN000004", UserID: "USER002", Date: "2024-02-03", Timestamp: "2024-02-03T13:05:00",
			Description: "Grocery Store at Fresh Mart", Merchant: "Grocery Store - Fresh Mart",
			Category: models.CategoryFoodDining, Subcategory: "Grocery Store",
			Amount: decimal.NewFromFloat(1800.25), Currency: "INR", Type: models.TransactionTypeDebit,
			PaymentMethod: models.PaymentMethodDebitCard, Status: models.TransactionStatusPending, Location: "Mumbai",
		},
		{
			ID: "TXN000005", UserID: "USER003", Date: "2024-02-11", Timestamp: "2024-02-11T20:30:00",
			Description: "Electricity Bill at Tata Power", Merchant: "Electricity Bill - Tata Power",
			Category: models.CategoryBillsUtilities, Subcategory: "Electricity Bill",
			Amount: decimal.NewFromFloat(3200), Currency: "INR", Type: models.TransactionTypeDebit,
			PaymentMethod: models.PaymentMethodNetBanking, Status: models.TransactionStatusCompleted, Location: "Chennai",
		},
		{
			ID: "TXN000006", UserID: "USER003", Date: "2024-03-02", Timestamp: "2024-03-02T11:45:00",
			Description: "Online Course at Coursera", Merchant: "Online Course - Coursera",
			Category: models.CategoryEducation, Subcategory: "Online Course",
			Amount: decimal.NewFromFloat(4999), Currency: "INR", Type: models.TransactionTypeDebit,
			PaymentMethod: models.PaymentMethodCreditCard, Status: models.TransactionStatusCompleted, Location: "Chennai",
		},
	}
}
