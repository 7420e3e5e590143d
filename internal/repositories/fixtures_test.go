package repositories

import (
	"fmt"

	"financial-assistant/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

func fakeTransactions(faker *gofakeit.Faker, n int) []models.Transaction {
	transactions := make([]models.Transaction, n)
	for i := range transactions {
		category := models.AllCategories()[faker.IntN(len(models.AllCategories()))]
		txnType := models.TransactionTypeDebit
		if category == models.CategoryIncome {
			txnType = models.TransactionTypeCredit
		}
		ts := faker.PastDate()

		transactions[i] = models.Transaction{
			ID:            fmt.Sprintf("TXN%06d", i+1),
			UserID:        fmt.Sprintf("USER%03d", faker.IntRange(1, 3)),
			Date:          ts.Format("2006-01-02"),
			Timestamp:     ts.Format("2006-01-02T15:04:05"),
			Description:   faker.Sentence(4),
			Merchant:      faker.Company(),
			Category:      category,
			Amount:        decimal.NewFromFloat(faker.Price(50, 5000)).Round(2),
			Currency:      models.DefaultCurrency,
			Type:          txnType,
			PaymentMethod: models.PaymentMethodUPI,
			Status:        models.TransactionStatusCompleted,
			Location:      faker.City(),
		}
	}
	return transactions
}
