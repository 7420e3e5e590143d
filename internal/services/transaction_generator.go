package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"financial-assistant/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	historyDays          = 365
	timestampLayout      = "2006-01-02T15:04:05.000000"
	dateLayout           = "2006-01-02"
	noteProbability      = 0.3
	pendingStatusWeight  = 1
	completeStatusWeight = 3
	noteWords            = 6
)

type amountRange struct {
	min, max float64
}

// categoryAmountRanges bounds generated amounts per category. Other categories use defaultAmountRange.
var categoryAmountRanges = map[string]amountRange{
	models.CategoryIncome:         {1000, 50000},
	models.CategoryBillsUtilities: {500, 5000},
	models.CategoryTravel:         {2000, 30000},
	models.CategoryEducation:      {1000, 20000},
}

var defaultAmountRange = amountRange{50, 5000}

// GeneratorOptions controls the shape of a generated dataset
type GeneratorOptions struct {
	Users      int
	MinPerUser int
	MaxPerUser int
}

type transactionGenerator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewTransactionGenerator creates a generator. A zero seed draws a random one.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// Generate produces transactions for USER001..USERnnn with sequential TXN ids.
// Each user's block is ordered newest first.
func (g *transactionGenerator) Generate(opts GeneratorOptions) []models.Transaction {
	if opts.MaxPerUser < opts.MinPerUser {
		opts.MaxPerUser = opts.MinPerUser
	}

	var all []models.Transaction
	nextID := 1
	for user := 1; user <= opts.Users; user++ {
		g.mu.Lock()
		count := g.faker.IntRange(opts.MinPerUser, opts.MaxPerUser)
		g.mu.Unlock()

		all = append(all, g.GenerateForUser(fmt.Sprintf("USER%03d", user), count, nextID)...)
		nextID += count
	}
	return all
}

func (g *transactionGenerator) GenerateForUser(userID string, count, firstID int) []models.Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, g.transaction(userID, firstID+i))
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp > transactions[j].Timestamp
	})
	return transactions
}

func (g *transactionGenerator) GenerateAmount(category string) (decimal.Decimal, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.amount(category)
}

func (g *transactionGenerator) amount(category string) (decimal.Decimal, string) {
	r, ok := categoryAmountRanges[category]
	if !ok {
		r = defaultAmountRange
	}

	amount := decimal.NewFromFloat(g.faker.Float64Range(r.min, r.max)).Round(2)
	if category == models.CategoryIncome {
		return amount, models.TransactionTypeCredit
	}
	return amount, models.TransactionTypeDebit
}

// transaction builds one record. Callers hold g.mu.
func (g *transactionGenerator) transaction(userID string, id int) models.Transaction {
	f := g.faker
	categories := models.AllCategories()
	category := categories[f.IntN(len(categories))]
	subcategories := models.CategorySubcategories[category]
	subcategory := subcategories[f.IntN(len(subcategories))]

	amount, txnType := g.amount(category)

	when := g.now().Add(-time.Duration(f.IntRange(0, historyDays)) * 24 * time.Hour)

	merchant := f.Company()
	if category != models.CategoryIncome {
		merchant = subcategory + " - " + merchant
	}

	status := models.TransactionStatusCompleted
	if f.IntN(completeStatusWeight+pendingStatusWeight) < pendingStatusWeight {
		status = models.TransactionStatusPending
	}

	notes := ""
	if f.Float64() < noteProbability {
		notes = f.Sentence(noteWords)
	}

	paymentMethods := models.AllPaymentMethods()

	return models.Transaction{
		ID:            fmt.Sprintf("TXN%06d", id),
		UserID:        userID,
		Date:          when.Format(dateLayout),
		Timestamp:     when.Format(timestampLayout),
		Description:   subcategory + " at " + merchant,
		Merchant:      merchant,
		Category:      category,
		Subcategory:   subcategory,
		Amount:        amount,
		Currency:      models.DefaultCurrency,
		Type:          txnType,
		PaymentMethod: paymentMethods[f.IntN(len(paymentMethods))],
		Status:        status,
		Location:      f.City(),
		Notes:         notes,
	}
}
