package services

import (
	"fmt"
	"sort"
	"strings"

	"financial-assistant/internal/models"

	"github.com/shopspring/decimal"
)

const (
	topCategoryLimit     = 5
	renderedCategoryRows = 3
	moneyPlaces          = 2
	headerRuleWidth      = 50
	rupeeSign            = "₹"
)

var hundred = decimal.NewFromInt(100)

type summaryService struct{}

// NewSummaryService creates the aggregation engine. It holds no state and is safe for concurrent use.
func NewSummaryService() SummaryServiceInterface {
	return &summaryService{}
}

type categoryTotals struct {
	name  string
	count int64
	total decimal.Decimal
}

type userTotals struct {
	id     string
	count  int64
	debit  decimal.Decimal
	credit decimal.Decimal
}

type monthTotals struct {
	month  string
	count  int64
	debit  decimal.Decimal
	credit decimal.Decimal
}

// rollup keeps first-encounter order of its keys
type rollup[T any] struct {
	index map[string]int
	items []T
}

func newRollup[T any]() *rollup[T] {
	return &rollup[T]{index: make(map[string]int)}
}

func (r *rollup[T]) get(key string, init func() T) *T {
	i, ok := r.index[key]
	if !ok {
		i = len(r.items)
		r.index[key] = i
		r.items = append(r.items, init())
	}
	return &r.items[i]
}

func (s *summaryService) Summarize(transactions []models.Transaction) models.SummaryReport {
	if len(transactions) == 0 {
		return models.SummaryReport{Message: models.EmptySummaryMessage}
	}

	categories := newRollup[categoryTotals]()
	users := newRollup[userTotals]()
	payments := newRollup[models.PaymentMethodSummary]()
	months := newRollup[monthTotals]()

	var totalDebit, totalCredit decimal.Decimal

	for i := range transactions {
		txn := &transactions[i]
		debit := txn.IsDebit()

		category := models.LabelOrUnknown(txn.Category)
		cat := categories.get(category, func() categoryTotals { return categoryTotals{name: category} })
		cat.count++
		cat.total = cat.total.Add(txn.Amount)

		userID := models.LabelOrUnknown(txn.UserID)
		user := users.get(userID, func() userTotals { return userTotals{id: userID} })
		user.count++

		if debit {
			user.debit = user.debit.Add(txn.Amount)
			totalDebit = totalDebit.Add(txn.Amount)
		} else {
			user.credit = user.credit.Add(txn.Amount)
			totalCredit = totalCredit.Add(txn.Amount)
		}

		method := models.LabelOrUnknown(txn.PaymentMethod)
		payments.get(method, func() models.PaymentMethodSummary {
			return models.PaymentMethodSummary{PaymentMethod: method}
		}).TransactionCount++

		if key, ok := txn.MonthKey(); ok {
			month := months.get(key, func() monthTotals { return monthTotals{month: key} })
			month.count++
			if debit {
				month.debit = month.debit.Add(txn.Amount)
			} else {
				month.credit = month.credit.Add(txn.Amount)
			}
		}
	}

	count := decimal.NewFromInt(int64(len(transactions)))

	return models.SummaryReport{
		Overview: &models.SummaryOverview{
			TotalTransactions:  len(transactions),
			TotalDebit:         roundMoney(totalDebit),
			TotalCredit:        roundMoney(totalCredit),
			NetBalance:         roundMoney(totalCredit.Sub(totalDebit)),
			AverageTransaction: roundMoney(totalDebit.Add(totalCredit).Div(count)),
		},
		ByCategory:      categorySummaries(categories.items),
		TopCategories:   topCategories(categories.items),
		ByUser:          userSummaries(users.items),
		ByPaymentMethod: payments.items,
		ByMonth:         monthSummaries(months.items),
		Insights:        insights(categories.items, totalDebit, totalCredit),
	}
}

func categorySummaries(items []categoryTotals) []models.CategorySummary {
	out := make([]models.CategorySummary, len(items))
	for i, c := range items {
		out[i] = models.CategorySummary{
			Category:         c.name,
			TransactionCount: c.count,
			TotalAmount:      roundMoney(c.total),
			AverageAmount:    roundMoney(c.total.Div(decimal.NewFromInt(c.count))),
		}
	}
	return out
}

// topCategories ranks by exact total. The stable sort keeps first-encounter order among equal totals.
func topCategories(items []categoryTotals) []models.TopCategory {
	ranked := make([]categoryTotals, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total.GreaterThan(ranked[j].total)
	})

	if len(ranked) > topCategoryLimit {
		ranked = ranked[:topCategoryLimit]
	}

	out := make([]models.TopCategory, len(ranked))
	for i, c := range ranked {
		out[i] = models.TopCategory{
			Category:         c.name,
			TotalAmount:      roundMoney(c.total),
			TransactionCount: c.count,
		}
	}
	return out
}

func userSummaries(items []userTotals) []models.UserSummary {
	out := make([]models.UserSummary, len(items))
	for i, u := range items {
		out[i] = models.UserSummary{
			UserID:           u.id,
			TransactionCount: u.count,
			TotalDebit:       roundMoney(u.debit),
			TotalCredit:      roundMoney(u.credit),
			NetBalance:       roundMoney(u.credit.Sub(u.debit)),
		}
	}
	return out
}

func monthSummaries(items []monthTotals) []models.MonthlySummary {
	out := make([]models.MonthlySummary, len(items))
	for i, m := range items {
		out[i] = models.MonthlySummary{
			Month:            m.month,
			TransactionCount: m.count,
			Debit:            roundMoney(m.debit),
			Credit:           roundMoney(m.credit),
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func insights(categories []categoryTotals, totalDebit, totalCredit decimal.Decimal) *models.SummaryInsights {
	result := &models.SummaryInsights{
		TopSpendingCategory: models.NoSpendingCategory,
		TopSpendingAmount:   decimal.Zero,
		SavingsRate:         decimal.Zero,
	}

	found := false
	var best decimal.Decimal
	for _, c := range categories {
		if c.name == models.CategoryIncome {
			continue
		}
		if !found || c.total.GreaterThan(best) {
			found = true
			best = c.total
			result.TopSpendingCategory = c.name
		}
	}
	if found {
		result.TopSpendingAmount = roundMoney(best)
	}

	if totalCredit.IsPositive() {
		result.SavingsRate = totalCredit.Sub(totalDebit).Mul(hundred).Div(totalCredit).Round(moneyPlaces)
	}

	return result
}

func (s *summaryService) RenderText(report models.SummaryReport) string {
	if report.IsEmpty() {
		return report.Message
	}
	if report.Overview == nil || report.Insights == nil {
		return ""
	}

	overview := report.Overview
	insights := report.Insights

	var b strings.Builder
	b.WriteString("📊 Financial Summary\n")
	b.WriteString(strings.Repeat("=", headerRuleWidth))
	b.WriteString("\n\nOverview:\n")
	fmt.Fprintf(&b, "  • Total Transactions: %d\n", overview.TotalTransactions)
	fmt.Fprintf(&b, "  • Total Spent: %s\n", FormatRupees(overview.TotalDebit))
	fmt.Fprintf(&b, "  • Total Earned: %s\n", FormatRupees(overview.TotalCredit))
	fmt.Fprintf(&b, "  • Net Balance: %s\n", FormatRupees(overview.NetBalance))
	fmt.Fprintf(&b, "  • Average Transaction: %s\n", FormatRupees(overview.AverageTransaction))

	b.WriteString("\nTop Spending Categories:\n")
	for i, cat := range report.TopCategories {
		if i == renderedCategoryRows {
			break
		}
		fmt.Fprintf(&b, "  %d. %s: %s (%d transactions)\n",
			i+1, cat.Category, FormatRupees(cat.TotalAmount), cat.TransactionCount)
	}

	b.WriteString("\nKey Insights:\n")
	fmt.Fprintf(&b, "  • Highest spending category: %s (%s)\n",
		insights.TopSpendingCategory, FormatRupees(insights.TopSpendingAmount))
	fmt.Fprintf(&b, "  • Savings rate: %s%%\n", formatSavingsRate(insights.SavingsRate, overview.TotalCredit.IsPositive()))

	return strings.TrimSpace(b.String())
}

// formatSavingsRate prints the rate with at most two decimals and at least
// one, e.g. 70.0 or 33.31. Without credit there is no rate and it prints 0.
func formatSavingsRate(rate decimal.Decimal, hasCredit bool) string {
	if !hasCredit {
		return "0"
	}
	text := rate.Round(moneyPlaces).String()
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// FormatRupees renders an amount as ₹ with thousands separators and two decimals, e.g. ₹1,234.50
func FormatRupees(amount decimal.Decimal) string {
	fixed := amount.StringFixed(moneyPlaces)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	return rupeeSign + sign + grouped.String() + "." + frac
}
