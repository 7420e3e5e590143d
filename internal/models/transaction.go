package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"

	DefaultCurrency = "INR"

	// UnknownLabel replaces missing grouping keys in rollups.
	UnknownLabel = "Unknown"

	embeddingTextSeparator = " | "
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must not be negative")
	ErrMissingTransactionID   = errors.New("transaction ID is required")
	ErrInvalidTimestamp       = errors.New("invalid transaction timestamp")
)

// timestampLayouts are tried in order when parsing a stored timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Transaction represents a single financial transaction record
type Transaction struct {
	ID            string          `gorm:"column:transaction_id;type:varchar(32);primaryKey" json:"transaction_id"`
	Position      int64           `gorm:"not null;index" json:"-"`
	UserID        string          `gorm:"type:varchar(32);not null;index" json:"user_id"`
	Date          string          `gorm:"type:varchar(10)" json:"date"`
	Timestamp     string          `gorm:"type:varchar(40);index" json:"timestamp"`
	Description   string          `gorm:"type:text" json:"description"`
	Merchant      string          `gorm:"type:varchar(255)" json:"merchant"`
	Category      string          `gorm:"type:varchar(50);index" json:"category"`
	Subcategory   string          `gorm:"type:varchar(50)" json:"subcategory"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'INR'" json:"currency"`
	Type          string          `gorm:"type:varchar(10);not null" json:"type"`
	PaymentMethod string          `gorm:"type:varchar(30)" json:"payment_method"`
	Status        string          `gorm:"type:varchar(20);default:'completed'" json:"status"`
	Location      string          `gorm:"type:varchar(100)" json:"location"`
	Notes         string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return ErrMissingTransactionID
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	return nil
}

// IsDebit reports whether the transaction moves money out. A record with no
// type is treated as a debit.
func (t *Transaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit || t.Type == ""
}

// EmbeddingText builds the text that represents the transaction in vector space.
// Empty parts are dropped so that field boundaries stay unambiguous.
func (t *Transaction) EmbeddingText() string {
	currency := t.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	parts := []string{
		t.Description,
		t.Category,
		t.Subcategory,
		t.Merchant,
		fmt.Sprintf("Amount: %s %s", t.Amount.String(), currency),
		"Type: " + t.Type,
		"Payment: " + t.PaymentMethod,
		t.Notes,
	}

	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, embeddingTextSeparator)
}

// ParseTimestamp parses the stored timestamp into a time.Time
func (t *Transaction) ParseTimestamp() (time.Time, error) {
	return ParseTimestamp(t.Timestamp)
}

// MonthKey returns the YYYY-MM bucket of the transaction, or false when the
// timestamp cannot be parsed.
func (t *Transaction) MonthKey() (string, bool) {
	ts, err := t.ParseTimestamp()
	if err != nil {
		return "", false
	}
	return ts.Format("2006-01"), true
}

// ParseTimestamp parses an ISO-8601 timestamp with or without zone and fraction
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidTimestamp
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}

// LabelOrUnknown returns value, or UnknownLabel when value is empty
func LabelOrUnknown(value string) string {
	if value == "" {
		return UnknownLabel
	}
	return value
}
