package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"

	"financial-assistant/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds a request context with an optional JSON body
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	return c, rec
}

func decodeErrorResponse(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp
}

func testTransaction(id int, userID, category string, amount float64) models.Transaction {
	return models.Transaction{
		ID:            fmt.Sprintf("TXN%06d", id),
		Position:      int64(id - 1),
		UserID:        userID,
		Date:          "2024-03-15",
		Timestamp:     fmt.Sprintf("2024-03-15T10:%02d:00", id),
		Description:   "Coffee Shop at Blue Tokai",
		Merchant:      "Coffee Shop - Blue Tokai",
		Category:      category,
		Subcategory:   "Coffee Shop",
		Amount:        decimal.NewFromFloat(amount),
		Currency:      models.DefaultCurrency,
		Type:          models.TransactionTypeDebit,
		PaymentMethod: models.PaymentMethodUPI,
		Status:        models.TransactionStatusCompleted,
	}
}

type assertError string

func (e assertError) Error() string { return string(e) }
