package handlers

import (
	"net/http"
	"strings"

	"financial-assistant/internal/dto"
	"financial-assistant/internal/errors"
	"financial-assistant/internal/services"
	"financial-assistant/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves listings and statistics over the indexed transactions
type TransactionHandler struct {
	catalog services.CatalogServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(catalog services.CatalogServiceInterface) *TransactionHandler {
	return &TransactionHandler{catalog: catalog}
}

// ListTransactions returns one page of transactions
// @Summary List transactions
// @Description Offset paginated listing. With a user or category filter the matches are sorted newest first and capped at 1000 before paging.
// @Tags Transactions
// @Produce json
// @Param user_id query string false "Filter by user ID"
// @Param category query string false "Filter by category"
// @Param limit query int false "Number of results per page (max 500)" default(100)
// @Param offset query int false "Number of results to skip" default(0)
// @Success 200 {object} dto.ListTransactionsResponse "Transaction page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 503 {object} errors.ErrorResponse "SEARCH_001 - Index not built"
// @Router /api/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	params := dto.ListTransactionsParams{Limit: dto.DefaultListLimit}
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}

	params.UserID = strings.TrimSpace(params.UserID)
	params.Category = strings.TrimSpace(params.Category)

	if err := c.Validate(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	page, err := h.catalog.ListTransactions(params.Filters())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(page))
}

// Categories returns the distinct categories in the index
// @Summary List categories
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.CategoriesResponse "Sorted distinct categories"
// @Failure 503 {object} errors.ErrorResponse "SEARCH_001 - Index not built"
// @Router /api/categories [get]
func (h *TransactionHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories()
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// Users returns the distinct user IDs in the index
// @Summary List users
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.UsersResponse "Sorted distinct user IDs"
// @Failure 503 {object} errors.ErrorResponse "SEARCH_001 - Index not built"
// @Router /api/users [get]
func (h *TransactionHandler) Users(c echo.Context) error {
	users, err := h.catalog.Users()
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UsersResponse{Users: users})
}

// Stats returns collection wide totals
// @Summary Transaction statistics
// @Tags Transactions
// @Produce json
// @Success 200 {object} models.TransactionStats "Collection statistics"
// @Failure 503 {object} errors.ErrorResponse "SEARCH_001 - Index not built"
// @Router /api/stats [get]
func (h *TransactionHandler) Stats(c echo.Context) error {
	stats, err := h.catalog.Stats()
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
