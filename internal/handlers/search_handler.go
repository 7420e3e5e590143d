package handlers

import (
	"net/http"
	"strings"

	"financial-assistant/internal/dto"
	"financial-assistant/internal/errors"
	"financial-assistant/internal/models"
	"financial-assistant/internal/services"
	"financial-assistant/internal/validation"

	"github.com/labstack/echo/v4"
)

// SearchHandler serves natural language transaction search
type SearchHandler struct {
	searchService services.SearchServiceInterface
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService services.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search ranks transactions by similarity to the query and applies the optional filters
// @Summary Search transactions
// @Description Natural language search over the indexed transactions with optional user, category and amount filters
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search request"
// @Success 200 {object} dto.SearchResponse "Ranked results, most similar first"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 503 {object} errors.ErrorResponse "SEARCH_001 - Index not built"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	req := dto.SearchRequest{TopK: dto.DefaultTopK}
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	req.Query = sanitizeText(req.Query)
	req.UserID = trimOptional(req.UserID)
	req.Category = trimOptional(req.Category)

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	return h.respond(c, req.Query, req.TopK, req.Filters())
}

// SearchGet is the query string form of Search
// @Summary Search transactions (query string)
// @Tags Search
// @Produce json
// @Param q query string true "Natural language query"
// @Param top_k query int false "Number of results (1-100)" default(10)
// @Param user_id query string false "Filter by user ID"
// @Param category query string false "Filter by category"
// @Param min_amount query string false "Minimum amount (inclusive)"
// @Param max_amount query string false "Maximum amount (inclusive)"
// @Success 200 {object} dto.SearchResponse "Ranked results, most similar first"
// @Failure 400 {object} errors.ErrorResponse "SEARCH_002 - Invalid amount filter"
// @Failure 503 {object} errors.ErrorResponse "SEARCH_001 - Index not built"
// @Router /api/search [get]
func (h *SearchHandler) SearchGet(c echo.Context) error {
	params := dto.SearchQueryParams{TopK: dto.DefaultTopK}
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}

	params.Query = sanitizeText(params.Query)
	params.UserID = strings.TrimSpace(params.UserID)
	params.Category = strings.TrimSpace(params.Category)

	if err := c.Validate(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	filters, err := services.ParseFilters(params.UserID, params.Category, params.MinAmount, params.MaxAmount)
	if err != nil {
		return SendServiceError(c, err)
	}

	return h.respond(c, params.Query, params.TopK, filters)
}

func (h *SearchHandler) respond(c echo.Context, query string, topK int, filters models.SearchFilters) error {
	results, err := h.searchService.Search(c.Request().Context(), query, topK, filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	if results == nil {
		results = []models.SearchResult{}
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{
		Query:        query,
		TotalResults: len(results),
		Results:      results,
	})
}
