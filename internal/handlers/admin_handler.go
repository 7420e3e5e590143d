package handlers

import (
	"net/http"

	"financial-assistant/internal/dto"
	"financial-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminHandler handles index maintenance endpoints
type AdminHandler struct {
	indexer services.IndexerInterface
	index   services.EmbeddingIndexServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(indexer services.IndexerInterface, index services.EmbeddingIndexServiceInterface) *AdminHandler {
	return &AdminHandler{
		indexer: indexer,
		index:   index,
	}
}

// Reindex rebuilds the index from the configured dataset source
// @Summary Rebuild index (admin)
// @Description Reads every transaction from the dataset source, embeds it, persists the snapshot and publishes it
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ReindexResponse} "Index rebuilt"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Requires admin role"
// @Failure 422 {object} errors.ErrorResponse "INDEX_003 - Dataset contains no transactions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/admin/reindex [post]
func (h *AdminHandler) Reindex(c echo.Context) error {
	snap, err := h.indexer.Reindex(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Index rebuilt successfully",
		Data: dto.ReindexResponse{
			Generation: snap.Generation,
			Count:      snap.Len(),
			Source:     h.indexer.Source(),
		},
	})
}

// Reload publishes the snapshot currently held by the snapshot store
// @Summary Reload index (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ReloadResponse} "Index reloaded"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "INDEX_002 - Index snapshot not found"
// @Failure 500 {object} errors.ErrorResponse "INDEX_001 - Index snapshot is inconsistent"
// @Router /api/admin/reload [post]
func (h *AdminHandler) Reload(c echo.Context) error {
	if err := h.index.Load(c.Request().Context()); err != nil {
		return SendServiceError(c, err)
	}

	snap := h.index.Snapshot()

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Index reloaded successfully",
		Data: dto.ReloadResponse{
			Generation: snap.Generation,
			Count:      snap.Len(),
			CreatedAt:  snap.CreatedAt,
		},
	})
}
