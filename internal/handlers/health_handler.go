package handlers

import (
	"net/http"
	"time"

	"financial-assistant/internal/dto"
	"financial-assistant/internal/errors"
	"financial-assistant/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	index   services.EmbeddingIndexServiceInterface
	llm     services.LLMSummarizerInterface
	db      *gorm.DB
	version string
}

// NewHealthCheckHandler creates a new health check handler. db may be nil when
// the dataset is read from a JSON file.
func NewHealthCheckHandler(
	index services.EmbeddingIndexServiceInterface,
	llm services.LLMSummarizerInterface,
	db *gorm.DB,
	version string,
) *HealthCheckHandler {
	return &HealthCheckHandler{
		index:   index,
		llm:     llm,
		db:      db,
		version: version,
	}
}

// HealthCheck reports the service status
// @Summary Health check
// @Description Report index readiness, LLM availability and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is running"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	status := map[string]bool{
		"search": h.index.Ready(),
		"llm":    h.llm.Enabled(),
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}

		if err := sqlDB.PingContext(c.Request().Context()); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
		status["database"] = true
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		Message:  "AI Financial Data Assistant API is running",
		Version:  h.version,
		Time:     time.Now().UTC().Format(time.RFC3339),
		Services: status,
	})
}
