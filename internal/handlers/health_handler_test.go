package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"financial-assistant/internal/database"
	"financial-assistant/internal/dto"
	"financial-assistant/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_WithoutDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := service_mocks.NewMockEmbeddingIndexServiceInterface(ctrl)
	llm := service_mocks.NewMockLLMSummarizerInterface(ctrl)
	index.EXPECT().Ready().Return(false)
	llm.EXPECT().Enabled().Return(false)

	handler := NewHealthCheckHandler(index, llm, nil, "1.2.0")
	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/health", "")

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "AI Financial Data Assistant API is running", resp.Message)
	assert.Equal(t, "1.2.0", resp.Version)
	assert.Equal(t, map[string]bool{"search": false, "llm": false}, resp.Services)
	assert.NotEmpty(t, resp.Time)
}

func TestHealthCheck_WithDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := service_mocks.NewMockEmbeddingIndexServiceInterface(ctrl)
	llm := service_mocks.NewMockLLMSummarizerInterface(ctrl)
	index.EXPECT().Ready().Return(true)
	llm.EXPECT().Enabled().Return(true)

	db := database.SetupTestDB(t)
	handler := NewHealthCheckHandler(index, llm, db.DB, "dev")
	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/health", "")

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]bool{"search": true, "llm": true, "database": true}, resp.Services)
}

func TestHealthCheck_DatabaseUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := service_mocks.NewMockEmbeddingIndexServiceInterface(ctrl)
	llm := service_mocks.NewMockLLMSummarizerInterface(ctrl)
	index.EXPECT().Ready().Return(true)
	llm.EXPECT().Enabled().Return(false)

	db := database.SetupTestDB(t)
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	handler := NewHealthCheckHandler(index, llm, db.DB, "dev")
	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/health", "")

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	resp := decodeErrorResponse(rec)
	assert.Equal(t, "SYSTEM_003", resp.Error.Code)
	assert.Equal(t, []string{"Database connection failed"}, resp.Error.Details)
}
