package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"financial-assistant/internal/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seenIDs struct {
	echoCtx    string
	requestCtx string
}

// serveWithRequestID sends one request through RequestID and records the
// trace IDs the handler observed.
func serveWithRequestID(t *testing.T, incoming string) (*httptest.ResponseRecorder, seenIDs) {
	t.Helper()
	e := echo.New()
	e.Use(RequestID())

	var seen seenIDs
	e.GET("/api/transactions", func(c echo.Context) error {
		seen.echoCtx = GetTraceID(c)
		seen.requestCtx = logger.TraceID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return rec, seen
}

func TestRequestIDGenerated(t *testing.T) {
	rec, seen := serveWithRequestID(t, "")

	_, err := uuid.Parse(seen.echoCtx)
	require.NoError(t, err)
	assert.Equal(t, seen.echoCtx, seen.requestCtx)
	assert.Equal(t, seen.echoCtx, rec.Header().Get(TraceIDHeader))
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	rec, seen := serveWithRequestID(t, "upstream-42")

	assert.Equal(t, "upstream-42", seen.echoCtx)
	assert.Equal(t, "upstream-42", seen.requestCtx)
	assert.Equal(t, "upstream-42", rec.Header().Get(TraceIDHeader))
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	_, first := serveWithRequestID(t, "")
	_, second := serveWithRequestID(t, "")

	assert.NotEqual(t, first.echoCtx, second.echoCtx)
}

func TestGetTraceID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetTraceID(c))

	c.Set(TraceIDContextKey, 17)
	assert.Empty(t, GetTraceID(c))

	c.Set(TraceIDContextKey, "abc")
	assert.Equal(t, "abc", GetTraceID(c))
}
