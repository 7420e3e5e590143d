package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "financial-assistant/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverInto(t *testing.T, traceID string, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/summarize", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	var err error
	require.NotPanics(t, func() { err = PanicRecovery()(h)(c) })
	return rec, err
}

func TestPanicRecoveryRendersSystemError(t *testing.T) {
	values := map[string]any{
		"string": "index slice out of range",
		"error":  errors.New("nil map write"),
		"int":    7,
		"nil":    nil,
	}

	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			rec, err := recoverInto(t, "trace-p", func(echo.Context) error { panic(v) })
			require.NoError(t, err)
			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var body apierrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(apierrors.SystemInternalError), body.Error.Code)
			assert.Equal(t, "trace-p", body.Error.TraceID)
		})
	}
}

func TestPanicRecoveryWithoutTraceID(t *testing.T) {
	rec, _ := recoverInto(t, "", func(echo.Context) error { panic("boom") })

	var body apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unknown", body.Error.TraceID)
}

func TestPanicRecoveryPassesThrough(t *testing.T) {
	rec, err := recoverInto(t, "", func(c echo.Context) error {
		return c.String(http.StatusAccepted, "queued")
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "queued", rec.Body.String())
}

func TestPanicRecoveryLeavesCommittedResponse(t *testing.T) {
	rec, err := recoverInto(t, "trace-c", func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("after write")
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestPanicRecoveryRepanicsAbortHandler(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	h := PanicRecovery()(func(echo.Context) error { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = h(c) })
}
