package handlers

import (
	"context"
	goerrors "errors"
	"log/slog"
	"net/http"

	"financial-assistant/internal/errors"
	"financial-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and known service states (4xx/503 responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Index not built yet: SendError(c, errors.SearchNotReady)
//    - LLM not configured: SendError(c, errors.LLMDisabled)
//
// 2. SendServiceError - For errors returned by the service layer
//    Maps domain sentinels to their error codes and falls back to SendSystemError.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//    The internal error is logged with the trace ID and never sent to the client.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)

	slog.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internal,
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a service layer error to its API error code
func SendServiceError(c echo.Context, err error) error {
	var filterErr *services.InvalidFilterError
	var consistencyErr *services.IndexConsistencyError

	switch {
	case goerrors.As(err, &filterErr):
		return SendError(c, errors.SearchInvalidFilter, errors.WithDetails(filterErr.Error()))
	case goerrors.Is(err, services.ErrNotReady):
		return SendError(c, errors.SearchNotReady)
	case goerrors.Is(err, services.ErrInvalidTopK):
		return SendError(c, errors.SearchInvalidTopK)
	case goerrors.Is(err, services.ErrEmptyInput):
		return SendError(c, errors.IndexEmptyDataset)
	case goerrors.Is(err, services.ErrSnapshotNotFound):
		return SendError(c, errors.IndexSnapshotNotFound)
	case goerrors.As(err, &consistencyErr):
		return SendError(c, errors.IndexInconsistent, errors.WithDetails(consistencyErr.Reason))
	case goerrors.Is(err, services.ErrLLMDisabled):
		return SendError(c, errors.LLMDisabled)
	case goerrors.Is(err, services.ErrLLMUnavailable):
		return SendError(c, errors.LLMFailed)
	case goerrors.Is(err, context.DeadlineExceeded):
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("request timed out"))
	default:
		return SendSystemError(c, err)
	}
}
