package middleware

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"financial-assistant/internal/errors"
	"financial-assistant/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "API errors by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

// statusCodes maps router-level HTTP errors onto API error codes.
// Anything absent becomes SYSTEM_005.
var statusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:          errors.ValidationGeneral,
	http.StatusUnauthorized:        errors.AuthMissingToken,
	http.StatusForbidden:           errors.AuthInsufficientPermission,
	http.StatusNotFound:            errors.SystemUnexpectedError,
	http.StatusMethodNotAllowed:    errors.ValidationGeneral,
	http.StatusUnprocessableEntity: errors.ValidationGeneral,
	http.StatusTooManyRequests:     errors.SystemRateLimitExceeded,
	http.StatusInternalServerError: errors.SystemInternalError,
	http.StatusServiceUnavailable:  errors.SystemServiceUnavailable,
}

func codeForStatus(status int) errors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}

// CustomHTTPErrorHandler renders every error that escapes a handler as the
// standard error envelope.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := toErrorResponse(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	req := c.Request()
	slog.Log(req.Context(), level, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"path", req.URL.Path,
		"method", req.Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		slog.Error("Failed to send error response", "trace_id", traceID, "error", sendErr)
	}
}

func toErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if goerrors.As(err, &httpErr) {
		msg := errors.WithMessage(fmt.Sprint(httpErr.Message))
		return errors.NewErrorResponse(codeForStatus(httpErr.Code), traceID, msg), httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if goerrors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = validation.Message(fe)
		}
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}
