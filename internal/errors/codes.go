package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Search error codes (SEARCH_*)
const (
	SearchNotReady      ErrorCode = "SEARCH_001"
	SearchInvalidFilter ErrorCode = "SEARCH_002"
	SearchInvalidTopK   ErrorCode = "SEARCH_003"
)

// Index error codes (INDEX_*)
const (
	IndexInconsistent     ErrorCode = "INDEX_001"
	IndexSnapshotNotFound ErrorCode = "INDEX_002"
	IndexEmptyDataset     ErrorCode = "INDEX_003"
)

// LLM error codes (LLM_*)
const (
	LLMDisabled ErrorCode = "LLM_001"
	LLMFailed   ErrorCode = "LLM_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

const fallbackMessage = "An error occurred"

type codeInfo struct {
	status  int
	message string
}

// registry holds the HTTP status and default message of every code
var registry = map[ErrorCode]codeInfo{
	AuthMissingToken:           {http.StatusUnauthorized, "Authorization token is required"},
	AuthExpiredToken:           {http.StatusUnauthorized, "Authorization token has expired"},
	AuthInvalidTokenFormat:     {http.StatusUnauthorized, "Invalid authorization token format"},
	AuthInsufficientPermission: {http.StatusForbidden, "Insufficient permissions to access this resource"},

	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Field value is out of allowed range"},

	SearchNotReady:      {http.StatusServiceUnavailable, "Search index is not ready"},
	SearchInvalidFilter: {http.StatusBadRequest, "Invalid search filter"},
	SearchInvalidTopK:   {http.StatusBadRequest, "top_k must be a positive integer"},

	IndexInconsistent:     {http.StatusInternalServerError, "Index snapshot is inconsistent"},
	IndexSnapshotNotFound: {http.StatusNotFound, "Index snapshot not found"},
	IndexEmptyDataset:     {http.StatusUnprocessableEntity, "Dataset contains no transactions"},

	LLMDisabled: {http.StatusServiceUnavailable, "LLM service not available"},
	LLMFailed:   {http.StatusBadGateway, "LLM request failed"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Database connection error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemConfigurationError: {http.StatusInternalServerError, "System configuration error"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
}

// GetErrorMessage returns the default message for code
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return fallbackMessage
}

// GetHTTPStatus returns the HTTP status for code. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}
