package services

import (
	"errors"
	"fmt"

	"financial-assistant/internal/storage"
)

var (
	ErrNotReady       = errors.New("index not built")
	ErrEmptyInput     = errors.New("no transactions to index")
	ErrInvalidTopK    = errors.New("top_k must be a positive integer")
	ErrInvalidFilter  = errors.New("invalid search filter")
	ErrLLMDisabled    = errors.New("LLM service not available")
	ErrLLMUnavailable = errors.New("LLM request failed")
)

// Snapshot errors are produced by the storage layer and surface unchanged.
var (
	ErrIndexConsistency = storage.ErrIndexConsistency
	ErrSnapshotNotFound = storage.ErrSnapshotNotFound
)

type IndexConsistencyError = storage.IndexConsistencyError

// InvalidFilterError names the filter field whose value could not be parsed
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid %s filter: %q is not a number", e.Field, e.Value)
}

func (e *InvalidFilterError) Is(target error) bool {
	return target == ErrInvalidFilter
}
