package storage

import (
	"errors"
	"fmt"
)

var (
	ErrSnapshotNotFound = errors.New("index snapshot not found")
	ErrIndexConsistency = errors.New("index snapshot is inconsistent")
)

// IndexConsistencyError reports a snapshot whose vector index and transaction
// metadata do not belong together. Such a snapshot must never be published.
type IndexConsistencyError struct {
	Reason  string
	Vectors int
	Records int
}

func (e *IndexConsistencyError) Error() string {
	if e.Vectors != 0 || e.Records != 0 {
		return fmt.Sprintf("index snapshot is inconsistent: %s (vectors=%d, records=%d)", e.Reason, e.Vectors, e.Records)
	}
	return "index snapshot is inconsistent: " + e.Reason
}

func (e *IndexConsistencyError) Is(target error) bool {
	return target == ErrIndexConsistency
}

func consistencyError(format string, args ...any) *IndexConsistencyError {
	return &IndexConsistencyError{Reason: fmt.Sprintf(format, args...)}
}
