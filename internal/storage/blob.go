// Package storage persists index snapshots to a local directory or to a
// Google Cloud Storage bucket.
package storage

import (
	"context"
	"errors"
)

var ErrBlobNotFound = errors.New("blob not found")

// BlobStore stores named blobs. Put must be atomic per blob: a reader sees
// either the previous content or the complete new content.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Location() string
}
