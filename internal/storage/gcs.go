package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSBlobStore keeps blobs as objects under a prefix of a Cloud Storage bucket.
// Object uploads are atomic, so Put needs no temp object.
type GCSBlobStore struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCSClient creates a Cloud Storage client. An empty credentialsFile uses
// Application Default Credentials.
func NewGCSClient(ctx context.Context, credentialsFile string) (*storage.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

// NewGCSBlobStore creates a blob store for gs://bucket/prefix
func NewGCSBlobStore(client *storage.Client, bucket, prefix string) (*GCSBlobStore, error) {
	if bucket == "" {
		return nil, errors.New("storage: bucket is required")
	}
	return &GCSBlobStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (g *GCSBlobStore) Location() string {
	return fmt.Sprintf("gs://%s/%s", g.bucket, g.prefix)
}

func (g *GCSBlobStore) objectName(name string) string {
	if g.prefix == "" {
		return name
	}
	return path.Join(g.prefix, name)
}

func (g *GCSBlobStore) Put(ctx context.Context, name string, data []byte) error {
	w := g.client.Bucket(g.bucket).Object(g.objectName(name)).NewWriter(ctx)
	w.ContentType = contentType(name)

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("storage: upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("storage: finalize %s: %w", name, err)
	}
	return nil
}

func (g *GCSBlobStore) Get(ctx context.Context, name string) ([]byte, error) {
	r, err := g.client.Bucket(g.bucket).Object(g.objectName(name)).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("storage: download %s: %w", name, err)
	}
	return data, nil
}

func (g *GCSBlobStore) Delete(ctx context.Context, name string) error {
	err := g.client.Bucket(g.bucket).Object(g.objectName(name)).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("storage: delete %s: %w", name, err)
	}
	return nil
}

func (g *GCSBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: g.objectName(prefix)})

	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("storage: list: %w", err)
		}
		names = append(names, path.Base(attrs.Name))
	}
	return names, nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
