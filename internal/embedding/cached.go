package embedding

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedEmbedder memoizes another embedder. Returned vectors are shared and
// must be treated as read-only.
type CachedEmbedder struct {
	next  Embedder
	cache *cache.Cache
}

// NewCachedEmbedder wraps next with an in-memory cache
func NewCachedEmbedder(next Embedder, ttl, cleanupInterval time.Duration) *CachedEmbedder {
	return &CachedEmbedder{
		next:  next,
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (e *CachedEmbedder) Name() string {
	return e.next.Name()
}

func (e *CachedEmbedder) Dim() int {
	return e.next.Dim()
}

func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Get(text); ok {
		return cached.([]float32), nil
	}

	vec, err := e.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	e.cache.Set(text, vec, cache.DefaultExpiration)
	return vec, nil
}

// Len returns the number of cached vectors
func (e *CachedEmbedder) Len() int {
	return e.cache.ItemCount()
}
