// Package embedding turns text into fixed-dimension vectors.
package embedding

import (
	"context"
	"errors"
	"math"
)

var (
	ErrEmptyEmbedding      = errors.New("embedding provider returned no values")
	ErrUnexpectedDimension = errors.New("embedding has unexpected dimension")
)

// Embedder maps text to a vector of Dim() values. Implementations must be
// deterministic for a given Name() and safe for concurrent use.
type Embedder interface {
	Name() string
	Dim() int
	Embed(ctx context.Context, text string) ([]float32, error)
}

// normalize scales v to unit length in place. A zero vector is left unchanged.
func normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range v {
		v[i] = float32(float64(v[i]) * inv)
	}
}
