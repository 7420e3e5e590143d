// Package vectorindex provides an exact nearest-neighbour index over
// fixed-dimension float32 vectors using squared Euclidean distance.
package vectorindex

import (
	"container/heap"
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	ErrInvalidDimension  = errors.New("vector dimension must be positive")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrInvalidK          = errors.New("k must be positive")
)

// Neighbor is a search hit: the ordinal position of the stored vector and its
// squared L2 distance to the query.
type Neighbor struct {
	Position int
	Distance float64
}

// FlatL2 stores vectors contiguously and answers queries by brute force.
// Add must not run concurrently with Search.
type FlatL2 struct {
	dim  int
	data []float32
}

// NewFlatL2 creates an empty index for vectors of the given dimension
func NewFlatL2(dim int) (*FlatL2, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	return &FlatL2{dim: dim}, nil
}

// Dim returns the vector dimension
func (ix *FlatL2) Dim() int {
	return ix.dim
}

// Len returns the number of stored vectors
func (ix *FlatL2) Len() int {
	return len(ix.data) / ix.dim
}

// Add appends vectors in order. Either all vectors are added or none.
func (ix *FlatL2) Add(vectors ...[]float32) error {
	for i, v := range vectors {
		if len(v) != ix.dim {
			return fmt.Errorf("%w: vector %d has %d values, want %d", ErrDimensionMismatch, i, len(v), ix.dim)
		}
	}

	ix.data = slices.Grow(ix.data, len(vectors)*ix.dim)
	for _, v := range vectors {
		ix.data = append(ix.data, v...)
	}
	return nil
}

// Vector returns a copy of the vector stored at position i
func (ix *FlatL2) Vector(i int) []float32 {
	out := make([]float32, ix.dim)
	copy(out, ix.data[i*ix.dim:(i+1)*ix.dim])
	return out
}

// Search returns up to k nearest vectors ordered by distance ascending.
// Equal distances are ordered by position.
func (ix *FlatL2) Search(query []float32, k int) ([]Neighbor, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: query has %d values, want %d", ErrDimensionMismatch, len(query), ix.dim)
	}

	n := ix.Len()
	if k > n {
		k = n
	}
	if k == 0 {
		return []Neighbor{}, nil
	}

	h := make(neighborHeap, 0, k)
	for pos := 0; pos < n; pos++ {
		d := squaredL2(query, ix.data[pos*ix.dim:(pos+1)*ix.dim])
		cand := Neighbor{Position: pos, Distance: d}
		if len(h) < k {
			heap.Push(&h, cand)
			continue
		}
		if closer(cand, h[0]) {
			h[0] = cand
			heap.Fix(&h, 0)
		}
	}

	out := []Neighbor(h)
	sort.Slice(out, func(i, j int) bool { return closer(out[i], out[j]) })
	return out, nil
}

func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

func closer(a, b Neighbor) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Position < b.Position
}

// neighborHeap keeps the farthest retained neighbor at the root.
type neighborHeap []Neighbor

func (h neighborHeap) Len() int           { return len(h) }
func (h neighborHeap) Less(i, j int) bool { return closer(h[j], h[i]) }
func (h neighborHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *neighborHeap) Push(x any) {
	*h = append(*h, x.(Neighbor))
}

func (h *neighborHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
