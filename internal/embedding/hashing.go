package embedding

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

const (
	unigramWeight = 1.0
	bigramWeight  = 0.5
	trigramWeight = 0.25
)

// HashingEmbedder is a local, deterministic embedder based on signed feature
// hashing of word unigrams, word bigrams and character trigrams.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder creates a hashing embedder producing vectors of size dim
func NewHashingEmbedder(dim int) (*HashingEmbedder, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension %d", dim)
	}
	return &HashingEmbedder{dim: dim}, nil
}

func (e *HashingEmbedder) Name() string {
	return fmt.Sprintf("hashing-%d", e.dim)
}

func (e *HashingEmbedder) Dim() int {
	return e.dim
}

// Embed returns a unit-length vector. Text without any word characters maps to
// the zero vector.
func (e *HashingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec := make([]float32, e.dim)
	tokens := tokenize(text)

	for i, tok := range tokens {
		e.add(vec, "w:"+tok, unigramWeight)
		if i > 0 {
			e.add(vec, "b:"+tokens[i-1]+" "+tok, bigramWeight)
		}
		padded := []rune("#" + tok + "#")
		for j := 0; j+3 <= len(padded); j++ {
			e.add(vec, "c:"+string(padded[j:j+3]), trigramWeight)
		}
	}

	normalize(vec)
	return vec, nil
}

func (e *HashingEmbedder) add(vec []float32, feature string, weight float32) {
	h := xxhash.Sum64String(feature)
	idx := h % uint64(e.dim)
	if h>>63 == 1 {
		weight = -weight
	}
	vec[idx] += weight
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
