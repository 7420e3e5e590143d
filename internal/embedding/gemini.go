package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// EmbedContentAPI is the part of the genai client used for embeddings.
// *genai.Models satisfies it.
type EmbedContentAPI interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// GeminiEmbedder embeds text with a hosted Gemini embedding model
type GeminiEmbedder struct {
	api   EmbedContentAPI
	model string
	dim   int
}

// NewGeminiEmbedder creates an embedder requesting vectors of size dim from model
func NewGeminiEmbedder(api EmbedContentAPI, model string, dim int) (*GeminiEmbedder, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension %d", dim)
	}
	if model == "" {
		return nil, fmt.Errorf("embedding model is required")
	}
	return &GeminiEmbedder{api: api, model: model, dim: dim}, nil
}

func (e *GeminiEmbedder) Name() string {
	return fmt.Sprintf("gemini:%s-%d", e.model, e.dim)
}

func (e *GeminiEmbedder) Dim() int {
	return e.dim
}

func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: text}},
	}}
	dim := int32(e.dim)

	resp, err := e.api.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
		OutputDimensionality: &dim,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}

	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, ErrEmptyEmbedding
	}

	values := resp.Embeddings[0].Values
	if len(values) != e.dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnexpectedDimension, len(values), e.dim)
	}

	vec := make([]float32, e.dim)
	copy(vec, values)
	normalize(vec)
	return vec, nil
}
