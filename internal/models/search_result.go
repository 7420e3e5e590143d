package models

// SearchResult is a transaction returned by similarity search
type SearchResult struct {
	Transaction
	SimilarityScore float64 `json:"similarity_score"`
	Distance        float64 `json:"distance"`
}

// SimilarityFromDistance converts a squared L2 distance into a score in (0, 1]
func SimilarityFromDistance(distance float64) float64 {
	if distance < 0 {
		distance = 0
	}
	return 1 / (1 + distance)
}
