package models

import (
	"time"

	"financial-assistant/internal/vectorindex"
)

// IndexManifest describes a persisted index snapshot. It is written last, so a
// reader that finds it can rely on both referenced files being complete.
type IndexManifest struct {
	Generation           string    `json:"generation"`
	CreatedAt            time.Time `json:"created_at"`
	Embedder             string    `json:"embedder"`
	Dimension            int       `json:"dimension"`
	Count                int       `json:"count"`
	VectorsFile          string    `json:"vectors_file"`
	TransactionsFile     string    `json:"transactions_file"`
	VectorsChecksum      string    `json:"vectors_checksum"`
	TransactionsChecksum string    `json:"transactions_checksum"`
}

// IndexSnapshot pairs the vector index with the transactions it was built from.
// Vector i belongs to Transactions[i]. A snapshot is never mutated after it is built.
type IndexSnapshot struct {
	Generation   string
	Embedder     string
	CreatedAt    time.Time
	Index        *vectorindex.FlatL2
	Transactions []Transaction
}

// Len returns the number of indexed transactions
func (s *IndexSnapshot) Len() int {
	return len(s.Transactions)
}
