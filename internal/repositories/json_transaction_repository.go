package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"financial-assistant/internal/models"
)

var ErrDatasetNotFound = errors.New("transaction dataset not found")

// jsonTransactionRepository keeps the collection in a JSON interchange file
type jsonTransactionRepository struct {
	path string
}

// NewJSONTransactionRepository creates a repository backed by the JSON file at path
func NewJSONTransactionRepository(path string) TransactionRepositoryInterface {
	return &jsonTransactionRepository{
		path: path,
	}
}

// ListAll reads the file and numbers the transactions by their position in it
func (r *jsonTransactionRepository) ListAll() ([]models.Transaction, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions file: %w", err)
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transactions file %s: %w", r.path, err)
	}

	for i := range transactions {
		transactions[i].Position = int64(i)
	}
	return transactions, nil
}

// ReplaceAll writes the collection through a temp file and rename
func (r *jsonTransactionRepository) ReplaceAll(transactions []models.Transaction) error {
	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return fmt.Errorf("invalid transaction at position %d: %w", i, err)
		}
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(r.path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write transactions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace transactions file: %w", err)
	}
	return nil
}

// Count returns the number of transactions in the file
func (r *jsonTransactionRepository) Count() (int64, error) {
	transactions, err := r.ListAll()
	if err != nil {
		return 0, err
	}
	return int64(len(transactions)), nil
}

func (r *jsonTransactionRepository) Source() string {
	return "json:" + r.path
}
