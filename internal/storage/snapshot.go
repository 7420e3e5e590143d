package storage

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"financial-assistant/internal/models"
	"financial-assistant/internal/vectorindex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const (
	ManifestName       = "manifest.json"
	vectorsPrefix      = "vectors-"
	transactionsPrefix = "transactions-"
)

// SnapshotStore writes and reads index snapshots on top of a BlobStore.
//
// Save writes the generation-suffixed vector and transaction blobs first and
// replaces the manifest last, so a reader only ever follows a manifest whose
// blobs are complete. Blobs of older generations are pruned afterwards.
// Saves through one store are serialized so that pruning never removes the
// blobs of a save whose manifest is still to be written.
type SnapshotStore struct {
	blobs BlobStore
	now   func() time.Time

	saveMu sync.Mutex
}

// NewSnapshotStore creates a snapshot store over blobs
func NewSnapshotStore(blobs BlobStore) *SnapshotStore {
	return &SnapshotStore{
		blobs: blobs,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Location describes where snapshots are kept
func (s *SnapshotStore) Location() string {
	return s.blobs.Location()
}

// Save persists snap and returns the manifest that now points at it
func (s *SnapshotStore) Save(ctx context.Context, snap *models.IndexSnapshot) (*models.IndexManifest, error) {
	if snap == nil || snap.Index == nil {
		return nil, errors.New("storage: nothing to save")
	}
	if snap.Index.Len() != len(snap.Transactions) {
		return nil, &IndexConsistencyError{
			Reason:  "vector and record counts differ",
			Vectors: snap.Index.Len(),
			Records: len(snap.Transactions),
		}
	}

	generation := snap.Generation
	if generation == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("storage: generate generation id: %w", err)
		}
		generation = id.String()
	}

	var vectors bytes.Buffer
	if _, err := snap.Index.WriteTo(&vectors); err != nil {
		return nil, fmt.Errorf("storage: encode vectors: %w", err)
	}

	transactions, err := json.Marshal(snap.Transactions)
	if err != nil {
		return nil, fmt.Errorf("storage: encode transactions: %w", err)
	}

	manifest := &models.IndexManifest{
		Generation:           generation,
		CreatedAt:            s.now(),
		Embedder:             snap.Embedder,
		Dimension:            snap.Index.Dim(),
		Count:                len(snap.Transactions),
		VectorsFile:          vectorsPrefix + generation + ".bin",
		TransactionsFile:     transactionsPrefix + generation + ".json",
		VectorsChecksum:      checksum(vectors.Bytes()),
		TransactionsChecksum: checksum(transactions),
	}

	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("storage: encode manifest: %w", err)
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.blobs.Put(ctx, manifest.VectorsFile, vectors.Bytes()); err != nil {
		return nil, err
	}
	if err := s.blobs.Put(ctx, manifest.TransactionsFile, transactions); err != nil {
		return nil, err
	}

	if err := s.blobs.Put(ctx, ManifestName, manifestData); err != nil {
		return nil, err
	}

	s.prune(ctx, manifest)
	return manifest, nil
}

// Manifest reads the current manifest
func (s *SnapshotStore) Manifest(ctx context.Context) (*models.IndexManifest, error) {
	data, err := s.blobs.Get(ctx, ManifestName)
	if errors.Is(err, ErrBlobNotFound) {
		return nil, fmt.Errorf("%w at %s", ErrSnapshotNotFound, s.blobs.Location())
	}
	if err != nil {
		return nil, err
	}

	var manifest models.IndexManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, consistencyError("unreadable manifest: %v", err)
	}
	if manifest.VectorsFile == "" || manifest.TransactionsFile == "" {
		return nil, consistencyError("manifest does not name both files")
	}
	return &manifest, nil
}

// Load reads the snapshot the manifest points at and verifies that the vector
// index and transaction metadata match.
func (s *SnapshotStore) Load(ctx context.Context) (*models.IndexSnapshot, *models.IndexManifest, error) {
	manifest, err := s.Manifest(ctx)
	if err != nil {
		return nil, nil, err
	}

	vectorData, err := s.readVerified(ctx, manifest.VectorsFile, manifest.VectorsChecksum)
	if err != nil {
		return nil, nil, err
	}
	index, err := vectorindex.Decode(bytes.NewReader(vectorData))
	if err != nil {
		return nil, nil, consistencyError("vector file %s: %v", manifest.VectorsFile, err)
	}

	txnData, err := s.readVerified(ctx, manifest.TransactionsFile, manifest.TransactionsChecksum)
	if err != nil {
		return nil, nil, err
	}
	var transactions []models.Transaction
	if err := json.Unmarshal(txnData, &transactions); err != nil {
		return nil, nil, consistencyError("transactions file %s: %v", manifest.TransactionsFile, err)
	}

	if index.Len() != len(transactions) || index.Len() != manifest.Count {
		return nil, nil, &IndexConsistencyError{
			Reason:  fmt.Sprintf("manifest declares %d entries", manifest.Count),
			Vectors: index.Len(),
			Records: len(transactions),
		}
	}
	if index.Dim() != manifest.Dimension {
		return nil, nil, consistencyError("vector dimension %d, manifest declares %d", index.Dim(), manifest.Dimension)
	}

	snap := &models.IndexSnapshot{
		Generation:   manifest.Generation,
		Embedder:     manifest.Embedder,
		CreatedAt:    manifest.CreatedAt,
		Index:        index,
		Transactions: transactions,
	}
	return snap, manifest, nil
}

func (s *SnapshotStore) readVerified(ctx context.Context, name, want string) ([]byte, error) {
	data, err := s.blobs.Get(ctx, name)
	if errors.Is(err, ErrBlobNotFound) {
		return nil, consistencyError("%s is missing", name)
	}
	if err != nil {
		return nil, consistencyError("%s is unreadable: %v", name, err)
	}
	if want != "" && checksum(data) != want {
		return nil, consistencyError("%s checksum mismatch", name)
	}
	return data, nil
}

// prune removes blobs of older generations. Whatever the stored manifest names
// is kept as well, since another process may have replaced it meanwhile.
// Failures only leave garbage behind.
func (s *SnapshotStore) prune(ctx context.Context, current *models.IndexManifest) {
	keep := map[string]bool{current.VectorsFile: true, current.TransactionsFile: true}
	if stored, err := s.Manifest(ctx); err == nil {
		keep[stored.VectorsFile] = true
		keep[stored.TransactionsFile] = true
	}

	for _, prefix := range []string{vectorsPrefix, transactionsPrefix} {
		names, err := s.blobs.List(ctx, prefix)
		if err != nil {
			slog.Warn("failed to list old snapshot files", "prefix", prefix, "error", err)
			continue
		}
		for _, name := range names {
			if keep[name] || !strings.HasPrefix(name, prefix) {
				continue
			}
			if err := s.blobs.Delete(ctx, name); err != nil {
				slog.Warn("failed to delete old snapshot file", "name", name, "error", err)
			}
		}
	}
}

func checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
