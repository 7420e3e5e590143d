package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"financial-assistant/internal/embedding"
	"financial-assistant/internal/models"
	"financial-assistant/internal/vectorindex"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultEmbedWorkers = 8

// SnapshotStoreInterface persists index snapshots
type SnapshotStoreInterface interface {
	Save(ctx context.Context, snap *models.IndexSnapshot) (*models.IndexManifest, error)
	Load(ctx context.Context) (*models.IndexSnapshot, *models.IndexManifest, error)
	Location() string
}

type embeddingIndexService struct {
	embedder embedding.Embedder
	store    SnapshotStoreInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
	workers  int

	// mu serializes Rebuild, Persist and Load. Readers only touch current.
	mu      sync.Mutex
	current atomic.Pointer[models.IndexSnapshot]
}

// NewEmbeddingIndexService creates the index service. store may be nil when
// snapshots are never persisted.
func NewEmbeddingIndexService(
	embedder embedding.Embedder,
	store SnapshotStoreInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	workers int,
) EmbeddingIndexServiceInterface {
	if workers <= 0 {
		workers = defaultEmbedWorkers
	}
	return &embeddingIndexService{
		embedder: embedder,
		store:    store,
		metrics:  metrics,
		logger:   logger,
		workers:  workers,
	}
}

func (s *embeddingIndexService) Build(ctx context.Context, transactions []models.Transaction) error {
	_, err := s.Rebuild(ctx, transactions, false)
	return err
}

// Rebuild builds and publishes a snapshot and, with persist set, saves that
// same snapshot. Concurrent rebuilds and loads wait for each other.
func (s *embeddingIndexService) Rebuild(ctx context.Context, transactions []models.Transaction, persist bool) (*models.IndexSnapshot, error) {
	if len(transactions) == 0 {
		return nil, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	snap, err := s.build(ctx, transactions)
	s.metrics.RecordProcessingTime(MetricIndexBuildTime, time.Since(start))
	if err != nil {
		s.metrics.IncrementCounter(MetricIndexBuild, map[string]string{"status": "failed"})
		return nil, err
	}

	s.publish(snap)
	s.metrics.IncrementCounter(MetricIndexBuild, map[string]string{"status": "success"})
	s.logger.Info("index built",
		"generation", snap.Generation,
		"count", snap.Len(),
		"embedder", snap.Embedder,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if persist {
		if err := s.save(ctx, snap); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func (s *embeddingIndexService) build(ctx context.Context, transactions []models.Transaction) (*models.IndexSnapshot, error) {
	vectors, err := s.embedAll(ctx, transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to embed transactions: %w", err)
	}

	index, err := vectorindex.NewFlatL2(s.embedder.Dim())
	if err != nil {
		return nil, fmt.Errorf("failed to create vector index: %w", err)
	}
	if err := index.Add(vectors...); err != nil {
		return nil, fmt.Errorf("failed to add vectors: %w", err)
	}

	generation, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate snapshot generation: %w", err)
	}

	records := slices.Clone(transactions)
	for i := range records {
		records[i].Position = int64(i)
	}

	return &models.IndexSnapshot{
		Generation:   generation.String(),
		Embedder:     s.embedder.Name(),
		CreatedAt:    time.Now().UTC(),
		Index:        index,
		Transactions: records,
	}, nil
}

// embedAll embeds every transaction text in parallel. vectors[i] always belongs to transactions[i].
func (s *embeddingIndexService) embedAll(ctx context.Context, transactions []models.Transaction) ([][]float32, error) {
	dim := s.embedder.Dim()
	vectors := make([][]float32, len(transactions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range transactions {
		g.Go(func() error {
			vec, err := s.embedder.Embed(gctx, transactions[i].EmbeddingText())
			if err != nil {
				return fmt.Errorf("transaction %s: %w", transactions[i].ID, err)
			}
			if len(vec) != dim {
				return fmt.Errorf("%w: transaction %s has %d values, want %d",
					embedding.ErrUnexpectedDimension, transactions[i].ID, len(vec), dim)
			}
			vectors[i] = vec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func (s *embeddingIndexService) Search(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	if k <= 0 {
		return nil, ErrInvalidTopK
	}

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	neighbors, err := snap.Index.Search(vec, k)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	results := make([]models.SearchResult, len(neighbors))
	for i, n := range neighbors {
		results[i] = models.SearchResult{
			Transaction:     snap.Transactions[n.Position],
			SimilarityScore: models.SimilarityFromDistance(n.Distance),
			Distance:        n.Distance,
		}
	}
	return results, nil
}

func (s *embeddingIndexService) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.current.Load()
	if snap == nil {
		return ErrNotReady
	}
	return s.save(ctx, snap)
}

func (s *embeddingIndexService) save(ctx context.Context, snap *models.IndexSnapshot) error {
	if s.store == nil {
		return errors.New("no snapshot store configured")
	}

	manifest, err := s.store.Save(ctx, snap)
	if err != nil {
		return fmt.Errorf("failed to persist index snapshot: %w", err)
	}

	s.logger.Info("index snapshot persisted",
		"generation", manifest.Generation,
		"count", manifest.Count,
		"location", s.store.Location(),
	)
	return nil
}

func (s *embeddingIndexService) Load(ctx context.Context) error {
	if s.store == nil {
		return errors.New("no snapshot store configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, manifest, err := s.store.Load(ctx)
	if err == nil {
		err = s.checkCompatible(snap)
	}
	if err != nil {
		s.metrics.IncrementCounter(MetricIndexLoad, map[string]string{"status": "failed"})
		return fmt.Errorf("failed to load index snapshot: %w", err)
	}

	if current := s.current.Load(); current != nil && current.Generation == snap.Generation {
		s.metrics.IncrementCounter(MetricIndexLoad, map[string]string{"status": "unchanged"})
		return nil
	}

	for i := range snap.Transactions {
		snap.Transactions[i].Position = int64(i)
	}

	s.publish(snap)
	s.metrics.IncrementCounter(MetricIndexLoad, map[string]string{"status": "success"})
	s.logger.Info("index snapshot loaded",
		"generation", manifest.Generation,
		"count", manifest.Count,
		"location", s.store.Location(),
	)
	return nil
}

// checkCompatible rejects snapshots whose vectors live in another embedding space
func (s *embeddingIndexService) checkCompatible(snap *models.IndexSnapshot) error {
	if snap.Index.Dim() != s.embedder.Dim() {
		return &IndexConsistencyError{
			Reason: fmt.Sprintf("snapshot dimension %d, embedder %s produces %d",
				snap.Index.Dim(), s.embedder.Name(), s.embedder.Dim()),
		}
	}
	if snap.Embedder != "" && snap.Embedder != s.embedder.Name() {
		return &IndexConsistencyError{
			Reason: fmt.Sprintf("snapshot built with embedder %s, configured %s", snap.Embedder, s.embedder.Name()),
		}
	}
	return nil
}

func (s *embeddingIndexService) publish(snap *models.IndexSnapshot) {
	s.current.Store(snap)
	s.metrics.RecordGauge(MetricIndexSize, float64(snap.Len()), nil)
}

func (s *embeddingIndexService) Ready() bool {
	return s.current.Load() != nil
}

func (s *embeddingIndexService) Snapshot() *models.IndexSnapshot {
	return s.current.Load()
}

func (s *embeddingIndexService) Transactions() []models.Transaction {
	snap := s.current.Load()
	if snap == nil {
		return nil
	}
	return snap.Transactions
}
