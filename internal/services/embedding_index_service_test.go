package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"financial-assistant/internal/embedding"
	"financial-assistant/internal/embedding/embedding_mocks"
	"financial-assistant/internal/models"
	"financial-assistant/internal/services"
	"financial-assistant/internal/storage"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type EmbeddingIndexServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	dir      string
	embedder *embedding.HashingEmbedder
	store    *storage.SnapshotStore
	service  services.EmbeddingIndexServiceInterface
}

func TestEmbeddingIndexServiceSuite(t *testing.T) {
	suite.Run(t, new(EmbeddingIndexServiceTestSuite))
}

func (s *EmbeddingIndexServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()

	var err error
	s.embedder, err = embedding.NewHashingEmbedder(128)
	s.Require().NoError(err)

	blobs, err := storage.NewFSBlobStore(s.dir)
	s.Require().NoError(err)
	s.store = storage.NewSnapshotStore(blobs)

	s.service = s.newService(s.embedder)
}

func (s *EmbeddingIndexServiceTestSuite) newService(e embedding.Embedder) services.EmbeddingIndexServiceInterface {
	return services.NewEmbeddingIndexService(e, s.store, services.NewNoopMetrics(), discardLogger, 4)
}

func (s *EmbeddingIndexServiceTestSuite) TestNotReadyBeforeBuild() {
	s.False(s.service.Ready())
	s.Nil(s.service.Snapshot())
	s.Nil(s.service.Transactions())

	_, err := s.service.Search(s.ctx, "coffee", 3)
	s.ErrorIs(err, services.ErrNotReady)

	s.ErrorIs(s.service.Persist(s.ctx), services.ErrNotReady)
}

func (s *EmbeddingIndexServiceTestSuite) TestBuild_EmptyInput() {
	s.ErrorIs(s.service.Build(s.ctx, nil), services.ErrEmptyInput)
	s.ErrorIs(s.service.Build(s.ctx, []models.Transaction{}), services.ErrEmptyInput)
	s.False(s.service.Ready())
}

func (s *EmbeddingIndexServiceTestSuite) TestBuild_PairsVectorsWithTransactions() {
	txns := sampleTransactions()
	s.Require().NoError(s.service.Build(s.ctx, txns))

	snap := s.service.Snapshot()
	s.Require().NotNil(snap)
	s.Equal(len(txns), snap.Index.Len())
	s.Equal(len(txns), snap.Len())
	s.Equal(s.embedder.Name(), snap.Embedder)
	s.NotEmpty(snap.Generation)

	for i, txn := range snap.Transactions {
		s.Equal(txns[i].ID, txn.ID)
		s.Equal(int64(i), txn.Position)

		want, err := s.embedder.Embed(s.ctx, txns[i].EmbeddingText())
		s.Require().NoError(err)
		s.Equal(want, snap.Index.Vector(i))
	}
}

func (s *EmbeddingIndexServiceTestSuite) TestSearch_ExactTextRanksFirst() {
	txns := sampleTransactions()
	s.Require().NoError(s.service.Build(s.ctx, txns))

	results, err := s.service.Search(s.ctx, txns[2].EmbeddingText(), 3)
	s.Require().NoError(err)
	s.Require().Len(results, 3)

	s.Equal("TXN000003", results[0].ID)
	s.InDelta(0, results[0].Distance, 1e-9)
	s.InDelta(1, results[0].SimilarityScore, 1e-9)

	for i := 1; i < len(results); i++ {
		s.GreaterOrEqual(results[i].Distance, results[i-1].Distance)
		s.LessOrEqual(results[i].SimilarityScore, results[i-1].SimilarityScore)
		s.InDelta(1/(1+results[i].Distance), results[i].SimilarityScore, 1e-12)
	}
}

func (s *EmbeddingIndexServiceTestSuite) TestSearch_ResultsReferenceStoredPositions() {
	txns := sampleTransactions()
	s.Require().NoError(s.service.Build(s.ctx, txns))

	for _, query := range []string{"coffee", "salary income", "flight travel", "bill"} {
		results, err := s.service.Search(s.ctx, query, 4)
		s.Require().NoError(err)
		s.LessOrEqual(len(results), 4)
		for _, r := range results {
			s.Equal(txns[r.Position].ID, r.ID)
		}
	}
}

func (s *EmbeddingIndexServiceTestSuite) TestSearch_KLargerThanIndex() {
	txns := sampleTransactions()
	s.Require().NoError(s.service.Build(s.ctx, txns))

	results, err := s.service.Search(s.ctx, "anything", 100)
	s.NoError(err)
	s.Len(results, len(txns))
}

func (s *EmbeddingIndexServiceTestSuite) TestSearch_InvalidK() {
	s.Require().NoError(s.service.Build(s.ctx, sampleTransactions()))

	for _, k := range []int{0, -1} {
		_, err := s.service.Search(s.ctx, "coffee", k)
		s.ErrorIs(err, services.ErrInvalidTopK)
	}
}

func (s *EmbeddingIndexServiceTestSuite) TestBuild_ReplacesSnapshot() {
	txns := sampleTransactions()
	s.Require().NoError(s.service.Build(s.ctx, txns))
	first := s.service.Snapshot()

	s.Require().NoError(s.service.Build(s.ctx, txns[:2]))
	second := s.service.Snapshot()

	s.NotEqual(first.Generation, second.Generation)
	s.Equal(2, second.Len())
	s.Equal(len(txns), first.Len(), "published snapshots are never mutated")
}

func (s *EmbeddingIndexServiceTestSuite) TestBuild_DimensionMismatchPublishesNothing() {
	ctrl := gomock.NewController(s.T())
	mockEmbedder := embedding_mocks.NewMockEmbedder(ctrl)
	mockEmbedder.EXPECT().Dim().Return(4).AnyTimes()
	mockEmbedder.EXPECT().Name().Return("mock").AnyTimes()
	mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([]float32{1, 0, 0}, nil).AnyTimes()

	svc := s.newService(mockEmbedder)
	err := svc.Build(s.ctx, sampleTransactions())
	s.ErrorIs(err, embedding.ErrUnexpectedDimension)
	s.False(svc.Ready())
}

func (s *EmbeddingIndexServiceTestSuite) TestBuild_EmbedFailureKeepsPreviousSnapshot() {
	s.Require().NoError(s.service.Build(s.ctx, sampleTransactions()))
	before := s.service.Snapshot()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.service.Build(ctx, sampleTransactions())
	s.ErrorIs(err, context.Canceled)
	s.Same(before, s.service.Snapshot())
}

func (s *EmbeddingIndexServiceTestSuite) TestPersistLoad_RoundTripGivesIdenticalResults() {
	txns := sampleTransactions()
	s.Require().NoError(s.service.Build(s.ctx, txns))
	s.Require().NoError(s.service.Persist(s.ctx))

	queries := []string{"coffee shop", "monthly salary", "online course fees", "power bill"}
	want := make(map[string][]models.SearchResult)
	for _, q := range queries {
		results, err := s.service.Search(s.ctx, q, 3)
		s.Require().NoError(err)
		want[q] = results
	}

	reloaded := s.newService(s.embedder)
	s.Require().NoError(reloaded.Load(s.ctx))
	s.True(reloaded.Ready())
	s.Equal(s.service.Snapshot().Generation, reloaded.Snapshot().Generation)

	for _, q := range queries {
		got, err := reloaded.Search(s.ctx, q, 3)
		s.Require().NoError(err)
		s.Require().Len(got, len(want[q]))
		for i := range got {
			s.Equal(want[q][i].ID, got[i].ID)
			s.Equal(want[q][i].Position, got[i].Position)
			s.Equal(want[q][i].SimilarityScore, got[i].SimilarityScore)
			s.True(want[q][i].Amount.Equal(got[i].Amount))
		}
	}
}

func (s *EmbeddingIndexServiceTestSuite) TestLoad_NoSnapshot() {
	err := s.service.Load(s.ctx)
	s.ErrorIs(err, services.ErrSnapshotNotFound)
	s.False(s.service.Ready())
}

func (s *EmbeddingIndexServiceTestSuite) TestLoad_CorruptedSnapshotKeepsPublished() {
	s.Require().NoError(s.service.Build(s.ctx, sampleTransactions()))
	s.Require().NoError(s.service.Persist(s.ctx))
	before := s.service.Snapshot()

	s.Require().NoError(s.service.Build(s.ctx, sampleTransactions()[:3]))
	s.Require().NoError(s.service.Persist(s.ctx))
	current := s.service.Snapshot()

	manifest, err := s.store.Manifest(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, manifest.TransactionsFile), []byte("[]"), 0o644))

	err = s.service.Load(s.ctx)
	s.ErrorIs(err, services.ErrIndexConsistency)

	var consistencyErr *services.IndexConsistencyError
	s.True(errors.As(err, &consistencyErr))
	s.Same(current, s.service.Snapshot())
	s.NotSame(before, s.service.Snapshot())
}

func (s *EmbeddingIndexServiceTestSuite) TestLoad_RejectsOtherEmbeddingSpace() {
	s.Require().NoError(s.service.Build(s.ctx, sampleTransactions()))
	s.Require().NoError(s.service.Persist(s.ctx))

	other, err := embedding.NewHashingEmbedder(64)
	s.Require().NoError(err)

	svc := s.newService(other)
	err = svc.Load(s.ctx)
	s.ErrorIs(err, services.ErrIndexConsistency)
	s.False(svc.Ready())
}

func (s *EmbeddingIndexServiceTestSuite) TestConcurrentSearchDuringRebuild() {
	txns := sampleTransactions()
	s.Require().NoError(s.service.Build(s.ctx, txns))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				results, err := s.service.Search(s.ctx, "coffee", 2)
				if err != nil || len(results) != 2 {
					s.Fail("search failed during rebuild", "err=%v len=%d", err, len(results))
					return
				}
			}
		}()
	}

	for i := 0; i < 5; i++ {
		s.NoError(s.service.Build(s.ctx, txns))
	}
	wg.Wait()
}

func (s *EmbeddingIndexServiceTestSuite) TestRebuild_PersistsTheSnapshotItReturns() {
	snap, err := s.service.Rebuild(s.ctx, sampleTransactions(), true)
	s.Require().NoError(err)
	s.Same(snap, s.service.Snapshot())

	manifest, err := s.store.Manifest(s.ctx)
	s.Require().NoError(err)
	s.Equal(snap.Generation, manifest.Generation)
	s.Equal(snap.Len(), manifest.Count)
}

func (s *EmbeddingIndexServiceTestSuite) TestRebuild_ConcurrentPersistsStayLoadable() {
	txns := sampleTransactions()

	const rebuilds = 4
	generations := make([]string, rebuilds)
	errs := make([]error, rebuilds)

	var wg sync.WaitGroup
	for i := range rebuilds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, err := s.service.Rebuild(s.ctx, txns[:2+i], true)
			errs[i] = err
			if err == nil {
				generations[i] = snap.Generation
			}
		}()
	}
	wg.Wait()

	for i := range rebuilds {
		s.Require().NoError(errs[i])
	}

	manifest, err := s.store.Manifest(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.service.Snapshot().Generation, manifest.Generation)
	s.Contains(generations, manifest.Generation)

	reloaded := s.newService(s.embedder)
	s.Require().NoError(reloaded.Load(s.ctx))
	s.Equal(manifest.Generation, reloaded.Snapshot().Generation)
	s.Equal(manifest.Count, reloaded.Snapshot().Len())
}
