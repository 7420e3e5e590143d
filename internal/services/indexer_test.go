package services_test

import (
	"context"
	"errors"
	"testing"

	"financial-assistant/internal/models"
	"financial-assistant/internal/repositories/repository_mocks"
	"financial-assistant/internal/services"
	"financial-assistant/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type IndexerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ctx       context.Context
	mockRepo  *repository_mocks.MockTransactionRepositoryInterface
	mockIndex *service_mocks.MockEmbeddingIndexServiceInterface
	mockAudit *service_mocks.MockSearchAuditLoggerInterface
}

func TestIndexerSuite(t *testing.T) {
	suite.Run(t, new(IndexerTestSuite))
}

func (s *IndexerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockIndex = service_mocks.NewMockEmbeddingIndexServiceInterface(s.ctrl)
	s.mockAudit = service_mocks.NewMockSearchAuditLoggerInterface(s.ctrl)
	s.mockRepo.EXPECT().Source().Return("json:data/transactions.json").AnyTimes()
}

func (s *IndexerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *IndexerTestSuite) TestReindex_BuildsAndPersists() {
	txns := sampleTransactions()
	snap := &models.IndexSnapshot{Generation: "gen-7", Transactions: txns}

	gomock.InOrder(
		s.mockRepo.EXPECT().ListAll().Return(txns, nil),
		s.mockIndex.EXPECT().Rebuild(s.ctx, txns, true).Return(snap, nil),
		s.mockAudit.EXPECT().LogIndexPublished(s.ctx, "gen-7", len(txns), "json:data/transactions.json"),
	)

	indexer := services.NewIndexer(s.mockRepo, s.mockIndex, s.mockAudit, true, discardLogger)
	got, err := indexer.Reindex(s.ctx)

	s.Require().NoError(err)
	s.Same(snap, got)
	s.Equal("json:data/transactions.json", indexer.Source())
}

func (s *IndexerTestSuite) TestReindex_WithoutPersist() {
	txns := sampleTransactions()
	snap := &models.IndexSnapshot{Generation: "gen-8", Transactions: txns}

	s.mockRepo.EXPECT().ListAll().Return(txns, nil)
	s.mockIndex.EXPECT().Rebuild(s.ctx, txns, false).Return(snap, nil)
	s.mockIndex.EXPECT().Persist(gomock.Any()).Times(0)
	s.mockIndex.EXPECT().Snapshot().Times(0)
	s.mockAudit.EXPECT().LogIndexPublished(s.ctx, "gen-8", len(txns), gomock.Any())

	_, err := services.NewIndexer(s.mockRepo, s.mockIndex, s.mockAudit, false, discardLogger).Reindex(s.ctx)
	s.NoError(err)
}

func (s *IndexerTestSuite) TestReindex_RepositoryError() {
	repoErr := errors.New("dataset unreadable")
	s.mockRepo.EXPECT().ListAll().Return(nil, repoErr)

	_, err := services.NewIndexer(s.mockRepo, s.mockIndex, s.mockAudit, true, discardLogger).Reindex(s.ctx)
	s.ErrorIs(err, repoErr)
	s.ErrorContains(err, "json:data/transactions.json")
}

func (s *IndexerTestSuite) TestReindex_EmptyDataset() {
	s.mockRepo.EXPECT().ListAll().Return([]models.Transaction{}, nil)
	s.mockIndex.EXPECT().Rebuild(s.ctx, []models.Transaction{}, true).Return(nil, services.ErrEmptyInput)

	_, err := services.NewIndexer(s.mockRepo, s.mockIndex, s.mockAudit, true, discardLogger).Reindex(s.ctx)
	s.ErrorIs(err, services.ErrEmptyInput)
}

func (s *IndexerTestSuite) TestReindex_PersistError() {
	txns := sampleTransactions()
	persistErr := errors.New("bucket not writable")

	s.mockRepo.EXPECT().ListAll().Return(txns, nil)
	s.mockIndex.EXPECT().Rebuild(s.ctx, txns, true).Return(nil, persistErr)
	s.mockAudit.EXPECT().LogIndexPublished(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := services.NewIndexer(s.mockRepo, s.mockIndex, s.mockAudit, true, discardLogger).Reindex(s.ctx)
	s.ErrorIs(err, persistErr)
}
