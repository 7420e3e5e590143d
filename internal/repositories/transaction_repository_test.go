package repositories

import (
	"testing"

	"financial-assistant/internal/database"
	"financial-assistant/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db    *database.DB
	repo  TransactionRepositoryInterface
	faker *gofakeit.Faker
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.faker = gofakeit.New(42)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) TestReplaceAll_PreservesOrder() {
	transactions := fakeTransactions(s.faker, 25)
	// Insert in reverse id order so ordering can only come from position.
	for i, j := 0, len(transactions)-1; i < j; i, j = i+1, j-1 {
		transactions[i], transactions[j] = transactions[j], transactions[i]
	}

	s.Require().NoError(s.repo.ReplaceAll(transactions))

	loaded, err := s.repo.ListAll()
	s.Require().NoError(err)
	s.Require().Len(loaded, 25)
	for i := range loaded {
		s.Equal(transactions[i].ID, loaded[i].ID)
		s.Equal(int64(i), loaded[i].Position)
		s.True(transactions[i].Amount.Equal(loaded[i].Amount))
	}
}

func (s *TransactionRepositorySuite) TestReplaceAll_ReplacesPreviousContents() {
	database.CreateTestTransaction(s.T(), s.db, "USER009", 0)
	database.CreateTestTransaction(s.T(), s.db, "USER009", 1)

	s.Require().NoError(s.repo.ReplaceAll(fakeTransactions(s.faker, 3)))

	total, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(3), total)

	loaded, err := s.repo.ListAll()
	s.NoError(err)
	for _, txn := range loaded {
		s.NotEqual("USER009", txn.UserID)
	}
}

func (s *TransactionRepositorySuite) TestReplaceAll_Empty() {
	database.CreateTestTransaction(s.T(), s.db, "USER001", 0)

	s.Require().NoError(s.repo.ReplaceAll(nil))

	total, err := s.repo.Count()
	s.NoError(err)
	s.Zero(total)
}

func (s *TransactionRepositorySuite) TestReplaceAll_InvalidKeepsExisting() {
	database.CreateTestTransaction(s.T(), s.db, "USER001", 0)

	transactions := fakeTransactions(s.faker, 2)
	transactions[1].Type = "refund"

	err := s.repo.ReplaceAll(transactions)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidTransactionType)

	total, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(1), total)
}

func (s *TransactionRepositorySuite) TestSource() {
	s.Equal("database:sqlite", s.repo.Source())
}
