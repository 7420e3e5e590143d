package embedding

import (
	"context"
	"errors"
	"testing"
	"time"

	"financial-assistant/internal/embedding/embedding_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CachedEmbedderTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	next     *embedding_mocks.MockEmbedder
	embedder *CachedEmbedder
}

func TestCachedEmbedderSuite(t *testing.T) {
	suite.Run(t, new(CachedEmbedderTestSuite))
}

func (s *CachedEmbedderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.next = embedding_mocks.NewMockEmbedder(s.ctrl)
	s.embedder = NewCachedEmbedder(s.next, time.Minute, time.Minute)
}

func (s *CachedEmbedderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedEmbedderTestSuite) TestEmbed_CallsNextOncePerText() {
	ctx := context.Background()
	s.next.EXPECT().Embed(ctx, "salary").Return([]float32{1, 0}, nil).Times(1)

	first, err := s.embedder.Embed(ctx, "salary")
	s.Require().NoError(err)
	second, err := s.embedder.Embed(ctx, "salary")
	s.Require().NoError(err)

	s.Equal([]float32{1, 0}, first)
	s.Equal(first, second)
	s.Equal(1, s.embedder.Len())
}

func (s *CachedEmbedderTestSuite) TestEmbed_ErrorsAreNotCached() {
	ctx := context.Background()
	gomock.InOrder(
		s.next.EXPECT().Embed(ctx, "rent").Return(nil, errors.New("provider down")),
		s.next.EXPECT().Embed(ctx, "rent").Return([]float32{0, 1}, nil),
	)

	_, err := s.embedder.Embed(ctx, "rent")
	s.Error(err)

	vec, err := s.embedder.Embed(ctx, "rent")
	s.NoError(err)
	s.Equal([]float32{0, 1}, vec)
}

func (s *CachedEmbedderTestSuite) TestNameAndDim_DelegateToNext() {
	s.next.EXPECT().Name().Return("hashing-2")
	s.next.EXPECT().Dim().Return(2)

	s.Equal("hashing-2", s.embedder.Name())
	s.Equal(2, s.embedder.Dim())
}
