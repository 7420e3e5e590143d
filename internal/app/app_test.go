package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"financial-assistant/internal/config"
	"financial-assistant/internal/dto"
	"financial-assistant/internal/repositories"
	"financial-assistant/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite
	cfg *config.Config
	app *App
	e   *echo.Echo
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("APP_ENV", config.EnvTesting)
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("ADMIN_JWT_SECRET", strings.Repeat("s", 32))

	cfg, err := config.Load()
	require.NoError(t, err)

	dir := t.TempDir()
	cfg.Storage.Backend = config.StorageBackendFS
	cfg.Storage.Dir = filepath.Join(dir, "index")
	cfg.Dataset.Source = config.DatasetSourceJSON
	cfg.Dataset.Path = filepath.Join(dir, "transactions.json")
	cfg.Embedding.Provider = config.EmbeddingProviderHashing
	cfg.Embedding.Dimension = 64
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	require.NoError(t, cfg.Validate())

	generated := services.NewTransactionGenerator(7).Generate(services.GeneratorOptions{
		Users:      2,
		MinPerUser: 15,
		MaxPerUser: 20,
	})
	require.NoError(t, repositories.NewJSONTransactionRepository(cfg.Dataset.Path).ReplaceAll(generated))

	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := New(context.Background(), cfg,
		WithLogger(slog.New(slog.DiscardHandler)),
		WithRegisterer(prometheus.NewRegistry()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func (s *AppTestSuite) SetupTest() {
	s.cfg = newTestConfig(s.T())
	s.app = newTestApp(s.T(), s.cfg)
	s.e, _ = s.app.Router()
}

func (s *AppTestSuite) do(method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *AppTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AppTestSuite) adminHeader() http.Header {
	token, _, err := s.app.Tokens.GenerateAdminToken("ops", time.Minute)
	s.Require().NoError(err)
	return http.Header{echo.HeaderAuthorization: []string{"Bearer " + token}}
}

func (s *AppTestSuite) TestHealthBeforeIndex() {
	rec := s.do(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("healthy", resp.Status)
	s.False(resp.Services["search"])
	s.False(resp.Services["llm"])
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
}

func (s *AppTestSuite) TestSearchNotReady() {
	rec := s.do(http.MethodPost, "/api/search", dto.SearchRequest{Query: "coffee", TopK: 5}, nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("SEARCH_001", s.errorCode(rec))
}

func (s *AppTestSuite) TestAdminRequiresToken() {
	rec := s.do(http.MethodPost, "/api/admin/reindex", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *AppTestSuite) TestReindexThenSearch() {
	rec := s.do(http.MethodPost, "/api/admin/reindex", nil, s.adminHeader())
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var reindex struct {
		Data dto.ReindexResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reindex))
	s.NotEmpty(reindex.Data.Generation)
	s.Positive(reindex.Data.Count)
	s.Equal("json:"+s.cfg.Dataset.Path, reindex.Data.Source)

	rec = s.do(http.MethodPost, "/api/search", dto.SearchRequest{Query: "coffee shop", TopK: 5}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var search dto.SearchResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &search))
	s.Equal("coffee shop", search.Query)
	s.Len(search.Results, 5)
	s.Equal(5, search.TotalResults)

	rec = s.do(http.MethodGet, "/api/search?q=salary&top_k=3&user_id=USER001", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &search))
	for _, r := range search.Results {
		s.Equal("USER001", r.Transaction.UserID)
	}

	rec = s.do(http.MethodGet, "/api/categories", nil, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/summary", dto.SummaryRequest{Limit: 50}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), "text_summary")
}

func (s *AppTestSuite) TestReloadPublishesPersistedSnapshot() {
	_, err := s.app.Indexer.Reindex(context.Background())
	s.Require().NoError(err)
	generation := s.app.Index.Snapshot().Generation

	other := newTestApp(s.T(), s.cfg)
	s.False(other.Index.Ready())
	s.Require().NoError(other.LoadSnapshot(context.Background()))
	s.True(other.Index.Ready())
	s.Equal(generation, other.Index.Snapshot().Generation)
}

func (s *AppTestSuite) TestLLMDisabled() {
	_, err := s.app.Indexer.Reindex(context.Background())
	s.Require().NoError(err)

	rec := s.do(http.MethodPost, "/api/summarize", dto.SummaryRequest{Limit: 10}, nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("LLM_001", s.errorCode(rec))
}

func (s *AppTestSuite) TestMetricsEndpoint() {
	rec := s.do(http.MethodGet, "/metrics", nil, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Header().Get("Pragma"))
}

func (s *AppTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/nope", nil, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_005", s.errorCode(rec))
}

func TestLoadSnapshotMissingIsNotAnError(t *testing.T) {
	a := newTestApp(t, newTestConfig(t))

	assert.NoError(t, a.LoadSnapshot(context.Background()))
	assert.False(t, a.Index.Ready())
}

func TestNewRejectsGeminiWithoutKey(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Embedding.Provider = config.EmbeddingProviderGemini

	_, err := New(context.Background(), cfg, WithRegisterer(prometheus.NewRegistry()))
	assert.Error(t, err)
}

func TestServeStopsOnCancel(t *testing.T) {
	a := newTestApp(t, newTestConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
