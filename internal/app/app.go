// Package app wires configuration, storage and services into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"financial-assistant/internal/config"
	"financial-assistant/internal/database"
	"financial-assistant/internal/embedding"
	"financial-assistant/internal/models"
	"financial-assistant/internal/repositories"
	"financial-assistant/internal/services"
	"financial-assistant/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/genai"
)

// App holds the services shared by the HTTP server and the CLI commands
type App struct {
	Config *config.Config
	Logger *slog.Logger

	Repo    repositories.TransactionRepositoryInterface
	Index   services.EmbeddingIndexServiceInterface
	Search  services.SearchServiceInterface
	Summary services.SummaryServiceInterface
	Catalog services.CatalogServiceInterface
	LLM     services.LLMSummarizerInterface
	Indexer services.IndexerInterface
	Tokens  services.TokenServiceInterface
	Audit   services.SearchAuditLoggerInterface
	Metrics services.MetricsRecorderInterface

	db       *database.DB
	fsDir    string
	registry prometheus.Registerer
	closers  []func() error
}

type Option func(*App)

// WithLogger overrides the logger, which defaults to slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.Logger = logger
	}
}

// WithRegisterer registers service metrics with reg instead of the default registry
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(a *App) {
		a.registry = reg
	}
}

// New builds every service described by cfg. Call Close when done.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	a := &App{
		Config:   cfg,
		Logger:   slog.Default(),
		registry: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.init(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.Config

	a.Metrics = services.NewPrometheusMetrics(a.registry)
	a.Audit = services.NewSearchAuditLogger(a.Logger)
	a.Summary = services.NewSummaryService()
	a.Tokens = services.NewTokenService(&cfg.Security)

	var client *genai.Client
	if cfg.LLMEnabled() {
		c, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.LLM.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("failed to create genai client: %w", err)
		}
		client = c
	}

	embedder, err := newEmbedder(cfg, client)
	if err != nil {
		return err
	}

	blobs, err := a.newBlobStore(ctx)
	if err != nil {
		return err
	}

	a.Index = services.NewEmbeddingIndexService(
		embedder,
		storage.NewSnapshotStore(blobs),
		a.Metrics,
		a.Logger,
		cfg.Embedding.Workers,
	)
	a.Search = services.NewSearchService(a.Index, a.Metrics, a.Audit)
	a.Catalog = services.NewCatalogService(a.Index, cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	if client != nil {
		breakerCfg := services.DefaultCircuitBreakerConfig()
		breakerCfg.OnStateChange = func(name string, from, to models.CircuitBreakerState) {
			a.Logger.Warn("circuit breaker state changed", "service", name, "from", from.String(), "to", to.String())
			a.Metrics.RecordGauge(services.MetricCircuitBreakerSet, float64(to), map[string]string{"service": name})
		}
		a.LLM = services.NewLLMSummarizer(
			client.Models,
			&cfg.LLM,
			services.NewCircuitBreaker(breakerCfg),
			a.Metrics,
			a.Logger,
		)
	} else {
		a.LLM = services.NewDisabledLLMSummarizer()
	}

	repo, err := a.newRepository()
	if err != nil {
		return err
	}
	a.Repo = repo
	a.Indexer = services.NewIndexer(repo, a.Index, a.Audit, true, a.Logger)

	return nil
}

func newEmbedder(cfg *config.Config, client *genai.Client) (embedding.Embedder, error) {
	var (
		embedder embedding.Embedder
		err      error
	)

	switch cfg.Embedding.Provider {
	case config.EmbeddingProviderGemini:
		if client == nil {
			return nil, errors.New("gemini embeddings require GOOGLE_API_KEY")
		}
		embedder, err = embedding.NewGeminiEmbedder(client.Models, cfg.Embedding.Model, cfg.Embedding.Dimension)
	default:
		embedder, err = embedding.NewHashingEmbedder(cfg.Embedding.Dimension)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	if cfg.Embedding.CacheTTL > 0 {
		embedder = embedding.NewCachedEmbedder(embedder, cfg.Embedding.CacheTTL, cfg.Cache.CleanupInterval)
	}
	return embedder, nil
}

func (a *App) newBlobStore(ctx context.Context) (storage.BlobStore, error) {
	cfg := a.Config.Storage

	if cfg.Backend == config.StorageBackendGCS {
		client, err := storage.NewGCSClient(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return storage.NewGCSBlobStore(client, cfg.Bucket, cfg.Prefix)
	}

	blobs, err := storage.NewFSBlobStore(cfg.Dir)
	if err != nil {
		return nil, err
	}
	a.fsDir = blobs.Dir()
	return blobs, nil
}

func (a *App) newRepository() (repositories.TransactionRepositoryInterface, error) {
	if a.Config.Dataset.Source != config.DatasetSourceDatabase {
		return repositories.NewJSONTransactionRepository(a.Config.Dataset.Path), nil
	}

	db, err := database.Initialize(a.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	a.closers = append(a.closers, db.Close)
	return repositories.NewTransactionRepository(db.DB), nil
}

// LoadSnapshot publishes the persisted snapshot when one exists. A missing
// snapshot is not an error: the index stays unready until a reindex.
func (a *App) LoadSnapshot(ctx context.Context) error {
	err := a.Index.Load(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrSnapshotNotFound):
		a.Logger.Warn("no index snapshot found, run build-index or POST /api/admin/reindex",
			"source", a.Indexer.Source())
		return nil
	default:
		return err
	}
}

// Close releases the database and storage clients
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
