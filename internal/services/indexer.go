package services

import (
	"context"
	"fmt"
	"log/slog"

	"financial-assistant/internal/models"
	"financial-assistant/internal/repositories"
)

type indexer struct {
	repo    repositories.TransactionRepositoryInterface
	index   EmbeddingIndexServiceInterface
	audit   SearchAuditLoggerInterface
	persist bool
	logger  *slog.Logger
}

// NewIndexer rebuilds the index from repo. With persist set, every rebuild is
// written to the snapshot store before Reindex returns.
func NewIndexer(
	repo repositories.TransactionRepositoryInterface,
	index EmbeddingIndexServiceInterface,
	audit SearchAuditLoggerInterface,
	persist bool,
	logger *slog.Logger,
) IndexerInterface {
	return &indexer{
		repo:    repo,
		index:   index,
		audit:   audit,
		persist: persist,
		logger:  logger,
	}
}

func (i *indexer) Source() string {
	return i.repo.Source()
}

func (i *indexer) Reindex(ctx context.Context) (*models.IndexSnapshot, error) {
	transactions, err := i.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions from %s: %w", i.repo.Source(), err)
	}

	i.logger.InfoContext(ctx, "rebuilding index", "source", i.repo.Source(), "count", len(transactions))

	snap, err := i.index.Rebuild(ctx, transactions, i.persist)
	if err != nil {
		return nil, err
	}

	i.audit.LogIndexPublished(ctx, snap.Generation, snap.Len(), i.repo.Source())
	return snap, nil
}
