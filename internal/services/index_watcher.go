package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"financial-assistant/internal/storage"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 500 * time.Millisecond

// IndexWatcher reloads the index whenever the snapshot manifest in dir changes
type IndexWatcher struct {
	dir      string
	index    EmbeddingIndexServiceInterface
	debounce time.Duration
	logger   *slog.Logger

	// reloaded is signalled after every reload attempt; used by tests
	reloaded func(err error)
}

func NewIndexWatcher(dir string, index EmbeddingIndexServiceInterface, debounce time.Duration, logger *slog.Logger) *IndexWatcher {
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}
	return &IndexWatcher{
		dir:      dir,
		index:    index,
		debounce: debounce,
		logger:   logger,
	}
}

// Run watches until ctx is cancelled. A failed reload keeps the published snapshot.
func (w *IndexWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.logger.Info("index watcher started", "dir", w.dir, "debounce", w.debounce)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info("index watcher stopped")
			return nil

		case <-timerC:
			timerC = nil
			w.reload(ctx)

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != storage.ManifestName {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("index watcher error", "error", watchErr)
		}
	}
}

func (w *IndexWatcher) reload(ctx context.Context) {
	err := w.index.Load(ctx)
	switch {
	case err == nil:
		if snap := w.index.Snapshot(); snap != nil {
			w.logger.Debug("index reloaded after snapshot change", "generation", snap.Generation)
		}
	case errors.Is(err, ErrSnapshotNotFound):
		w.logger.Warn("snapshot manifest disappeared, keeping current index", "dir", w.dir)
	default:
		w.logger.Error("failed to reload index, keeping current snapshot", "error", err)
	}

	if w.reloaded != nil {
		w.reloaded(err)
	}
}
