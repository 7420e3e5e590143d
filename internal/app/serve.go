package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financial-assistant/internal/config"
	"financial-assistant/internal/services"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server until ctx is cancelled or SIGINT/SIGTERM arrives.
// With the fs storage backend and watching enabled, snapshot changes on disk
// are reloaded while serving.
func (a *App) Serve(ctx context.Context) error {
	cfg := a.Config

	if err := a.LoadSnapshot(ctx); err != nil {
		a.Logger.Warn("initial snapshot load failed", "error", err)
	}

	e, limiter := a.Router()
	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return limiter.Run(gCtx)
	})

	if cfg.Storage.Backend == config.StorageBackendFS && cfg.Storage.Watch && a.fsDir != "" {
		watcher := services.NewIndexWatcher(a.fsDir, a.Index, cfg.Storage.WatchDebounce, a.Logger)
		g.Go(func() error {
			return watcher.Run(gCtx)
		})
	}

	g.Go(func() error {
		a.Logger.Info("Starting HTTP server",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"llm_enabled", a.LLM.Enabled(),
			"index_ready", a.Index.Ready(),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			a.Logger.Info("Received shutdown signal", "signal", sig.String())
		case <-gCtx.Done():
			a.Logger.Info("Context cancelled, initiating shutdown")
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("HTTP server shutdown error", "error", err)
		}

		// stop the watcher and limiter sweep
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Logger.Error("Application error", "error", err)
		return err
	}

	a.Logger.Info("Server stopped successfully")
	return nil
}
