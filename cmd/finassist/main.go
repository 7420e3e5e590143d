package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"financial-assistant/internal/app"
	"financial-assistant/internal/config"
	"financial-assistant/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

// loadConfig reads the environment, overlays the optional YAML file and
// installs the default logger.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if path := cmd.String("config"); path != "" {
		if err := config.LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Init(cfg.Log.Level, cfg.LogFormat())
	return cfg, nil
}

// withApp builds the application for one command and closes it afterwards.
// Only serve exposes metrics, so other commands get a private registry.
func withApp(ctx context.Context, cfg *config.Config, fn func(*app.App) error, opts ...app.Option) error {
	if len(opts) == 0 {
		opts = []app.Option{app.WithRegisterer(prometheus.NewRegistry())}
	}

	a, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Warn("failed to close resources", "error", err)
		}
	}()

	return fn(a)
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "finassist",
		Usage: "Semantic search and analytics over financial transactions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an optional YAML config overlay",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			generateCommand(),
			buildIndexCommand(),
			searchCommand(),
			summaryCommand(),
			askCommand(),
			adminTokenCommand(),
		},
	}
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}
