package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"financial-assistant/internal/app"
	"financial-assistant/internal/database"
	"financial-assistant/internal/dto"
	"financial-assistant/internal/models"
	"financial-assistant/internal/repositories"
	"financial-assistant/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return withApp(ctx, cfg, func(a *app.App) error {
				return a.Serve(ctx)
			}, app.WithRegisterer(prometheus.DefaultRegisterer))
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a synthetic transaction dataset",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "users", Usage: "Number of users"},
			&cli.IntFlag{Name: "min", Usage: "Minimum transactions per user"},
			&cli.IntFlag{Name: "max", Usage: "Maximum transactions per user"},
			&cli.IntFlag{Name: "seed", Usage: "Random seed, 0 for a random dataset"},
			&cli.StringFlag{Name: "out", Usage: "Output JSON file (defaults to DATASET_PATH)"},
			&cli.BoolFlag{Name: "to-db", Usage: "Also replace the transactions table"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			gen := cfg.Generator
			if cmd.IsSet("users") {
				gen.Users = int(cmd.Int("users"))
			}
			if cmd.IsSet("min") {
				gen.MinPerUser = int(cmd.Int("min"))
			}
			if cmd.IsSet("max") {
				gen.MaxPerUser = int(cmd.Int("max"))
			}
			if cmd.IsSet("seed") {
				gen.Seed = cmd.Int("seed")
			}
			if err := gen.Validate(); err != nil {
				return fmt.Errorf("invalid generator options: %w", err)
			}

			transactions := services.NewTransactionGenerator(uint64(gen.Seed)).Generate(services.GeneratorOptions{
				Users:      gen.Users,
				MinPerUser: gen.MinPerUser,
				MaxPerUser: gen.MaxPerUser,
			})

			out := cmd.String("out")
			if out == "" {
				out = cfg.Dataset.Path
			}
			if err := repositories.NewJSONTransactionRepository(out).ReplaceAll(transactions); err != nil {
				return err
			}
			slog.Info("dataset written", "path", out, "count", len(transactions), "users", gen.Users)

			if cmd.Bool("to-db") {
				db, err := database.Initialize(cfg)
				if err != nil {
					return fmt.Errorf("failed to initialize database: %w", err)
				}
				defer db.Close()

				if err := repositories.NewTransactionRepository(db.DB).ReplaceAll(transactions); err != nil {
					return err
				}
				slog.Info("dataset loaded into database", "driver", cfg.Database.Driver, "count", len(transactions))
			}

			return nil
		},
	}
}

func buildIndexCommand() *cli.Command {
	return &cli.Command{
		Name:  "build-index",
		Usage: "Embed the dataset and persist an index snapshot",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Usage: "Dataset source: json or database"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if source := cmd.String("source"); source != "" {
				cfg.Dataset.Source = source
				if err := cfg.Dataset.Validate(); err != nil {
					return fmt.Errorf("invalid source: %w", err)
				}
			}

			return withApp(ctx, cfg, func(a *app.App) error {
				start := time.Now()
				snap, err := a.Indexer.Reindex(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.Root().Writer, "generation %s: %d transactions from %s in %s\n",
					snap.Generation, snap.Len(), a.Indexer.Source(), time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find transactions similar to a query",
		ArgsUsage: "QUERY",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "top-k", Aliases: []string{"k"}, Value: dto.DefaultTopK, Usage: "Number of results"},
			&cli.StringFlag{Name: "user", Usage: "Only this user's transactions"},
			&cli.StringFlag{Name: "category", Usage: "Only this category"},
			&cli.StringFlag{Name: "min", Usage: "Minimum amount"},
			&cli.StringFlag{Name: "max", Usage: "Maximum amount"},
			&cli.BoolFlag{Name: "json", Usage: "Print results as JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if query == "" {
				return errors.New("a search query is required")
			}

			filters, err := services.ParseFilters(cmd.String("user"), cmd.String("category"), cmd.String("min"), cmd.String("max"))
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return withApp(ctx, cfg, func(a *app.App) error {
				if err := loadIndex(ctx, a); err != nil {
					return err
				}

				results, err := a.Search.Search(ctx, query, int(cmd.Int("top-k")), filters)
				if err != nil {
					return err
				}

				w := cmd.Root().Writer
				if cmd.Bool("json") {
					return writeJSON(w, dto.SearchResponse{Query: query, TotalResults: len(results), Results: results})
				}
				printResults(w, results)
				return nil
			})
		},
	}
}

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Print a statistical summary of transactions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Usage: "Summarize one user"},
			&cli.StringFlag{Name: "category", Usage: "Summarize one category"},
			&cli.IntFlag{Name: "limit", Value: dto.DefaultSummaryLimit, Usage: "Number of transactions"},
			&cli.BoolFlag{Name: "json", Usage: "Print the report as JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return withApp(ctx, cfg, func(a *app.App) error {
				if err := loadIndex(ctx, a); err != nil {
					return err
				}

				transactions, err := a.Catalog.Select(cmd.String("user"), cmd.String("category"), int(cmd.Int("limit")))
				if err != nil {
					return err
				}
				report := a.Summary.Summarize(transactions)
				text := a.Summary.RenderText(report)

				w := cmd.Root().Writer
				if cmd.Bool("json") {
					return writeJSON(w, dto.SummaryResponse{Summary: report, TextSummary: text, TransactionCount: len(transactions)})
				}
				fmt.Fprintln(w, text)
				return nil
			})
		},
	}
}

func askCommand() *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Ask the language model a question about the transactions",
		ArgsUsage: "QUESTION",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "context-limit", Value: dto.DefaultContextLimit, Usage: "Transactions given to the model"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			question := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if question == "" {
				return errors.New("a question is required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return withApp(ctx, cfg, func(a *app.App) error {
				if !a.LLM.Enabled() {
					return fmt.Errorf("%w: set GOOGLE_API_KEY", services.ErrLLMDisabled)
				}
				if err := loadIndex(ctx, a); err != nil {
					return err
				}

				transactions, err := a.Catalog.Select("", "", int(cmd.Int("context-limit")))
				if err != nil {
					return err
				}

				result := a.LLM.Answer(ctx, transactions, question)
				if result.Status == models.LLMStatusFailed {
					return fmt.Errorf("%w: %v", services.ErrLLMUnavailable, result.Err)
				}
				fmt.Fprintln(cmd.Root().Writer, result.Text)
				return nil
			})
		},
	}
}

func adminTokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin-token",
		Usage: "Mint an admin JWT for the /api/admin routes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Value: "admin", Usage: "Token subject"},
			&cli.DurationFlag{Name: "ttl", Usage: "Token lifetime (defaults to ADMIN_TOKEN_TTL)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			token, expiresAt, err := services.NewTokenService(&cfg.Security).GenerateAdminToken(cmd.String("subject"), cmd.Duration("ttl"))
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			fmt.Fprintln(w, token)
			fmt.Fprintf(w, "expires %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
}

func loadIndex(ctx context.Context, a *app.App) error {
	if err := a.Index.Load(ctx); err != nil {
		if errors.Is(err, services.ErrSnapshotNotFound) {
			return fmt.Errorf("%w: run build-index first", err)
		}
		return err
	}
	return nil
}

func printResults(w io.Writer, results []models.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no matching transactions")
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%2d. %.4f  %s  %s  %s  %-18s %14s  %s\n",
			i+1, r.SimilarityScore, r.ID, r.UserID, r.Date,
			models.LabelOrUnknown(r.Category), services.FormatRupees(r.Amount), r.Description)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
