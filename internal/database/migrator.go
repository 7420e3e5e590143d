package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsPath = "db/migrations"

// ErrNoMigrations reports that the migrations directory does not exist.
var ErrNoMigrations = errors.New("migrations directory not found")

var (
	pingAttempts = 30
	pingInterval = 2 * time.Second
)

// SchemaMigrator applies the versioned SQL files in dir to a Postgres database.
type SchemaMigrator struct {
	db  *sql.DB
	dir string
}

func NewSchemaMigrator(db *sql.DB, dir string) *SchemaMigrator {
	return &SchemaMigrator{db: db, dir: dir}
}

// AwaitReady pings until the database answers, ctx ends or the attempts run out.
func (m *SchemaMigrator) AwaitReady(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = m.db.PingContext(ctx); err == nil {
			return nil
		}
		slog.Warn("database not ready", "attempt", attempt, "of", pingAttempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pingInterval):
		}
	}
	return fmt.Errorf("database unreachable after %d pings: %w", pingAttempts, err)
}

func (m *SchemaMigrator) open() (*migrate.Migrate, error) {
	if _, err := os.Stat(m.dir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMigrations, m.dir)
	}
	abs, err := filepath.Abs(m.dir)
	if err != nil {
		return nil, err
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migrate driver: %w", err)
	}
	return migrate.NewWithDatabaseInstance("file://"+abs, "postgres", driver)
}

// Version reports the applied schema version. Zero means nothing applied yet.
func (m *SchemaMigrator) Version() (uint, bool, error) {
	mg, err := m.open()
	if err != nil {
		return 0, false, err
	}
	v, dirty, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Up applies every pending migration. A dirty version left by a crashed run is
// forced clean first so the same step is retried.
func (m *SchemaMigrator) Up() error {
	mg, err := m.open()
	if err != nil {
		return err
	}

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		slog.Warn("schema is dirty, forcing version", "version", from)
		if err := mg.Force(int(from)); err != nil {
			return fmt.Errorf("force schema version %d: %w", from, err)
		}
	}

	switch err := mg.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("schema up to date", "version", from)
		return nil
	case err != nil:
		return fmt.Errorf("apply migrations: %w", err)
	}

	to, _, _ := mg.Version()
	slog.Info("schema migrated", "from", from, "to", to)
	return nil
}

// migrateSchema waits for the database then applies the SQL migrations.
func migrateSchema(ctx context.Context, db *sql.DB, dir string) error {
	m := NewSchemaMigrator(db, dir)
	if err := m.AwaitReady(ctx); err != nil {
		return err
	}
	return m.Up()
}
