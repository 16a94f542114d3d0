package postgresdb

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/join/schema"
)

// Migrate runs all pending migrations from schema/pgmigrations/*.sql files.
// Migrations are applied in alphabetical order (use numeric prefixes: 001_xxx.sql, 002_xxx.sql).
// Already-applied migrations are tracked in the schema_migrations table.
// This is a forward-only migration system - no rollbacks.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if err := StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	log.InfoContext(ctx, "running database migrations", "engine", "postgres")

	if err := runMigrations(ctx, pool, log, schema.PostgresFS, schema.PostgresDir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations complete", "engine", "postgres")
	return nil
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger, fsys fs.FS, dir string) error {
	if err := createMigrationsTable(ctx, pool); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	files, err := schema.Versions(fsys, dir)
	if err != nil {
		return fmt.Errorf("get migration files: %w", err)
	}

	for _, file := range files {
		if err := applyMigration(ctx, pool, log, fsys, path.Join(dir, file)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}

	return nil
}

func createMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			checksum VARCHAR(64) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	_, err := pool.Exec(ctx, query)
	return err
}

// applyMigration applies a single migration if it hasn't been applied yet.
// An applied migration whose content changed is an error.
func applyMigration(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger, fsys fs.FS, filePath string) error {
	version := path.Base(filePath)

	content, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}

	checksum := fmt.Sprintf("%x", sha256.Sum256(content))

	var existingChecksum string
	err = pool.QueryRow(ctx, "SELECT checksum FROM schema_migrations WHERE version = $1", version).Scan(&existingChecksum)
	switch {
	case err == nil:
		if existingChecksum != checksum {
			return fmt.Errorf("checksum mismatch: migration %s was modified after being applied (expected %s, got %s)",
				version, existingChecksum, checksum)
		}
		log.DebugContext(ctx, "migration already applied", "version", version)
		return nil
	case !errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("read applied migration: %w", err)
	}

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("execute migration: %w", err)
		}
		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)", version, checksum); err != nil {
			return fmt.Errorf("record migration: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "migration applied", "version", version, "checksum", checksum[:8])
	return nil
}
