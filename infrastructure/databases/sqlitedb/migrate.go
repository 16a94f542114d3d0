package sqlitedb

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/jrazmi/join/schema"
)

// Migrate applies pending migrations from schema/sqlitemigrations in
// name order, recording each version and checksum in schema_migrations.
// Forward only.
func Migrate(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	if err := StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	log.InfoContext(ctx, "running database migrations", "engine", "sqlite")

	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			checksum TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	files, err := schema.Versions(schema.SQLiteFS, schema.SQLiteDir)
	if err != nil {
		return fmt.Errorf("get migration files: %w", err)
	}

	for _, file := range files {
		if err := applyMigration(ctx, db, log, schema.SQLiteFS, path.Join(schema.SQLiteDir, file)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}

	log.InfoContext(ctx, "migrations complete", "engine", "sqlite")
	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, log *slog.Logger, fsys fs.FS, filePath string) error {
	version := path.Base(filePath)

	content, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}

	checksum := fmt.Sprintf("%x", sha256.Sum256(content))

	var existingChecksum string
	err = db.QueryRowContext(ctx, "SELECT checksum FROM schema_migrations WHERE version = ?", version).Scan(&existingChecksum)
	switch {
	case err == nil:
		if existingChecksum != checksum {
			return fmt.Errorf("checksum mismatch: migration %s was modified after being applied (expected %s, got %s)",
				version, existingChecksum, checksum)
		}
		log.DebugContext(ctx, "migration already applied", "version", version)
		return nil
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("read applied migration: %w", err)
	}

	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("execute migration: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version, checksum) VALUES (?, ?)", version, checksum); err != nil {
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
