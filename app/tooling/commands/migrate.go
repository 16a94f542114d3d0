package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

// Migrate creates the schema in the database.
func Migrate(ctx context.Context, log *slog.Logger, store Store) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	log.InfoContext(ctx, "migration started", "step", "checking database status")

	if store.SQLite != nil {
		if err := sqlitedb.StatusCheck(ctx, store.SQLite); err != nil {
			return fmt.Errorf("database status check failed: %w", err)
		}
		log.InfoContext(ctx, "database status check successful", "step", "running migrations")

		if err := sqlitedb.Migrate(ctx, store.SQLite, log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	} else {
		if err := postgresdb.StatusCheck(ctx, store.PG); err != nil {
			return fmt.Errorf("database status check failed: %w", err)
		}
		log.InfoContext(ctx, "database status check successful", "step", "running migrations")

		if err := postgresdb.Migrate(ctx, store.PG, log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}
