package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/jrazmi/join/sdk/logger"
)

// MigrateStatus prints the applied migrations and those still pending.
func MigrateStatus(ctx context.Context, log *logger.Logger, w io.Writer, store Store) error {
	repo := store.Migrations(log)

	applied, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	available, err := store.Versions()
	if err != nil {
		return fmt.Errorf("read migration files: %w", err)
	}

	pending, err := repo.Pending(ctx, available)
	if err != nil {
		return fmt.Errorf("pending migrations: %w", err)
	}

	for _, m := range applied {
		fmt.Fprintf(w, "applied  %s  %s  %s\n", m.Version, m.Checksum[:min(8, len(m.Checksum))], m.AppliedAt.Format("2006-01-02 15:04:05"))
	}
	for _, v := range pending {
		fmt.Fprintf(w, "pending  %s\n", v)
	}
	return nil
}
