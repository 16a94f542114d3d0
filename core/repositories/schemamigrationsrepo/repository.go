// Package schemamigrationsrepo reads the migration history written by the
// migration runners.
package schemamigrationsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/join/sdk/logger"
)

// Storer defines the data storage interface for SchemaMigration.
type Storer interface {
	List(ctx context.Context) ([]SchemaMigration, error)
}

// Repository provides access to schemaMigration storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new SchemaMigration repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns the applied migrations in version order. A database that
// was never migrated has no history table and yields an empty list.
func (r *Repository) List(ctx context.Context) ([]SchemaMigration, error) {
	migrations, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("schema migration repository list: %w", err)
	}
	return migrations, nil
}

// Pending returns the versions in available that have not been applied.
func (r *Repository) Pending(ctx context.Context, available []string) ([]string, error) {
	applied, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(applied))
	for _, m := range applied {
		seen[m.Version] = true
	}

	var pending []string
	for _, v := range available {
		if !seen[v] {
			pending = append(pending, v)
		}
	}
	return pending, nil
}
