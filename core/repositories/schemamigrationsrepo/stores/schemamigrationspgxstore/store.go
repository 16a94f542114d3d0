package schemamigrationspgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/join/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/sdk/logger"
)

// Store provides database access for SchemaMigration.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new SchemaMigration store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) List(ctx context.Context) ([]schemamigrationsrepo.SchemaMigration, error) {
	query := `SELECT version, checksum, applied_at FROM schema_migrations ORDER BY version`

	rows, err := s.pool.Query(ctx, query)
	if err == nil {
		var migrations []schemamigrationsrepo.SchemaMigration
		migrations, err = pgx.CollectRows(rows, pgx.RowToStructByName[schemamigrationsrepo.SchemaMigration])
		if err == nil {
			return migrations, nil
		}
	}

	if errors.Is(postgresdb.HandlePgError(err), postgresdb.ErrUndefinedTable) {
		return []schemamigrationsrepo.SchemaMigration{}, nil
	}
	return nil, storeerr.Postgres(err)
}

var _ schemamigrationsrepo.Storer = (*Store)(nil)
