package schemamigrationssqlitestore

import (
	"context"
	"strings"

	"github.com/jrazmi/join/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/logger"
)

// Store provides database access for SchemaMigration.
type Store struct {
	log *logger.Logger
	db  *sqlitedb.DB
}

func NewStore(log *logger.Logger, db *sqlitedb.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

func (s *Store) List(ctx context.Context) ([]schemamigrationsrepo.SchemaMigration, error) {
	query := `SELECT version, checksum, applied_at FROM schema_migrations ORDER BY version`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return []schemamigrationsrepo.SchemaMigration{}, nil
		}
		return nil, storeerr.SQLite(err)
	}
	defer rows.Close()

	migrations := []schemamigrationsrepo.SchemaMigration{}
	for rows.Next() {
		var m schemamigrationsrepo.SchemaMigration
		if err := rows.Scan(&m.Version, &m.Checksum, sqlitedb.Timestamp(&m.AppliedAt)); err != nil {
			return nil, storeerr.SQLite(err)
		}
		migrations = append(migrations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeerr.SQLite(err)
	}
	return migrations, nil
}

var _ schemamigrationsrepo.Storer = (*Store)(nil)
