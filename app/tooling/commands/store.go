package commands

import (
	"github.com/jrazmi/join/core/repositories/reposet"
	"github.com/jrazmi/join/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/join/core/repositories/schemamigrationsrepo/stores/schemamigrationspgxstore"
	"github.com/jrazmi/join/core/repositories/schemamigrationsrepo/stores/schemamigrationssqlitestore"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/schema"
	"github.com/jrazmi/join/sdk/logger"
)

// Store is the open storage engine a command runs against. Exactly one of
// PG and SQLite is set.
type Store struct {
	PG     *postgresdb.Pool
	SQLite *sqlitedb.DB
}

// Repositories returns the repository set over the open engine.
func (s Store) Repositories(log *logger.Logger) reposet.Set {
	if s.SQLite != nil {
		return reposet.NewSQLite(log, s.SQLite)
	}
	return reposet.NewPostgres(log, s.PG)
}

// Migrations returns the migration history repository of the open engine.
func (s Store) Migrations(log *logger.Logger) *schemamigrationsrepo.Repository {
	if s.SQLite != nil {
		return schemamigrationsrepo.NewRepository(log, schemamigrationssqlitestore.NewStore(log, s.SQLite))
	}
	return schemamigrationsrepo.NewRepository(log, schemamigrationspgxstore.NewStore(log, s.PG))
}

// Versions lists the migration files shipped for the open engine.
func (s Store) Versions() ([]string, error) {
	if s.SQLite != nil {
		return schema.Versions(schema.SQLiteFS, schema.SQLiteDir)
	}
	return schema.Versions(schema.PostgresFS, schema.PostgresDir)
}

func (s Store) Close() {
	if s.SQLite != nil {
		s.SQLite.Close()
	}
	if s.PG != nil {
		s.PG.Close()
	}
}
