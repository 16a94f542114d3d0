// Package storeerr maps database driver errors onto the repository
// sentinels so repositories never see engine specific errors.
package storeerr

import (
	"errors"
	"fmt"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
)

// Postgres translates an error returned by pgx.
func Postgres(err error) error {
	if err == nil {
		return nil
	}
	err = postgresdb.HandlePgError(err)

	switch {
	case errors.Is(err, postgresdb.ErrDBNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, postgresdb.ErrDBDuplicatedEntry):
		return fmt.Errorf("%w: %w", repositories.ErrDuplicate, err)
	case errors.Is(err, postgresdb.ErrDBForeignKey):
		return fmt.Errorf("%w: %w", repositories.ErrInvalidReference, err)
	case errors.Is(err, postgresdb.ErrDBUnavailable):
		return fmt.Errorf("%w: %w", repositories.ErrUnavailable, err)
	}
	return err
}

// SQLite translates an error returned by database/sql over go-sqlite3.
func SQLite(err error) error {
	if err == nil {
		return nil
	}
	err = sqlitedb.HandleSQLiteError(err)

	switch {
	case errors.Is(err, sqlitedb.ErrDBNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, sqlitedb.ErrDBDuplicatedEntry):
		return fmt.Errorf("%w: %w", repositories.ErrDuplicate, err)
	case errors.Is(err, sqlitedb.ErrDBForeignKey):
		return fmt.Errorf("%w: %w", repositories.ErrInvalidReference, err)
	case errors.Is(err, sqlitedb.ErrDBUnavailable):
		return fmt.Errorf("%w: %w", repositories.ErrUnavailable, err)
	}
	return err
}
