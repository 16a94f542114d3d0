package postgresdb

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the stores care about.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	undefinedTable      = "42P01"
	adminShutdown       = "57P01"
)

var (
	ErrDBNotFound        = pgx.ErrNoRows
	ErrDBDuplicatedEntry = errors.New("duplicated entry")
	ErrDBForeignKey      = errors.New("foreign key violation")
	ErrUndefinedTable    = errors.New("undefined table")
	ErrDBUnavailable     = errors.New("database unavailable")
)

// HandlePgError wraps a pgx error with the matching sentinel. The driver
// error stays in the chain so ConstraintName keeps working.
func HandlePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrDBNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == undefinedTable:
			return fmt.Errorf("%w: %w", ErrUndefinedTable, err)
		case pgErr.Code == uniqueViolation:
			return fmt.Errorf("%w: %w", ErrDBDuplicatedEntry, err)
		case pgErr.Code == foreignKeyViolation:
			return fmt.Errorf("%w: %w", ErrDBForeignKey, err)
		// Class 08 is connection exceptions, class 53 insufficient resources.
		case pgErr.Code == adminShutdown, strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "53"):
			return fmt.Errorf("%w: %w", ErrDBUnavailable, err)
		}
		return err
	}

	if unreachable(err) {
		return fmt.Errorf("%w: %w", ErrDBUnavailable, err)
	}
	return err
}

// ConstraintName returns the constraint a PostgreSQL error reports, or "".
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func unreachable(err error) bool {
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
