// Package dbtest opens migrated SQLite databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/passwords"
	"golang.org/x/crypto/bcrypt"
)

// New returns a migrated database in a temporary directory that is closed
// when the test ends. It also lowers the bcrypt cost for the test binary.
func New(t testing.TB) *sqlitedb.DB {
	t.Helper()

	passwords.Cost = bcrypt.MinCost

	log := logger.NewDiscard()
	db, err := sqlitedb.NewTestDB(filepath.Join(t.TempDir(), "join.db"), sqlitedb.WithLogger(log.Logger))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlitedb.Migrate(context.Background(), db, log.Logger); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
