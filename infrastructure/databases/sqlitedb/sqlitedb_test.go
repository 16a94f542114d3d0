package sqlitedb_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
)

func openMigrated(t *testing.T) *sqlitedb.DB {
	t.Helper()

	db, err := sqlitedb.NewTestDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewTestDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlitedb.Migrate(context.Background(), db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openMigrated(t)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := sqlitedb.Migrate(context.Background(), db, log); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("applied migrations = %d, want 3", n)
	}
}

func TestHandleSQLiteErrorConstraints(t *testing.T) {
	db := openMigrated(t)
	ctx := context.Background()

	insert := `INSERT INTO users (username, email, password_hash) VALUES (?, ?, 'x')`
	if _, err := db.ExecContext(ctx, insert, "ada", "ada@example.com"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := db.ExecContext(ctx, insert, "ada", "other@example.com")
	err = sqlitedb.HandleSQLiteError(err)
	if !errors.Is(err, sqlitedb.ErrDBDuplicatedEntry) {
		t.Fatalf("err = %v, want duplicated entry", err)
	}
	if got := sqlitedb.ConstraintColumns(err); got != "users.username" {
		t.Fatalf("ConstraintColumns = %q", got)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO subtasks (title, task_id) VALUES ('x', 999)`)
	if err := sqlitedb.HandleSQLiteError(err); !errors.Is(err, sqlitedb.ErrDBForeignKey) {
		t.Fatalf("err = %v, want foreign key violation", err)
	}
}

func TestHandleSQLiteErrorNoRows(t *testing.T) {
	db := openMigrated(t)

	var id int64
	err := db.QueryRow("SELECT id FROM tasks WHERE id = 1").Scan(&id)
	if !errors.Is(sqlitedb.HandleSQLiteError(err), sqlitedb.ErrDBNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
