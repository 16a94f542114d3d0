package schemamigrationsrepo_test

import (
	"context"
	"slices"
	"testing"

	"github.com/jrazmi/join/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/join/core/repositories/schemamigrationsrepo/stores/schemamigrationssqlitestore"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb/dbtest"
	"github.com/jrazmi/join/schema"
	"github.com/jrazmi/join/sdk/logger"
)

func TestListMatchesShippedVersions(t *testing.T) {
	log := logger.NewDiscard()
	repo := schemamigrationsrepo.NewRepository(log, schemamigrationssqlitestore.NewStore(log, dbtest.New(t)))
	ctx := context.Background()

	applied, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	shipped, err := schema.Versions(schema.SQLiteFS, schema.SQLiteDir)
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}

	var versions []string
	for _, m := range applied {
		if len(m.Checksum) != 64 || m.AppliedAt.IsZero() {
			t.Errorf("incomplete record %+v", m)
		}
		versions = append(versions, m.Version)
	}
	if !slices.Equal(versions, shipped) {
		t.Fatalf("applied %v, shipped %v", versions, shipped)
	}

	pending, err := repo.Pending(ctx, append(shipped, "999_future.sql"))
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if !slices.Equal(pending, []string{"999_future.sql"}) {
		t.Fatalf("pending = %v", pending)
	}
}

func TestListWithoutHistoryTable(t *testing.T) {
	log := logger.NewDiscard()
	db, err := sqlitedb.NewTestDB(t.TempDir() + "/empty.db")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := schemamigrationsrepo.NewRepository(log, schemamigrationssqlitestore.NewStore(log, db))
	applied, err := repo.List(context.Background())
	if err != nil || len(applied) != 0 {
		t.Fatalf("List = %v, %v", applied, err)
	}
}
