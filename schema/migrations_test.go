package schema_test

import (
	"slices"
	"testing"

	"github.com/jrazmi/join/schema"
)

func TestEnginesShipTheSameVersions(t *testing.T) {
	pg, err := schema.Versions(schema.PostgresFS, schema.PostgresDir)
	if err != nil {
		t.Fatalf("postgres versions: %v", err)
	}
	lite, err := schema.Versions(schema.SQLiteFS, schema.SQLiteDir)
	if err != nil {
		t.Fatalf("sqlite versions: %v", err)
	}

	if len(pg) == 0 || !slices.Equal(pg, lite) {
		t.Fatalf("postgres %v, sqlite %v", pg, lite)
	}
	if !slices.IsSorted(pg) {
		t.Fatalf("versions not sorted: %v", pg)
	}
}
