// Package schema contains embedded migration files.
package schema

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// Directories holding the migrations of each engine.
const (
	PostgresDir = "pgmigrations"
	SQLiteDir   = "sqlitemigrations"
)

// PostgresFS contains the SQL migrations applied to PostgreSQL.
//
//go:embed pgmigrations/*.sql
var PostgresFS embed.FS

// SQLiteFS contains the SQL migrations applied to SQLite.
//
//go:embed sqlitemigrations/*.sql
var SQLiteFS embed.FS

// Versions returns the .sql file names in dir, in the order they apply.
func Versions(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}
