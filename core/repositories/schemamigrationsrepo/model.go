package schemamigrationsrepo

import "time"

// SchemaMigration records one applied migration file.
type SchemaMigration struct {
	Version   string    `db:"version"`
	Checksum  string    `db:"checksum"`
	AppliedAt time.Time `db:"applied_at"`
}
