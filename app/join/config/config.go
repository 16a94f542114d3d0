// Package config holds the settings of the join API that are not owned by
// an infrastructure package.
package config

import (
	"fmt"

	"github.com/jrazmi/join/sdk/environment"
)

// Storage engines the API can run on.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StoreOptions selects the storage engine.
type StoreOptions struct {
	Driver      string `env:"STORE_DRIVER" default:"postgres"`
	AutoMigrate bool   `env:"STORE_AUTO_MIGRATE" default:"false"`
}

// LoadStoreOptions reads StoreOptions from PREFIX_* variables.
func LoadStoreOptions(prefix string) (StoreOptions, error) {
	var cfg StoreOptions
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return StoreOptions{}, fmt.Errorf("parsing store config: %w", err)
	}

	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return StoreOptions{}, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	return cfg, nil
}
