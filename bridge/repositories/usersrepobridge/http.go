// Package usersrepobridge exposes the user listing over HTTP.
package usersrepobridge

import (
	"slices"

	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

// Config holds configuration for the User bridge.
type Config struct {
	Log        *logger.Logger
	Repository *usersrepo.Repository
	Auth       web.Middleware
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for User.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)

	protected := slices.Clone(cfg.Middleware)
	if cfg.Auth != nil {
		protected = append(protected, cfg.Auth)
	}

	group.GET("/users", b.httpList, protected...)
}
