// Package tasksrepobridge exposes the task repository over HTTP.
package tasksrepobridge

import (
	"slices"

	"github.com/jrazmi/join/core/repositories/tasksrepo"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

// Config holds configuration for the Task bridge. Auth guards the
// collection routes only; detail routes stay open.
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Auth       web.Middleware
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)

	protected := slices.Clone(cfg.Middleware)
	if cfg.Auth != nil {
		protected = append(protected, cfg.Auth)
	}

	group.GET("/tasks", b.httpList, protected...)
	group.POST("/tasks", b.httpCreate, protected...)
	group.GET("/tasks/{task_id}", b.httpGetByID, cfg.Middleware...)
	group.PATCH("/tasks/{task_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Middleware...)
}
