// Package subtasksrepobridge exposes the subtask repository over HTTP.
package subtasksrepobridge

import (
	"slices"

	"github.com/jrazmi/join/core/repositories/subtasksrepo"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

// Config holds configuration for the SubTask bridge. Auth guards the
// collection routes only.
type Config struct {
	Log        *logger.Logger
	Repository *subtasksrepo.Repository
	Auth       web.Middleware
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for SubTask, including the
// listing nested under its task.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)

	protected := slices.Clone(cfg.Middleware)
	if cfg.Auth != nil {
		protected = append(protected, cfg.Auth)
	}

	group.GET("/subtasks", b.httpList, protected...)
	group.POST("/subtasks", b.httpCreate, protected...)
	group.GET("/subtasks/{subtask_id}", b.httpGetByID, cfg.Middleware...)
	group.PATCH("/subtasks/{subtask_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/subtasks/{subtask_id}", b.httpDelete, cfg.Middleware...)
	group.GET("/tasks/{task_id}/subtasks", b.httpListByTask, cfg.Middleware...)
}
