// Package authbridge exposes login, registration and the current user
// lookup over HTTP.
package authbridge

import (
	"slices"

	"github.com/jrazmi/join/core/usecases/authusecase"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

type Config struct {
	Log        *logger.Logger
	UseCase    *authusecase.UseCase
	Auth       web.Middleware
	Middleware []web.Middleware
}

func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.UseCase)

	protected := slices.Clone(cfg.Middleware)
	if cfg.Auth != nil {
		protected = append(protected, cfg.Auth)
	}

	group.POST("/login", b.httpLogin, cfg.Middleware...)
	group.POST("/register", b.httpRegister, cfg.Middleware...)
	group.GET("/current_user", b.httpCurrentUser, protected...)
}
