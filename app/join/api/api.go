// Package api binds every bridge to the route table of the join API.
package api

import (
	"github.com/jrazmi/join/bridge/checkbridge"
	"github.com/jrazmi/join/bridge/repositories/contactsrepobridge"
	"github.com/jrazmi/join/bridge/repositories/subtasksrepobridge"
	"github.com/jrazmi/join/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/join/bridge/repositories/usersrepobridge"
	"github.com/jrazmi/join/bridge/scaffolding/mid"
	"github.com/jrazmi/join/bridge/usecases/authbridge"
	"github.com/jrazmi/join/core/repositories/reposet"
	"github.com/jrazmi/join/core/usecases/authusecase"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/telemetry"
)

// Config is everything the route table needs.
type Config struct {
	Build        string
	Log          *logger.Logger
	Telemetry    telemetry.Telemetry
	APIRoute     string
	Handler      web.HandlerOptions
	Repositories reposet.Set
}

// NewHandler builds the web handler with the global middleware and every
// route mounted under cfg.APIRoute. Probes live at the root.
func NewHandler(cfg Config) *web.WebHandler {
	h := web.NewWebHandler(cfg.Handler,
		web.WithLogging(cfg.Log.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithDefaultHeaders(map[string]string{
			"X-Content-Type-Options": "nosniff",
			"X-Frame-Options":        "DENY",
			"Referrer-Policy":        "same-origin",
		}),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Log, cfg.Telemetry),
			mid.Errors(cfg.Log),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	auth := authusecase.NewUseCase(cfg.Log, cfg.Repositories.Users, cfg.Repositories.Tokens)
	authenticate := mid.Authenticate(auth)

	checkbridge.AddHttpRoutes(h.Group(""), checkbridge.Config{
		Build:       cfg.Build,
		Log:         cfg.Log,
		StatusCheck: cfg.Repositories.StatusCheck,
	})

	apiGroup := h.Group(cfg.APIRoute)

	authbridge.AddHttpRoutes(apiGroup, authbridge.Config{
		Log:     cfg.Log,
		UseCase: auth,
		Auth:    authenticate,
	})
	usersrepobridge.AddHttpRoutes(apiGroup, usersrepobridge.Config{
		Log:        cfg.Log,
		Repository: cfg.Repositories.Users,
		Auth:       authenticate,
	})
	tasksrepobridge.AddHttpRoutes(apiGroup, tasksrepobridge.Config{
		Log:        cfg.Log,
		Repository: cfg.Repositories.Tasks,
		Auth:       authenticate,
	})
	subtasksrepobridge.AddHttpRoutes(apiGroup, subtasksrepobridge.Config{
		Log:        cfg.Log,
		Repository: cfg.Repositories.SubTasks,
		Auth:       authenticate,
	})
	contactsrepobridge.AddHttpRoutes(apiGroup, contactsrepobridge.Config{
		Log:        cfg.Log,
		Repository: cfg.Repositories.Contacts,
		Auth:       authenticate,
	})

	return h
}
