// Package checkbridge answers orchestration probes.
package checkbridge

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

// Config holds configuration for the check routes. StatusCheck reports
// whether the store can be reached.
type Config struct {
	Build       string
	Log         *logger.Logger
	StatusCheck func(ctx context.Context) error
}

type Info struct {
	Status string `json:"status"`
	Build  string `json:"build,omitempty"`
	Host   string `json:"host,omitempty"`
}

type bridge struct {
	build       string
	log         *logger.Logger
	statusCheck func(ctx context.Context) error
}

func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		build:       cfg.Build,
		log:         cfg.Log,
		statusCheck: cfg.StatusCheck,
	}

	group.GET("/liveness", b.liveness)
	group.GET("/readiness", b.readiness)
}

func (b *bridge) liveness(ctx context.Context, r *http.Request) web.Encoder {
	host, err := os.Hostname()
	if err != nil {
		host = "unavailable"
	}

	return web.NewJSONResponse(Info{
		Status: "up",
		Build:  b.build,
		Host:   host,
	})
}

// readiness fails when the store does not answer within a second.
func (b *bridge) readiness(ctx context.Context, r *http.Request) web.Encoder {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := b.statusCheck(ctx); err != nil {
		b.log.InfoContext(ctx, "readiness failure", "err", err)
		return errs.New(errs.Unavailable, err)
	}

	return web.NewJSONResponse(Info{Status: "ok"})
}
