// Package contactsrepobridge exposes the contact repository over HTTP.
package contactsrepobridge

import (
	"slices"

	"github.com/jrazmi/join/core/repositories/contactsrepo"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

type Config struct {
	Log        *logger.Logger
	Repository *contactsrepo.Repository
	Auth       web.Middleware
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Contact.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)

	protected := slices.Clone(cfg.Middleware)
	if cfg.Auth != nil {
		protected = append(protected, cfg.Auth)
	}

	group.GET("/contacts", b.httpList, protected...)
	group.POST("/contacts", b.httpCreate, protected...)
	group.GET("/contacts/{contact_id}", b.httpGetByID, cfg.Middleware...)
	group.PATCH("/contacts/{contact_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/contacts/{contact_id}", b.httpDelete, cfg.Middleware...)
}
