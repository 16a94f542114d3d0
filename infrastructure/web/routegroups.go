package web

import (
	"slices"
	"strings"
)

// RouteGroup registers routes under a shared prefix and middleware.
type RouteGroup struct {
	webHandler *WebHandler
	prefix     string
	middleware []Middleware
}

func (wh *WebHandler) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return &RouteGroup{
		webHandler: wh,
		prefix:     strings.TrimSuffix(prefix, "/"),
		middleware: middleware,
	}
}

func (g *RouteGroup) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	g.webHandler.Handle(method, g.prefix+path, handler, slices.Concat(g.middleware, middleware)...)
}
