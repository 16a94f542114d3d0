package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jrazmi/join/sdk/environment"
)

// WebHandler owns the mux, the global middleware stack and the default
// response headers.
type WebHandler struct {
	mux       *http.ServeMux
	log       *slog.Logger
	telemetry Telemetry

	corsOrigins    []string
	defaultHeaders map[string]string

	globalMiddleware []Middleware
	preflight        map[string]bool
}

// HandlerOptions is the exportable handler configuration.
type HandlerOptions struct {
	CORSOrigins []string `env:"CORS_ORIGINS" default:"*" separator:","`
}

type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	log              *slog.Logger
	telemetry        Telemetry
	corsOrigins      []string
	defaultHeaders   map[string]string
	globalMiddleware []Middleware
}

func WithLogging(log *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.log = log
	}
}

func WithTelemetry(tel Telemetry) HandlerOption {
	return func(o *handlerOptions) {
		o.telemetry = tel
	}
}

func WithCORS(origins []string) HandlerOption {
	return func(o *handlerOptions) {
		o.corsOrigins = origins
	}
}

// WithDefaultHeaders sets headers written on every response before the
// handler runs.
func WithDefaultHeaders(headers map[string]string) HandlerOption {
	return func(o *handlerOptions) {
		for k, v := range headers {
			o.defaultHeaders[k] = v
		}
	}
}

// WithGlobalMiddleware appends middleware applied to every route, in order.
func WithGlobalMiddleware(middleware ...Middleware) HandlerOption {
	return func(o *handlerOptions) {
		o.globalMiddleware = append(o.globalMiddleware, middleware...)
	}
}

// NewWebHandlerFromEnv reads HandlerOptions from PREFIX_* variables.
func NewWebHandlerFromEnv(prefix string, opts ...HandlerOption) (*WebHandler, error) {
	var cfg HandlerOptions
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing webhandler config: %w", err)
	}
	return NewWebHandler(cfg, opts...), nil
}

// NewWebHandler builds a handler from cfg and opts.
func NewWebHandler(cfg HandlerOptions, opts ...HandlerOption) *WebHandler {
	o := &handlerOptions{
		corsOrigins:    cfg.CORSOrigins,
		defaultHeaders: make(map[string]string),
	}
	for _, opt := range opts {
		opt(o)
	}

	h := &WebHandler{
		mux:              http.NewServeMux(),
		log:              o.log,
		telemetry:        o.telemetry,
		corsOrigins:      o.corsOrigins,
		defaultHeaders:   o.defaultHeaders,
		globalMiddleware: o.globalMiddleware,
		preflight:        make(map[string]bool),
	}

	// CORS runs outermost so preflight requests never reach auth.
	if len(h.corsOrigins) > 0 {
		h.globalMiddleware = append([]Middleware{h.corsMiddleware()}, h.globalMiddleware...)
	}

	return h
}

// Handle registers handler for method and path behind the global
// middleware followed by the route middleware.
func (wh *WebHandler) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	final := wh.buildHandlerChain(handler, middleware...)

	h := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if wh.telemetry != nil {
			ctx = wh.telemetry.SetTraceID(ctx)
		}
		ctx = setWriter(ctx, w)
		for k, v := range wh.defaultHeaders {
			w.Header().Set(k, v)
		}

		resp := final(ctx, r)

		if err := Respond(ctx, w, resp); err != nil && wh.log != nil {
			wh.log.ErrorContext(ctx, "respond error", "error", err)
		}
	}

	pattern := fmt.Sprintf("%s %s", strings.ToUpper(method), path)
	wh.mux.HandleFunc(pattern, h)

	// Preflight requests for the path are answered by the CORS middleware.
	if len(wh.corsOrigins) > 0 {
		wh.registerPreflight(path)
	}
}

// HandleRaw registers an http.Handler without any middleware.
func (wh *WebHandler) HandleRaw(pattern string, handler http.Handler) {
	wh.mux.Handle(pattern, handler)
}

// ServeHTTP implements http.Handler. A single trailing slash is ignored so
// "/tasks/" and "/tasks" reach the same route.
func (wh *WebHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
		r2 := r.Clone(r.Context())
		r2.URL.Path = strings.TrimSuffix(p, "/")
		r2.URL.RawPath = ""
		r = r2
	}
	wh.mux.ServeHTTP(w, r)
}
