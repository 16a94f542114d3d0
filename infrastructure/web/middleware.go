package web

import (
	"context"
	"net/http"
	"slices"
)

func (wh *WebHandler) buildHandlerChain(handler HandlerFunc, middleware ...Middleware) HandlerFunc {
	all := slices.Concat(wh.globalMiddleware, middleware)

	final := handler
	for i := len(all) - 1; i >= 0; i-- {
		final = all[i](final)
	}

	return final
}

// registerPreflight answers OPTIONS for path once, however many methods
// share it.
func (wh *WebHandler) registerPreflight(path string) {
	if wh.preflight[path] {
		return
	}
	wh.preflight[path] = true

	cors := wh.corsMiddleware()
	h := cors(func(ctx context.Context, r *http.Request) Encoder {
		return NewNoResponse()
	})

	wh.mux.HandleFunc("OPTIONS "+path, func(w http.ResponseWriter, r *http.Request) {
		ctx := setWriter(r.Context(), w)
		resp := h(ctx, r)
		if _, ok := resp.(NoResponse); ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := Respond(ctx, w, resp); err != nil && wh.log != nil {
			wh.log.ErrorContext(ctx, "respond error", "error", err)
		}
	})
}

func (wh *WebHandler) corsMiddleware() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, r *http.Request) Encoder {
			w := GetWriter(ctx)
			if w == nil {
				return NewError("internal server error: response writer not available")
			}

			origin := r.Header.Get("Origin")
			for _, allowed := range wh.corsOrigins {
				if allowed == "*" || allowed == origin {
					w.Header().Set("Access-Control-Allow-Origin", allowed)
					break
				}
			}

			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				return NewNoResponse()
			}

			return next(ctx, r)
		}
	}
}
