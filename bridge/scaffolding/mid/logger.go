package mid

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

// Logger writes a record when a request starts and when it completes.
func Logger(log *logger.Logger, tel web.Telemetry) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()
			traceID := tel.GetTraceID(ctx)

			p := r.URL.Path
			if r.URL.RawQuery != "" {
				p = fmt.Sprintf("%s?%s", p, r.URL.RawQuery)
			}

			log.InfoContext(ctx, "request started", "method", r.Method, "path", p, "remoteaddr", r.RemoteAddr, "trace_id", traceID)

			resp := next(ctx, r)

			log.InfoContext(ctx, "request completed", "method", r.Method, "path", p, "remoteaddr", r.RemoteAddr,
				"statuscode", web.StatusCode(resp), "since", time.Since(now).String(), "trace_id", traceID)

			return resp
		}
	}
}
