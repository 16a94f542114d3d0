package mid

import (
	"context"
	"net/http"
	"path"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

// Errors handles errors coming out of the call chain.
func Errors(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := isError(resp)
			if err == nil {
				return resp
			}

			appErr := errs.GetError(err)
			if appErr == nil {
				appErr = errs.Newf(errs.Internal, "%s", err)
			}

			log.ErrorContext(ctx, "handled error during request",
				"err", err,
				"code", appErr.Code.String(),
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName))

			if appErr.Code == errs.InternalOnlyLog {
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			}

			return appErr
		}
	}
}
