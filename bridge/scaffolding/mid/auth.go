package mid

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/core/usecases/authusecase"
	"github.com/jrazmi/join/infrastructure/web"
)

const (
	msgNoCredentials = "Authentication credentials were not provided."
	msgInvalidToken  = "Invalid token."
)

// TokenResolver finds the user owning a token key.
type TokenResolver interface {
	Resolve(ctx context.Context, key string) (usersrepo.User, error)
}

// Authenticate requires an "Authorization: Token <key>" or
// "Authorization: Bearer <key>" header naming a known token. The owner is
// stored in the context for GetUser.
func Authenticate(resolver TokenResolver) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" {
				return errs.Newf(errs.Unauthenticated, msgNoCredentials)
			}

			scheme, key, ok := strings.Cut(header, " ")
			if !ok || !(strings.EqualFold(scheme, "Token") || strings.EqualFold(scheme, "Bearer")) {
				return errs.Newf(errs.Unauthenticated, msgNoCredentials)
			}

			key = strings.TrimSpace(key)
			if key == "" || strings.Contains(key, " ") {
				return errs.Newf(errs.Unauthenticated, msgInvalidToken)
			}

			user, err := resolver.Resolve(ctx, key)
			if err != nil {
				if errors.Is(err, authusecase.ErrInvalidToken) {
					return errs.Newf(errs.Unauthenticated, msgInvalidToken)
				}
				return errs.New(errs.Unavailable, err)
			}

			return next(setUser(ctx, user), r)
		}
	}
}
