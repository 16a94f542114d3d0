// Package mid provides app level middleware support.
package mid

import (
	"context"
	"errors"

	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/infrastructure/web"
)

type ctxKey int

const (
	userKey ctxKey = iota + 1
)

func setUser(ctx context.Context, user usersrepo.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated user from the context.
func GetUser(ctx context.Context) (usersrepo.User, error) {
	v, ok := ctx.Value(userKey).(usersrepo.User)
	if !ok {
		return usersrepo.User{}, errors.New("user not found in context")
	}

	return v, nil
}

// isError tests if the Encoder has an error inside of it.
func isError(e web.Encoder) error {
	err, isError := e.(error)
	if isError {
		return err
	}
	return nil
}
