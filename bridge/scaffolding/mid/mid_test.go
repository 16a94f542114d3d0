package mid_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/bridge/scaffolding/mid"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/core/usecases/authusecase"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

const goodKey = "0123456789abcdef0123456789abcdef01234567"

type resolver struct{}

func (resolver) Resolve(ctx context.Context, key string) (usersrepo.User, error) {
	if key == goodKey {
		return usersrepo.User{ID: 7, Username: "alice"}, nil
	}
	return usersrepo.User{}, authusecase.ErrInvalidToken
}

func whoami(ctx context.Context, r *http.Request) web.Encoder {
	user, err := mid.GetUser(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return web.NewJSONResponse(map[string]int64{"id": user.ID})
}

func TestAuthenticate(t *testing.T) {
	h := mid.Authenticate(resolver{})(whoami)

	tests := []struct {
		name   string
		header string
		status int
		detail string
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized, detail: "Authentication credentials were not provided."},
		{name: "unknown scheme", header: "Basic abc", status: http.StatusUnauthorized, detail: "Authentication credentials were not provided."},
		{name: "bad token", header: "Token nope", status: http.StatusUnauthorized, detail: "Invalid token."},
		{name: "token scheme", header: "Token " + goodKey, status: http.StatusOK},
		{name: "bearer scheme", header: "Bearer " + goodKey, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/current_user", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			resp := h(context.Background(), r)
			if got := web.StatusCode(resp); got != tt.status {
				t.Fatalf("status = %d, want %d", got, tt.status)
			}
			if tt.detail == "" {
				return
			}
			var appErr *errs.Error
			if !errors.As(resp.(error), &appErr) || appErr.Message != tt.detail {
				t.Fatalf("detail = %v, want %q", resp, tt.detail)
			}
		})
	}
}

func TestErrorsMasksUnknownErrors(t *testing.T) {
	failing := func(ctx context.Context, r *http.Request) web.Encoder {
		return errs.New(errs.InternalOnlyLog, errors.New("secret detail"))
	}

	resp := mid.Errors(logger.NewDiscard())(failing)(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))

	appErr, ok := resp.(*errs.Error)
	if !ok {
		t.Fatalf("resp = %T, want *errs.Error", resp)
	}
	if appErr.Code != errs.Internal {
		t.Fatalf("code = %s, want internal", appErr.Code)
	}
	data, _, _ := appErr.Encode()
	if string(data) != `{"error":"Internal Server Error"}` {
		t.Fatalf("body = %s", data)
	}
}

func TestPanicsRecovers(t *testing.T) {
	boom := func(ctx context.Context, r *http.Request) web.Encoder {
		panic("boom")
	}

	resp := mid.Panics()(boom)(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got := web.StatusCode(resp); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", got)
	}
}
