package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jrazmi/join/infrastructure/web"
)

type payload struct {
	Title string `json:"title"`
}

func newHandler(origins ...string) *web.WebHandler {
	return web.NewWebHandler(web.HandlerOptions{CORSOrigins: origins})
}

func TestRespondNilIsNoContent(t *testing.T) {
	h := newHandler()
	h.DELETE("/things/{id}", func(ctx context.Context, r *http.Request) web.Encoder {
		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/things/1", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rec.Body.String())
	}
}

func TestTrailingSlashIsIgnored(t *testing.T) {
	h := newHandler()
	h.GET("/things", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse([]string{"a"})
	})

	for _, path := range []string{"/things", "/things/"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", path, rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != `["a"]` {
			t.Fatalf("%s: body = %s", path, got)
		}
	}
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	mark := func(name string) web.Middleware {
		return func(next web.HandlerFunc) web.HandlerFunc {
			return func(ctx context.Context, r *http.Request) web.Encoder {
				order = append(order, name)
				return next(ctx, r)
			}
		}
	}

	h := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mark("global")))
	g := h.Group("/api/v1", mark("group"))
	g.GET("/things", func(ctx context.Context, r *http.Request) web.Encoder {
		order = append(order, "handler")
		return web.NewJSONResponse("ok")
	}, mark("route"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/things", nil))

	want := []string{"global", "group", "route", "handler"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestPreflight(t *testing.T) {
	h := newHandler("*")
	noop := func(ctx context.Context, r *http.Request) web.Encoder { return nil }
	h.GET("/things", noop)
	h.POST("/things", noop)

	req := httptest.NewRequest(http.MethodOptions, "/things", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "PATCH") {
		t.Fatalf("allow methods = %q", got)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{name: "json", body: `{"title":"a"}`, contentType: "application/json", want: "a"},
		{name: "empty", body: "", contentType: "application/json", want: ""},
		{name: "form", body: url.Values{"title": {"b"}}.Encode(), contentType: "application/x-www-form-urlencoded", want: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			var p payload
			if err := web.Decode(req, &p); err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if p.Title != tt.want {
				t.Fatalf("title = %q, want %q", p.Title, tt.want)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	var p payload
	if err := web.Decode(req, &p); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestParamInt64(t *testing.T) {
	h := newHandler()
	var got int64
	var gotErr error
	h.GET("/things/{id}", func(ctx context.Context, r *http.Request) web.Encoder {
		got, gotErr = web.ParamInt64(r, "id")
		return nil
	})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/42", nil))
	if gotErr != nil || got != 42 {
		t.Fatalf("ParamInt64 = %d, %v", got, gotErr)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/abc", nil))
	if gotErr == nil {
		t.Fatal("expected error for non numeric id")
	}
}
