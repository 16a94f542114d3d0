// Package web is a thin layer over net/http: handlers return an Encoder,
// middleware wraps handlers, and Respond writes the result.
package web

import (
	"context"
	"net/http"
)

// Encoder defines behavior that can encode a data model and provide
// the content type for that encoding.
type Encoder interface {
	Encode() (data []byte, contentType string, err error)
}

// HandlerFunc handles a request and returns something to encode.
type HandlerFunc func(ctx context.Context, r *http.Request) Encoder

// Middleware wraps a HandlerFunc.
type Middleware func(HandlerFunc) HandlerFunc

// Telemetry sets and reads per-request trace ids.
type Telemetry interface {
	SetTraceID(ctx context.Context) context.Context
	GetTraceID(ctx context.Context) string
}

type ctxKey int

const writerKey ctxKey = iota + 1

func setWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, writerKey, w)
}

// GetWriter returns the response writer of the current request, or nil.
func GetWriter(ctx context.Context) http.ResponseWriter {
	w, ok := ctx.Value(writerKey).(http.ResponseWriter)
	if !ok {
		return nil
	}
	return w
}
