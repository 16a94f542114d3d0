// Package metrics keeps process wide request counters published through
// expvar.
package metrics

import (
	"context"
	"expvar"
	"runtime"
)

// m holds the counters. expvar publishes them under /debug/vars.
var m metrics

type metrics struct {
	goroutines *expvar.Int
	requests   *expvar.Int
	errors     *expvar.Int
	panics     *expvar.Int
}

func init() {
	m = metrics{
		goroutines: expvar.NewInt("goroutines"),
		requests:   expvar.NewInt("requests"),
		errors:     expvar.NewInt("errors"),
		panics:     expvar.NewInt("panics"),
	}
}

type ctxKeyMetric int

const key ctxKeyMetric = 1

// Set stores the counters in the context.
func Set(ctx context.Context) context.Context {
	return context.WithValue(ctx, key, &m)
}

// AddGoroutines refreshes the goroutine gauge and returns it.
func AddGoroutines(ctx context.Context) int64 {
	if v, ok := ctx.Value(key).(*metrics); ok {
		g := int64(runtime.NumGoroutine())
		v.goroutines.Set(g)
		return g
	}
	return 0
}

// AddRequests increments the request counter and returns the new value.
func AddRequests(ctx context.Context) int64 {
	if v, ok := ctx.Value(key).(*metrics); ok {
		v.requests.Add(1)
		return v.requests.Value()
	}
	return 0
}

// AddErrors increments the error counter and returns the new value.
func AddErrors(ctx context.Context) int64 {
	if v, ok := ctx.Value(key).(*metrics); ok {
		v.errors.Add(1)
		return v.errors.Value()
	}
	return 0
}

// AddPanics increments the panic counter and returns the new value.
func AddPanics(ctx context.Context) int64 {
	if v, ok := ctx.Value(key).(*metrics); ok {
		v.panics.Add(1)
		return v.panics.Value()
	}
	return 0
}
