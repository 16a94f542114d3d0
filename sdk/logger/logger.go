// Package logger wraps log/slog with env driven configuration.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/jrazmi/join/sdk/environment"
)

// Logger is a wrapper around the standard slog.Logger.
type Logger struct {
	*slog.Logger
}

// Options is the exportable logger configuration.
type Options struct {
	Level      string `env:"LOG_LEVEL" default:"INFO"`
	Output     string `env:"LOG_OUTPUT" default:"STDOUT"`
	Format     string `env:"LOG_FORMAT" default:"json"`
	TimeFormat string `env:"LOG_TIME_FORMAT" default:"RFC3339"`
	AddSource  bool   `env:"LOG_ADD_SOURCE" default:"false"`
}

type options struct {
	level      slog.Level
	output     io.Writer
	addSource  bool
	format     string
	timeFormat string
	attrs      []any
}

// Option overrides a single logger setting.
type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		o.level = parseLevel(level)
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithService tags every record with the service name.
func WithService(name string) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, "service", name)
	}
}

func NewDefault(opts ...Option) *Logger {
	cfg := Options{
		Level:      "INFO",
		Output:     "STDOUT",
		Format:     "json",
		TimeFormat: "RFC3339",
	}
	return newLogger(cfg, opts...)
}

// NewDiscard returns a logger that drops every record. Used in tests.
func NewDiscard() *Logger {
	return NewDefault(WithOutput(io.Discard))
}

func NewFromEnv(prefix string, opts ...Option) (*Logger, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing logger config: %w", err)
	}
	return newLogger(cfg, opts...), nil
}

// NewStdLogger adapts the logger for APIs that need a *log.Logger, such as
// http.Server.ErrorLog.
func NewStdLogger(logger *Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.Logger.Handler(), level)
}

func newLogger(cfg Options, opts ...Option) *Logger {
	o := &options{
		level:      parseLevel(cfg.Level),
		output:     parseOutput(cfg.Output),
		addSource:  cfg.AddSource,
		timeFormat: cfg.TimeFormat,
		format:     cfg.Format,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     o.level,
		AddSource: o.addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey || o.timeFormat == "" {
				return a
			}
			t := a.Value.Time()
			switch o.timeFormat {
			case "Unix":
				return slog.Int64(slog.TimeKey, t.Unix())
			case "UnixMilli":
				return slog.Int64(slog.TimeKey, t.UnixMilli())
			case "RFC3339":
				return slog.String(slog.TimeKey, t.Format(time.RFC3339))
			case "RFC3339Nano":
				return slog.String(slog.TimeKey, t.Format(time.RFC3339Nano))
			default:
				return slog.String(slog.TimeKey, t.Format(o.timeFormat))
			}
		},
	}

	var handler slog.Handler
	switch o.format {
	case "text":
		handler = slog.NewTextHandler(o.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	l := slog.New(handler)
	if len(o.attrs) > 0 {
		l = l.With(o.attrs...)
	}
	return &Logger{Logger: l}
}

// InfoContextf logs a formatted info message.
func (l *Logger) InfoContextf(ctx context.Context, format string, args ...any) {
	l.InfoContext(ctx, fmt.Sprintf(format, args...))
}

// ErrorContextf logs a formatted error message.
func (l *Logger) ErrorContextf(ctx context.Context, format string, args ...any) {
	l.ErrorContext(ctx, fmt.Sprintf(format, args...))
}
