package postgresdb

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type queryStartKey struct{}

// LoggingQueryTracer logs every statement at debug level and failed
// statements at error level.
type LoggingQueryTracer struct {
	logger *slog.Logger
}

func NewLoggingQueryTracer(logger *slog.Logger) *LoggingQueryTracer {
	return &LoggingQueryTracer{logger: logger}
}

func (l *LoggingQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	l.logger.DebugContext(ctx, "query start", "sql", compactSQL(data.SQL), "args", data.Args)
	return context.WithValue(ctx, queryStartKey{}, time.Now())
}

func (l *LoggingQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	var elapsed time.Duration
	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		elapsed = time.Since(start)
	}

	if data.Err != nil {
		l.logger.ErrorContext(ctx, "query end", "error", data.Err, "command_tag", data.CommandTag.String(), "since", elapsed.String())
		return
	}
	l.logger.DebugContext(ctx, "query end", "command_tag", data.CommandTag.String(), "since", elapsed.String())
}

// compactSQL folds a multi-line statement onto one line.
func compactSQL(sql string) string {
	s := strings.Join(strings.Fields(sql), " ")
	s = strings.ReplaceAll(s, "( ", "(")
	return strings.ReplaceAll(s, " )", ")")
}
