// Package sqlitedb opens SQLite databases through database/sql and the
// go-sqlite3 driver. It backs local development and the test suites.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jrazmi/join/sdk/environment"
	"github.com/mattn/go-sqlite3"
)

// Set of error variables for CRUD operations.
var (
	ErrDBNotFound        = sql.ErrNoRows
	ErrDBDuplicatedEntry = errors.New("duplicated entry")
	ErrDBForeignKey      = errors.New("foreign key violation")
	ErrDBUnavailable     = errors.New("database unavailable")
)

type DB = sql.DB

// Options represents the exportable database configuration
type Options struct {
	Path        string        `env:"SQLITE_PATH" default:"join.db"`
	BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" default:"5s"`
	JournalMode string        `env:"SQLITE_JOURNAL_MODE" default:"WAL"`
}

type options struct {
	path        string
	busyTimeout time.Duration
	journalMode string
	logger      *slog.Logger
}

// Option is a function that configures the database options
type Option func(*options)

// WithLogger sets a custom logger for the database
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewFromEnv opens the database configured by environment variables
func NewFromEnv(prefix string, opts ...Option) (*sql.DB, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sqlite config: %w", err)
	}
	return newDatabase(cfg, opts...)
}

// NewTestDB opens a database file at path, usually inside t.TempDir().
func NewTestDB(path string, opts ...Option) (*sql.DB, error) {
	cfg := Options{
		Path:        path,
		BusyTimeout: 5 * time.Second,
		JournalMode: "WAL",
	}
	return newDatabase(cfg, opts...)
}

func newDatabase(cfg Options, opts ...Option) (*sql.DB, error) {
	o := &options{
		path:        cfg.Path,
		busyTimeout: cfg.BusyTimeout,
		journalMode: cfg.JournalMode,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	db, err := sql.Open("sqlite3", dsn(o))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single connection serialises writers and keeps the foreign key
	// pragma applied to every statement.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	o.logger.Debug("sqlite database opened", "path", o.path)
	return db, nil
}

func dsn(o *options) string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_busy_timeout", fmt.Sprint(o.busyTimeout.Milliseconds()))
	if o.journalMode != "" {
		q.Set("_journal_mode", o.journalMode)
	}
	return fmt.Sprintf("file:%s?%s", o.path, q.Encode())
}

// StatusCheck returns nil if it can successfully talk to the database
func StatusCheck(ctx context.Context, db *sql.DB) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}

	return db.PingContext(ctx)
}

// WithTx runs fn inside a transaction, committing when fn returns nil.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return HandleSQLiteError(err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleSQLiteError(err)
	}
	return nil
}

// HandleSQLiteError converts SQLite errors to application errors. The
// driver error stays in the chain so ConstraintColumns keeps working.
func HandleSQLiteError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrDBNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", ErrDBDuplicatedEntry, err)
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %w", ErrDBForeignKey, err)
		case sqliteErr.Code == sqlite3.ErrBusy,
			sqliteErr.Code == sqlite3.ErrLocked,
			sqliteErr.Code == sqlite3.ErrCantOpen:
			return fmt.Errorf("%w: %w", ErrDBUnavailable, err)
		}
		return err
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrDBUnavailable, err)
	}

	return err
}

// ConstraintColumns returns the "table.column" list SQLite names in a
// constraint failure, or "".
//
//	UNIQUE constraint failed: users.username -> "users.username"
func ConstraintColumns(err error) string {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ""
	}
	_, cols, ok := strings.Cut(sqliteErr.Error(), "constraint failed: ")
	if !ok {
		return ""
	}
	return cols
}
