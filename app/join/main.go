package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/join/app/join/api"
	"github.com/jrazmi/join/app/join/config"
	"github.com/jrazmi/join/core/repositories/reposet"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/environment"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/telemetry"
)

var build = "develop"
var appName = "JOIN"

func main() {
	environment.LoadEnv()

	log, err := logger.NewFromEnv(appName, logger.WithService("join"))
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// :*: START DATABASES :*:
	storeCfg, err := config.LoadStoreOptions(appName)
	if err != nil {
		return err
	}

	repos, closeStore, err := openStore(ctx, log, storeCfg)
	if err != nil {
		return err
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		closeStore()
	}()
	// END DATABASES //

	server, err := web.NewServerFromEnv(appName, web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)))
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	handlerCfg, err := loadHandlerOptions()
	if err != nil {
		return err
	}

	handler := api.NewHandler(api.Config{
		Build:        build,
		Log:          log,
		Telemetry:    telemetry.NewTelemetry(),
		APIRoute:     server.Config.APIRoute,
		Handler:      handlerCfg,
		Repositories: repos,
	})
	if server.Config.EnableDebug {
		handler.HandleRaw("GET /debug/vars", expvar.Handler())
	}
	server.Handler = handler

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr, "api_route", server.Config.APIRoute)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func loadHandlerOptions() (web.HandlerOptions, error) {
	var cfg web.HandlerOptions
	if err := environment.ParseEnvTags(appName, &cfg); err != nil {
		return web.HandlerOptions{}, fmt.Errorf("parsing webhandler config: %w", err)
	}
	return cfg, nil
}

// openStore connects the configured engine and returns the repositories
// over it with a func that releases it.
func openStore(ctx context.Context, log *logger.Logger, cfg config.StoreOptions) (reposet.Set, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlitedb.NewFromEnv(appName, sqlitedb.WithLogger(log.Logger))
		if err != nil {
			return reposet.Set{}, nil, fmt.Errorf("configuring sqlite support: %w", err)
		}
		if cfg.AutoMigrate {
			if err := sqlitedb.Migrate(ctx, db, log.Logger); err != nil {
				db.Close()
				return reposet.Set{}, nil, fmt.Errorf("migrating sqlite: %w", err)
			}
		}
		log.InfoContext(ctx, "init", "service", "sqlite")
		return reposet.NewSQLite(log, db), func() { db.Close() }, nil

	default:
		pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return reposet.Set{}, nil, fmt.Errorf("configuring postgres support: %w", err)
		}
		if cfg.AutoMigrate {
			if err := postgresdb.Migrate(ctx, pg, log.Logger); err != nil {
				pg.Close()
				return reposet.Set{}, nil, fmt.Errorf("migrating postgres: %w", err)
			}
		}
		log.InfoContext(ctx, "init", "service", "postgres")
		return reposet.NewPostgres(log, pg), pg.Close, nil
	}
}
