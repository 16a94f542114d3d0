package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jrazmi/join/app/join/config"
	"github.com/jrazmi/join/app/tooling/commands"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/environment"
	"github.com/jrazmi/join/sdk/logger"
)

var build = "develop"
var appName = "TOOLING"

func processCommands(ctx context.Context, log *logger.Logger, command string, args []string, store commands.Store) error {
	switch command {
	case "migrate":
		log.InfoContext(ctx, "running migration")
		if err := commands.Migrate(ctx, log.Logger, store); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil

	case "migrate-status":
		return commands.MigrateStatus(ctx, log, os.Stdout, store)

	case "create-admin":
		err := commands.CreateAdmin(ctx, log, args, store)
		if errors.Is(err, commands.ErrHelp) {
			return nil
		}
		return err

	default:
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate        - create the schema in the database")
	fmt.Println("  migrate-status - list applied and pending migrations")
	fmt.Println("  create-admin   - create a staff superuser: create-admin <username> <email> <password>")
	fmt.Println()
	fmt.Println("The engine is picked by TOOLING_STORE_DRIVER (postgres or sqlite).")
}

func openStore(log *logger.Logger) (commands.Store, error) {
	cfg, err := config.LoadStoreOptions(appName)
	if err != nil {
		return commands.Store{}, err
	}

	if cfg.Driver == config.DriverSQLite {
		db, err := sqlitedb.NewFromEnv(appName, sqlitedb.WithLogger(log.Logger))
		if err != nil {
			return commands.Store{}, fmt.Errorf("configuring sqlite support: %w", err)
		}
		return commands.Store{SQLite: db}, nil
	}

	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger), postgresdb.WithLogQueries(true))
	if err != nil {
		return commands.Store{}, fmt.Errorf("configuring postgres support: %w", err)
	}
	return commands.Store{PG: pg}, nil
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	// Show help and exit early if requested
	if command == "" || command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}

	store, err := openStore(log)
	if err != nil {
		return err
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		store.Close()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		args := []string{}
		if len(os.Args) > 2 {
			args = os.Args[2:]
		}
		done <- processCommands(ctx, log, command, args, store)
	}()

	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)

		// Give a short time for commands to complete
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		select {
		case err := <-done:
			return err
		case <-shutdownCtx.Done():
			return fmt.Errorf("shutdown timeout: %w", shutdownCtx.Err())
		}
	}
}

func main() {
	environment.LoadEnv()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}
	ctx := context.Background()

	if err = run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}
