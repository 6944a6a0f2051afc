// Package main implements the entry point for the contact manager API
// server, which stores users' address books and serves them over a
// token-authenticated REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/yasirshahid/contactManager-server/internal/config"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
	"github.com/yasirshahid/contactManager-server/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status, version, reset) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("contact manager server: %v", err)
	}
}

// run loads configuration, connects to the database and either executes a
// single migration command or serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("token_lifetime_seconds", cfg.Auth.TokenLifetimeSeconds))

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				l.Error("error closing database connection", slog.String("error", err.Error()))
			}
		}()
		return postgres.Migrate(ctx, db, migrateCmd, l)
	}

	if err := postgres.Migrate(ctx, db, postgres.MigrateUp, l); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
