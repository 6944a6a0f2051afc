package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/yasirshahid/contactManager-server/internal/platform/postgres/migrations"
)

// Migration commands accepted by Migrate.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
	MigrateReset   = "reset"
)

// slogGooseLogger routes goose output through slog.
type slogGooseLogger struct {
	log *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements goose.Logger. It logs at error level and does not exit;
// the failure is returned to the caller by the goose command itself.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

// gooseRun is a seam for tests.
var gooseRun = goose.RunContext

// Migrate runs a goose command against db using the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, log *slog.Logger) error {
	switch command {
	case MigrateUp, MigrateDown, MigrateStatus, MigrateVersion, MigrateReset:
	default:
		return fmt.Errorf("unsupported migration command %q", command)
	}

	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "migrations"), slog.String("command", command))

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&slogGooseLogger{log: log})
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	start := time.Now()
	log.Info("starting migration operation")

	if err := gooseRun(ctx, command, db, "."); err != nil {
		log.Error("migration failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	log.Info("migration operation completed",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
