package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/yasirshahid/contactManager-server/internal/config"
	"github.com/yasirshahid/contactManager-server/internal/platform/postgres"
	"github.com/yasirshahid/contactManager-server/internal/service"
	"github.com/yasirshahid/contactManager-server/internal/service/auth"
	"github.com/yasirshahid/contactManager-server/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	contactStore store.ContactStore

	jwtService     auth.JWTService
	userService    service.UserService
	contactService service.ContactService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be open and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	passwords, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.contactStore = postgres.NewPostgresContactStore(db, logger)

	app.userService, err = service.NewUserService(app.userStore, passwords, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.contactService, err = service.NewContactService(app.contactStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
