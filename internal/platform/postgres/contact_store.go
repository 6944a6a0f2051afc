package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
	"github.com/yasirshahid/contactManager-server/internal/store"
)

const contactColumns = `id, user_id, name, email, phone, relationship, created_at, updated_at`

// PostgresContactStore implements the store.ContactStore interface
// using a PostgreSQL database as the storage backend.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a new PostgreSQL implementation of the ContactStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Ensure PostgresContactStore implements store.ContactStore interface
var _ store.ContactStore = (*PostgresContactStore)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Relationship,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByUser implements store.ContactStore.ListByUser
func (s *PostgresContactStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list contacts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("contact", "list", "failed to query contacts", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			log.Error("failed to scan contact row",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, store.NewStoreError("contact", "list", "failed to scan contact", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("contact", "list", "failed to iterate contacts", MapError(err))
	}

	log.Debug("listed contacts",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(contacts)))
	return contacts, nil
}

// Create implements store.ContactStore.Create
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return err
	}

	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		contact.ID,
		contact.UserID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Relationship,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during contact creation",
				slog.String("contact_id", contact.ID.String()),
				slog.String("user_id", contact.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, contact.UserID)
		}

		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()),
			slog.String("user_id", contact.UserID.String()))
		return store.NewStoreError("contact", "create", "failed to insert contact", MapError(err))
	}

	log.Info("contact created successfully",
		slog.String("contact_id", contact.ID.String()),
		slog.String("user_id", contact.UserID.String()))
	return nil
}

// GetByID implements store.ContactStore.GetByID
func (s *PostgresContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found", slog.String("contact_id", id.String()))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact by ID",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return nil, store.NewStoreError("contact", "get", "failed to query contact", MapError(err))
	}

	return contact, nil
}

// Update implements store.ContactStore.Update
func (s *PostgresContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE contacts
		SET name = $1, email = $2, phone = $3, relationship = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Relationship,
		contact.UpdatedAt,
		contact.ID,
	)
	if err != nil {
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return store.NewStoreError("contact", "update", "failed to update contact", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		log.Debug("contact vanished before update", slog.String("contact_id", contact.ID.String()))
		return err
	}

	log.Info("contact updated successfully", slog.String("contact_id", contact.ID.String()))
	return nil
}

// Delete implements store.ContactStore.Delete
func (s *PostgresContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return store.NewStoreError("contact", "delete", "failed to delete contact", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		log.Debug("contact not found for delete", slog.String("contact_id", id.String()))
		return err
	}

	log.Info("contact deleted successfully", slog.String("contact_id", id.String()))
	return nil
}
