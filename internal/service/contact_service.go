package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
	"github.com/yasirshahid/contactManager-server/internal/store"
)

// ContactInput carries the fields of a new contact.
type ContactInput struct {
	Name         string
	Email        string
	Phone        string
	Relationship string
}

// ContactService provides contact operations scoped to a single owner.
// Every method takes the authenticated caller's ID; the service never
// returns or mutates a contact that belongs to someone else.
type ContactService interface {
	// ListContacts returns the caller's contacts, newest first.
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error)

	// CreateContact creates a contact owned by the caller.
	CreateContact(ctx context.Context, userID uuid.UUID, input ContactInput) (*domain.Contact, error)

	// UpdateContact applies patch to a contact the caller owns.
	// Returns store.ErrContactNotFound or ErrContactNotOwned.
	UpdateContact(
		ctx context.Context,
		userID, contactID uuid.UUID,
		patch domain.ContactPatch,
	) (*domain.Contact, error)

	// DeleteContact removes a contact the caller owns.
	// Returns store.ErrContactNotFound or ErrContactNotOwned.
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
}

type contactServiceImpl struct {
	contactStore store.ContactStore
	logger       *slog.Logger
}

var _ ContactService = (*contactServiceImpl)(nil)

// NewContactService creates a new ContactService.
// It returns an error if contactStore is nil.
func NewContactService(contactStore store.ContactStore, logger *slog.Logger) (ContactService, error) {
	if contactStore == nil {
		return nil, fmt.Errorf("contactStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &contactServiceImpl{
		contactStore: contactStore,
		logger:       logger.With(slog.String("component", "contact_service")),
	}, nil
}

// ListContacts implements ContactService.ListContacts
func (s *contactServiceImpl) ListContacts(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Contact, error) {
	contacts, err := s.contactStore.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list contacts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("contact", "list", err)
	}
	return contacts, nil
}

// CreateContact implements ContactService.CreateContact
func (s *contactServiceImpl) CreateContact(
	ctx context.Context,
	userID uuid.UUID,
	input ContactInput,
) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contact, err := domain.NewContact(userID, input.Name, input.Email, input.Phone, input.Relationship)
	if err != nil {
		log.Debug("contact input rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.contactStore.Create(ctx, contact); err != nil {
		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("contact", "create", err)
	}

	return contact, nil
}

// UpdateContact implements ContactService.UpdateContact
func (s *contactServiceImpl) UpdateContact(
	ctx context.Context,
	userID, contactID uuid.UUID,
	patch domain.ContactPatch,
) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contact, err := s.getOwned(ctx, userID, contactID, "update")
	if err != nil {
		return nil, err
	}

	if err := patch.Validate(); err != nil {
		log.Debug("contact patch rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if !patch.ApplyTo(contact) {
		return contact, nil
	}

	if err := s.contactStore.Update(ctx, contact); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			log.Debug("contact removed before update", slog.String("contact_id", contactID.String()))
			return nil, err
		}
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contactID.String()))
		return nil, NewServiceError("contact", "update", err)
	}

	return contact, nil
}

// DeleteContact implements ContactService.DeleteContact
func (s *contactServiceImpl) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.getOwned(ctx, userID, contactID, "delete"); err != nil {
		return err
	}

	if err := s.contactStore.Delete(ctx, contactID); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			return err
		}
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contactID.String()))
		return NewServiceError("contact", "delete", err)
	}

	log.Info("contact deleted",
		slog.String("contact_id", contactID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// getOwned loads a contact and checks that userID owns it.
func (s *contactServiceImpl) getOwned(
	ctx context.Context,
	userID, contactID uuid.UUID,
	op string,
) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contact, err := s.contactStore.GetByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			log.Debug("contact not found", slog.String("contact_id", contactID.String()))
			return nil, err
		}
		log.Error("failed to load contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contactID.String()))
		return nil, NewServiceError("contact", op, err)
	}

	if !contact.IsOwnedBy(userID) {
		log.Warn("contact access by non-owner",
			slog.String("contact_id", contactID.String()),
			slog.String("user_id", userID.String()),
			slog.String("operation", op))
		return nil, ErrContactNotOwned
	}

	return contact, nil
}
