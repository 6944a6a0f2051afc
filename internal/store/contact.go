package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/domain"
)

// ContactStore defines the interface for contact data persistence.
// Ownership is not enforced here; callers check Contact.UserID before
// mutating.
type ContactStore interface {
	// ListByUser returns every contact owned by userID, newest first.
	// Returns an empty, non-nil slice when the user has no contacts.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error)

	// Create saves a new contact.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByID retrieves a contact by its unique ID.
	// Returns ErrContactNotFound if the contact does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	// Update writes the mutable fields (name, email, phone, relationship,
	// updated_at) of an existing contact.
	// Returns ErrContactNotFound if the contact no longer exists.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete permanently removes a contact.
	// Returns ErrContactNotFound if the contact does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
