package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Contact
var (
	ErrEmptyContactID     = errors.New("contact ID cannot be empty")
	ErrEmptyContactUserID = errors.New("contact owner ID cannot be empty")
	ErrEmptyContactName   = errors.New("contact name cannot be empty")
)

// Contact is an address-book entry. Every contact has exactly one owner,
// fixed at creation; only that owner may read, change or delete it.
type Contact struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"date"`
	UpdatedAt    time.Time `json:"-"`
}

// NewContact creates a new Contact owned by userID.
// Returns an error if validation fails.
func NewContact(userID uuid.UUID, name, email, phone, relationship string) (*Contact, error) {
	now := time.Now().UTC()
	contact := &Contact{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		Phone:        strings.TrimSpace(phone),
		Relationship: strings.TrimSpace(relationship),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks if the Contact has valid data.
func (c *Contact) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrEmptyContactID)
	}

	if c.UserID == uuid.Nil {
		return NewValidationError("user", "is required", ErrEmptyContactUserID)
	}

	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "is required", ErrEmptyContactName)
	}

	return nil
}

// IsOwnedBy reports whether userID owns the contact.
func (c *Contact) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// ContactPatch is a sparse update. A nil field was not supplied and leaves
// the stored value alone; a non-nil field replaces it, even when empty.
type ContactPatch struct {
	Name         *string
	Email        *string
	Phone        *string
	Relationship *string
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Relationship == nil
}

// Validate rejects patches that would break Contact invariants.
// Name may be replaced but never cleared.
func (p ContactPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyContactName)
	}
	return nil
}

// ApplyTo copies the supplied fields onto c and reports whether anything
// changed. UpdatedAt is bumped only on change.
func (p ContactPatch) ApplyTo(c *Contact) bool {
	changed := false
	set := func(dst *string, src *string) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if *dst != v {
			*dst = v
			changed = true
		}
	}

	set(&c.Name, p.Name)
	set(&c.Email, p.Email)
	set(&c.Phone, p.Phone)
	set(&c.Relationship, p.Relationship)

	if changed {
		c.UpdatedAt = time.Now().UTC()
	}
	return changed
}
