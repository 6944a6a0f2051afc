package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/service"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ValidationMessages implements shared.MessageProvider.
func (RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name":     "Please Enter a name",
		"email":    "Please Enter a valid email",
		"password": "Please enter password with at least 6 characters",
	}
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ValidationMessages implements shared.MessageProvider.
func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email":    "Please include a valid email",
		"password": "Password is required",
	}
}

// TokenResponse is returned by registration and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public view of an account. It never includes the
// password hash.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Date:  u.CreatedAt,
	}
}

// CreateContactRequest defines the payload for creating a contact.
type CreateContactRequest struct {
	Name         string `json:"name"         validate:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// ValidationMessages implements shared.MessageProvider.
func (CreateContactRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name": "Name is required",
	}
}

func (r CreateContactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Relationship: r.Relationship,
	}
}

// UpdateContactRequest is a partial update. A field left out of the JSON
// body stays nil and is not touched; a field sent as "" is cleared.
type UpdateContactRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Relationship *string `json:"relationship"`
}

func (r UpdateContactRequest) toPatch() domain.ContactPatch {
	return domain.ContactPatch{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Relationship: r.Relationship,
	}
}

// ContactResponse is the wire shape of a contact.
type ContactResponse struct {
	ID           uuid.UUID `json:"id"`
	User         uuid.UUID `json:"user"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship"`
	Date         time.Time `json:"date"`
}

func contactToResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:           c.ID,
		User:         c.UserID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Relationship: c.Relationship,
		Date:         c.CreatedAt,
	}
}

func contactsToResponses(contacts []*domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactToResponse(c))
	}
	return out
}
