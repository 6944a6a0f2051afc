package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Password length bounds. The upper bound is bcrypt's input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUserName       = errors.New("name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

var emailValidator = validator.New()

// User represents a registered account. Users are created at registration
// and never modified or removed afterwards.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, only present during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"date"`
}

// NewUser creates a new User with the given name, email and password.
// It generates a new UUID, normalizes the email and sets the creation time.
// Returns an error if validation fails.
//
// The caller is responsible for hashing the password before storing the user.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail trims and lower-cases an address so lookups and the unique
// index agree on what counts as the same email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks if the User has valid data.
// Returns a *ValidationError naming the first invalid field.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrEmptyUserID)
	}

	if strings.TrimSpace(u.Name) == "" {
		return NewValidationError("name", "is required", ErrEmptyUserName)
	}

	if u.Email == "" {
		return NewValidationError("email", "is required", ErrEmptyEmail)
	}

	if !IsValidEmail(u.Email) {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return NewValidationError("password", "is too short", ErrPasswordTooShort)
		}
		if len(u.Password) > MaxPasswordLength {
			return NewValidationError("password", "is too long", ErrPasswordTooLong)
		}
		return nil
	}

	// Without a plaintext password the user must already carry a hash
	// (the case for users loaded from the store).
	if u.HashedPassword == "" {
		return NewValidationError("password", "is required", ErrEmptyHashedPassword)
	}

	return nil
}

// IsValidEmail reports whether email is a well-formed address.
func IsValidEmail(email string) bool {
	return emailValidator.Var(email, "required,email") == nil
}
