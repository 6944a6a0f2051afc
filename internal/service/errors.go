package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to status codes.
var (
	// ErrContactNotOwned indicates the caller is authenticated but does not
	// own the contact it tried to change or remove.
	ErrContactNotOwned = errors.New("contact is owned by another user")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// Both cases return the same error.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ServiceError wraps an unexpected failure with the service and operation
// in which it happened. Expected conditions are returned as sentinels instead.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{
		Service: service,
		Op:      op,
		Err:     err,
	}
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
