package api

import (
	"errors"
	"net/http"

	"github.com/yasirshahid/contactManager-server/internal/api/shared"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/service"
	"github.com/yasirshahid/contactManager-server/internal/service/auth"
	"github.com/yasirshahid/contactManager-server/internal/store"
)

// Client-facing messages.
const (
	MsgEmailExists        = "A User with this email already exists"
	MsgInvalidCredentials = "Invalid Credentials"
	MsgContactNotFound    = "This contact does not exist."
	MsgNotAuthorized      = "Not authorized"
	MsgContactRemoved     = "This contact has been removed"
	MsgUserNotFound       = "User not found"
	MsgInvalidToken       = "Token is not valid"
	MsgInvalidRequest     = "Invalid request format"
	MsgInvalidEntity      = "Invalid entity data"
	MsgServerError        = "Server Error"
)

// Field validation messages, keyed by the domain sentinel they describe.
var validationMessages = map[error]string{
	domain.ErrEmptyUserName:       "Please Enter a name",
	domain.ErrEmptyEmail:          "Please Enter a valid email",
	domain.ErrInvalidEmail:        "Please Enter a valid email",
	domain.ErrPasswordTooShort:    "Please enter password with at least 6 characters",
	domain.ErrPasswordTooLong:     "Please enter password with at most 72 characters",
	domain.ErrEmptyContactName:    "Name is required",
	domain.ErrEmptyHashedPassword: "Password is required",
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// A caller who is not the owner gets 401, as for a bad token.
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrContactNotOwned),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrContactNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgServerError
	case errors.Is(err, store.ErrEmailExists):
		return MsgEmailExists
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidEntity
	case errors.Is(err, service.ErrContactNotOwned),
		errors.Is(err, domain.ErrUnauthorized):
		return MsgNotAuthorized
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return MsgInvalidToken
	case errors.Is(err, store.ErrContactNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return MsgContactNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	default:
		return MsgServerError
	}
}

// validationFieldErrors turns a domain validation failure into the
// field error list sent to clients.
func validationFieldErrors(err error) []shared.FieldError {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return []shared.FieldError{{Msg: "Invalid input"}}
	}

	msg := ve.Field + " " + ve.Message
	for sentinel, m := range validationMessages {
		if errors.Is(ve.Err, sentinel) {
			msg = m
			break
		}
	}
	return []shared.FieldError{{Param: ve.Field, Msg: msg}}
}

// HandleAPIError writes the response for err. Validation failures get the
// field error list; everything else gets a safe message and status.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		shared.RespondWithValidationErrors(w, r, validationFieldErrors(err))
		return
	}

	status := MapErrorToStatusCode(err)
	var opts []shared.ResponseOption
	if errors.Is(err, service.ErrContactNotOwned) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
