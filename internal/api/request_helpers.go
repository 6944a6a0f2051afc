package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/api/shared"
	"github.com/yasirshahid/contactManager-server/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's UUID from the request context.
// The user ID is placed in the context by the authentication middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	return shared.GetUserID(r.Context())
}

// getPathUUID extracts and parses a UUID path parameter.
// A missing or malformed value returns an error wrapping domain.ErrInvalidID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.ErrInvalidID
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}

	return id, nil
}

// handleUserIDAndPathUUID extracts both the user ID from context and a UUID
// from the path parameters. It writes an error response if either extraction
// fails and reports whether the caller should continue.
func handleUserIDAndPathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	log *slog.Logger,
) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	pathID, err := getPathUUID(r, paramName)
	if err != nil {
		log.Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, pathID, true
}

// decodeAndValidate decodes the JSON body into req and validates it. An
// absent body decodes to the zero value so that missing fields are reported
// as validation errors. It writes the error response and returns false on
// failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		if fields := shared.FieldErrors(err, req); len(fields) > 0 {
			shared.RespondWithValidationErrors(w, r, fields)
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return false
	}

	return true
}
