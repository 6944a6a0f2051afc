package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yasirshahid/contactManager-server/internal/api/shared"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
	"github.com/yasirshahid/contactManager-server/internal/service"
)

// ContactHandler handles contact-related HTTP requests. All routes require
// an authenticated caller.
type ContactHandler struct {
	contactService service.ContactService
	logger         *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactService, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		contactService: contactService,
		logger:         logger.With(slog.String("component", "contact_handler")),
	}
}

// ListContacts handles GET /api/contacts.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return
	}

	contacts, err := h.contactService.ListContacts(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactsToResponses(contacts))
}

// CreateContact handles POST /api/contacts.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return
	}

	var req CreateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := h.contactService.CreateContact(r.Context(), userID, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("contact created", slog.String("contact_id", contact.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(contact))
}

// UpdateContact handles PUT /api/contacts/{id}. Only fields present in the
// body are changed.
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, contactID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	contact, err := h.contactService.UpdateContact(r.Context(), userID, contactID, req.toPatch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(contact))
}

// DeleteContact handles DELETE /api/contacts/{id}.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, contactID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(r.Context(), userID, contactID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("contact deleted", slog.String("contact_id", contactID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Msg: MsgContactRemoved})
}
