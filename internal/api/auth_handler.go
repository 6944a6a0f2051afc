package api

import (
	"log/slog"
	"net/http"

	"github.com/yasirshahid/contactManager-server/internal/api/shared"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
	"github.com/yasirshahid/contactManager-server/internal/redact"
	"github.com/yasirshahid/contactManager-server/internal/service"
	"github.com/yasirshahid/contactManager-server/internal/service/auth"
)

// AuthHandler handles registration, login and current-user requests.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		log.Debug("registration rejected", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user)
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Debug("login rejected", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user)
}

// Me handles GET /api/auth and returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, user *domain.User) {
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgServerError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
