package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/api/shared"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
	"github.com/yasirshahid/contactManager-server/internal/redact"
	"github.com/yasirshahid/contactManager-server/internal/service/auth"
)

// Client-facing messages for rejected requests.
const (
	MsgNoToken      = "No token, authorization denied"
	MsgInvalidToken = "Token is not valid"
	MsgServerError  = "Server Error"
)

// AuthTokenHeader is the legacy header still accepted alongside
// "Authorization: Bearer".
const AuthTokenHeader = "x-auth-token"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// extractToken returns the presented token and whether any credential
// header was sent at all. A malformed Authorization header yields ("", true).
func extractToken(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", true
		}
		return parts[1], true
	}

	if token := strings.TrimSpace(r.Header.Get(AuthTokenHeader)); token != "" {
		return token, true
	}

	return "", false
}

// Authenticate validates the caller's token and adds the user ID to the
// request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, present := extractToken(r)
		if !present {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgNoToken)
			return
		}
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidToken, err)
			default:
				logger.FromContext(r.Context()).Error("failed to validate token",
					slog.String("error", redact.Error(err)))
				shared.RespondWithError(w, r, http.StatusInternalServerError, MsgServerError)
			}
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With(
			slog.String("user_id", claims.UserID.String())))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.GetUserID(r.Context())
}
