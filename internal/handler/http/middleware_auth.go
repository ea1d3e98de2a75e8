package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/perf-dashboard/internal/app"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/service"
	"github.com/MKhiriev/perf-dashboard/internal/utils"
	"github.com/MKhiriev/perf-dashboard/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It reads the "Authorization: Bearer <token>" header, validates the token
// via [service.AuthService.ParseToken] and stores the caller id and role in
// the request context with [utils.WithUser].
//
// Requests are rejected with 401 and a {message} body when the header is
// missing or malformed, or when the token is expired or invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteMessage(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Str("func", "*Handler.auth").Send()
			utils.WriteMessage(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Info().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			if errors.Is(err, service.ErrTokenIsExpired) {
				utils.WriteMessage(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
				return
			}
			utils.WriteMessage(w, app.MsgTokenIsInvalid, http.StatusUnauthorized)
			return
		}

		ctx := utils.WithUser(r.Context(), token.UserID, token.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets the request through only when the role stored by auth is
// one of roles; otherwise it answers 403 "Access denied". It must be mounted
// after auth.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || !slices.Contains(roles, role) {
				logger.FromRequest(r).Info().
					Str("func", "*Handler.requireRole").
					Str("role", string(role)).
					Msg("access denied")
				utils.WriteMessage(w, app.MsgAccessDenied, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// callerID returns the authenticated user id stored by auth.
func callerID(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoCaller
	}
	return userID, nil
}
