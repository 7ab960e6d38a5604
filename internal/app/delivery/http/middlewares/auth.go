package middlewares

import (
	"context"
	"net/http"
	"strings"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"
)

// Authenticate resolves the Bearer token to a Redis session and re-reads
// the stored role so a stale session snapshot never widens access. The
// session is placed on the request context for controllers and role
// guards downstream.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionData, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		role, err := m.AuthUsecase.ResolveRole(r.Context(), sessionData.UserID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		sessionData.Role = role

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects the request when the session's stored role is not
// one of the allowed roles.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			if !ok || sessionData == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
				return
			}

			for _, role := range roles {
				if sessionData.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
		})
	}
}
