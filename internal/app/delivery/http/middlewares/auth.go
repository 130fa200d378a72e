package middlewares

import (
	"context"
	"net/http"
	"strings"

	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/exceptions"
	"compliance-service/internal/pkg/utils"
)

// Authenticate validates the bearer session token and stores the caller's
// email and role in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, role, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_EMAIL_KEY, email)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards the admin surface; it assumes Authenticate ran first.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
		if role != constvars.RoleAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
