package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/xburian/volejbal-app-v2/internal/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Session extracts a bearer token, validates it, and stores the active
// user's ID in the request context. Requests without a token pass through
// unauthenticated; handlers that need a user wrap with RequireUser.
func Session(manager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if claims, err := manager.Validate(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, claims.UserID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects requests whose context carries no authenticated user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserID(r.Context()) == "" {
			http.Error(w, auth.ErrMissingToken.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the authenticated user's ID, or "" when the request is
// anonymous.
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
