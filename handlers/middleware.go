package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/hudsonrene96-debug/todo-list-backend/auth"
)

type contextKey struct{}

var userIDKey contextKey

// RequireAuth verifies the bearer token and puts the resolved user ID into
// the request context. Missing, malformed, forged and expired tokens all get
// the same 401 envelope; the cause is logged, never returned.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, KindUnauthorized, "authentication required")
				return
			}
			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.Printf("auth: rejected token: %v", err)
				writeError(w, http.StatusUnauthorized, KindUnauthorized, "authentication required")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}

// userIDFrom returns the identity the middleware resolved for this request.
func userIDFrom(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}
