package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/capycare/capycare/backend/internal/auth"
	"github.com/capycare/capycare/backend/internal/session"
)

type contextKey string

const userKey contextKey = "user"

// Identity resolves the request's user namespace from a Bearer token.
// Requests without a valid token run under the anonymous namespace so
// the app remains usable before sign-in.
func Identity(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if user, err := tokens.Verify(strings.TrimSpace(token)); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userKey, user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID returns the authenticated user id, or the anonymous namespace.
func UserID(ctx context.Context) string {
	if user, ok := ctx.Value(userKey).(auth.User); ok && user.ID != "" {
		return user.ID
	}
	return session.AnonymousUser
}

// UserFrom returns the authenticated identity when present.
func UserFrom(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(userKey).(auth.User)
	return user, ok
}
