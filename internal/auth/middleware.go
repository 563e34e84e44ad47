package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/kerudungstore/backend/internal/flash"
	"github.com/kerudungstore/backend/internal/models"
)

// CookieName is the name of the session cookie
const CookieName = "access_token"

type contextKey string

const sessionKey contextKey = "session"

// SessionMiddleware validates the session token and binds the session to the
// request context. Requests without a valid session are redirected to the
// login view with a notice.
func SessionMiddleware(tokenGenerator *TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := resolveSession(tokenGenerator, r)
			if !ok {
				flash.Set(w, "please log in first")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware validates the session token and additionally requires the
// admin role. Authenticated non-admins are redirected to the home view with a
// notice; anonymous requests go to the login view.
func AdminMiddleware(tokenGenerator *TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := resolveSession(tokenGenerator, r)
			if !ok {
				flash.Set(w, "please log in first")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if session.Role != models.RoleAdmin {
				flash.Set(w, "only admins can do that")
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveSession extracts and validates the session token from the request
func resolveSession(tokenGenerator *TokenGenerator, r *http.Request) (*Session, bool) {
	var token string

	// Try Authorization header first
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			token = parts[1]
		}
	}

	// If not in header, try cookie
	if token == "" {
		cookie, err := r.Cookie(CookieName)
		if err == nil {
			token = cookie.Value
		}
	}

	if token == "" {
		return nil, false
	}

	session, err := tokenGenerator.ValidateToken(token)
	if err != nil {
		return nil, false
	}

	return session, true
}

// GetSession retrieves the session from context
func GetSession(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey).(*Session)
	return session, ok
}
