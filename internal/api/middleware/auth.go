package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/courtside/draftboard/internal/api/apierr"
	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/services/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Auth creates session authentication middleware. The session token comes
// from the Authorization header or the session cookie
func Auth(sessionService *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			sess, err := sessionService.Validate(r.Context(), model.SessionID(token))
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the session token from the request
func extractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie("session")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetSession returns the session from the request context
func GetSession(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// MustGetSession returns the session or panics
func MustGetSession(ctx context.Context) *model.Session {
	sess := GetSession(ctx)
	if sess == nil {
		panic("no session in context - auth middleware not applied?")
	}
	return sess
}
