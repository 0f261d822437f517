package middleware

import (
	"context"
	"net/http"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/services/session"
)

type contextKey string

const (
	sessionCookieName            = "session"
	sessionContextKey contextKey = "session"
)

// GetSessionID retrieves the session ID from the request context.
// Returns empty if the session middleware did not run
func GetSessionID(ctx context.Context) model.SessionID {
	id, _ := ctx.Value(sessionContextKey).(model.SessionID)
	return id
}

// Session returns middleware that attaches an anonymous session to every
// request. A missing or expired session cookie gets a fresh session
// transparently, so draft state is always scoped to some session
func Session(sessionService *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := resolveSession(w, r, sessionService)
			if sess == nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSession(w http.ResponseWriter, r *http.Request, sessionService *session.Service) *model.Session {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		sess, err := sessionService.Validate(r.Context(), model.SessionID(cookie.Value))
		if err == nil {
			return sess
		}
	}

	sess, err := sessionService.Create(r.Context())
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    string(sess.ID),
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess
}
