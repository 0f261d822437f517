package handler

import (
	"net/http"

	"github.com/courtside/draftboard/internal/api/middleware"
	"github.com/courtside/draftboard/internal/api/response"
	"github.com/courtside/draftboard/internal/services/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	sessionService *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessionService.Create(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(sess))
}

// Delete handles DELETE /api/v1/sessions/current
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	if err := h.sessionService.Invalidate(r.Context(), sess.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
