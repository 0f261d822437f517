package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/courtside/draftboard/internal/api/middleware"
	"github.com/courtside/draftboard/internal/api/response"
	"github.com/courtside/draftboard/internal/services/draft"
)

// DraftHandler handles the session's drafted-player set
type DraftHandler struct {
	draftController *draft.Controller
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftController *draft.Controller) *DraftHandler {
	return &DraftHandler{
		draftController: draftController,
	}
}

// Get handles GET /api/v1/draft
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	state, err := h.draftController.State(r.Context(), sess.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DraftFromModel(state))
}

// Mark handles PUT /api/v1/draft/{name}
func (h *DraftHandler) Mark(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	name := mux.Vars(r)["name"]

	state, err := h.draftController.Mark(r.Context(), sess.ID, name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DraftFromModel(state))
}

// Unmark handles DELETE /api/v1/draft/{name}
func (h *DraftHandler) Unmark(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	name := mux.Vars(r)["name"]

	state, err := h.draftController.Unmark(r.Context(), sess.ID, name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DraftFromModel(state))
}

// Clear handles DELETE /api/v1/draft
func (h *DraftHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	if err := h.draftController.Clear(r.Context(), sess.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
