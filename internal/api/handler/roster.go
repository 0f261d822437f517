package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/courtside/draftboard/internal/api/middleware"
	"github.com/courtside/draftboard/internal/api/request"
	"github.com/courtside/draftboard/internal/api/response"
	"github.com/courtside/draftboard/internal/export"
	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/services/roster"
)

// RosterHandler handles player listing, refresh, summary and export
type RosterHandler struct {
	rosterController *roster.Controller
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterController *roster.Controller) *RosterHandler {
	return &RosterHandler{
		rosterController: rosterController,
	}
}

// List handles GET /api/v1/players
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.rosterController.View(r.Context(), sess.ID, filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	players := make([]response.Player, len(view.Players))
	for i, p := range view.Players {
		players[i] = response.PlayerFromModel(p)
	}

	response.JSON(w, http.StatusOK, response.Players{
		Season:       view.Season,
		Source:       string(view.Source),
		Count:        len(players),
		DraftedCount: view.DraftedCount,
		Players:      players,
	})
}

// Refresh handles POST /api/v1/refresh
func (h *RosterHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	dataset, err := h.rosterController.Refresh(r.Context(), req.Season)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RefreshFromModel(dataset))
}

// Summary handles GET /api/v1/summary
func (h *RosterHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	summary, err := h.rosterController.Summary(r.Context(), sess.ID, filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// Export handles GET /api/v1/export
func (h *RosterHandler) Export(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		WriteError(w, err)
		return
	}

	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.rosterController.View(r.Context(), sess.ID, filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	_ = export.Write(w, format, view.Players)
}

// filterFromQuery builds a roster filter from query params. Unlike the web
// board, unknown positions are rejected rather than ignored
func filterFromQuery(q url.Values) (roster.Filter, error) {
	filter := roster.Filter{
		NameSearch: q.Get("q"),
	}
	for _, raw := range q["position"] {
		pos := model.ParsePosition(raw)
		if pos == model.PositionUnknown {
			return roster.Filter{}, NewInvalidRequestError("unknown position: " + raw)
		}
		filter.Positions = append(filter.Positions, pos)
	}
	return filter, nil
}
