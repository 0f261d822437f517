package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/services/draft"
	"github.com/courtside/draftboard/internal/services/roster"
	"github.com/courtside/draftboard/internal/web/middleware"
	"github.com/courtside/draftboard/internal/web/views"
)

// BoardHandler handles the draft board page and its actions
type BoardHandler struct {
	rosterController *roster.Controller
	draftController  *draft.Controller
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(rosterController *roster.Controller, draftController *draft.Controller) *BoardHandler {
	return &BoardHandler{
		rosterController: rosterController,
		draftController:  draftController,
	}
}

// Board renders the ranking table with the session's filters applied
func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	filter := filterFromQuery(r.URL.Query())

	view, err := h.rosterController.View(r.Context(), sessionID, filter)
	if err != nil {
		http.Error(w, "Player data is unavailable right now", http.StatusBadGateway)
		return
	}

	summary, err := h.rosterController.Summary(r.Context(), sessionID, filter)
	if err != nil {
		http.Error(w, "Player data is unavailable right now", http.StatusBadGateway)
		return
	}

	state, err := h.draftController.State(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	selected := make(map[model.Position]bool, len(filter.Positions))
	for _, pos := range filter.Positions {
		selected[pos] = true
	}

	data := views.BoardData{
		PageData: views.PageData{
			Title: "Draft board",
			Flash: middleware.GetFlash(r.Context()),
		},
		Season:            view.Season,
		Source:            view.Source,
		Players:           view.Players,
		Summary:           summary,
		DraftedNames:      state.Names(),
		Positions:         model.AllPositions,
		SelectedPositions: selected,
		NameSearch:        filter.NameSearch,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.RenderBoard(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Refresh re-fetches player data and replaces the dataset
func (h *BoardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.rosterController.Refresh(r.Context(), 0)
	if err != nil {
		middleware.SetFlash(w, "error", "Failed to refresh player data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if dataset.Source == model.SourceSample {
		middleware.SetFlash(w, "warning", "Live statistics unavailable, showing sample data")
	} else {
		middleware.SetFlash(w, "success", "Player data refreshed")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Draft marks a player as drafted for the session
func (h *BoardHandler) Draft(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	name, ok := playerFromForm(w, r)
	if !ok {
		return
	}

	if _, err := h.draftController.Mark(r.Context(), sessionID, name); err != nil {
		if errors.Is(err, model.ErrPlayerNotInDataset) {
			middleware.SetFlash(w, "error", "Unknown player: "+name)
		} else {
			middleware.SetFlash(w, "error", "Failed to draft player")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Drafted "+name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Undraft removes a player from the session's drafted set
func (h *BoardHandler) Undraft(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	name, ok := playerFromForm(w, r)
	if !ok {
		return
	}

	if _, err := h.draftController.Unmark(r.Context(), sessionID, name); err != nil {
		middleware.SetFlash(w, "error", "Failed to undraft player")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Returned "+name+" to the board")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ClearDraft discards the session's entire drafted set
func (h *BoardHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	if err := h.draftController.Clear(r.Context(), sessionID); err != nil {
		middleware.SetFlash(w, "error", "Failed to clear drafted players")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Draft list cleared")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func playerFromForm(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return "", false
	}

	name := r.FormValue("player")
	if name == "" {
		middleware.SetFlash(w, "error", "Player name is required")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return "", false
	}

	return name, true
}

// filterFromQuery builds a roster filter from the board's query params.
// Unknown positions are ignored rather than rejected
func filterFromQuery(q url.Values) roster.Filter {
	filter := roster.Filter{
		NameSearch: q.Get("q"),
	}
	for _, raw := range q["position"] {
		pos := model.ParsePosition(raw)
		if pos != model.PositionUnknown {
			filter.Positions = append(filter.Positions, pos)
		}
	}
	return filter
}
