package handler

import (
	"errors"
	"net/http"

	"github.com/courtside/draftboard/internal/export"
	"github.com/courtside/draftboard/internal/services/roster"
	"github.com/courtside/draftboard/internal/web/middleware"
)

// ExportHandler serializes the current filtered view for download
type ExportHandler struct {
	rosterController *roster.Controller
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(rosterController *roster.Controller) *ExportHandler {
	return &ExportHandler{
		rosterController: rosterController,
	}
}

// Export writes the filtered, non-drafted view in the requested format
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			http.Error(w, "Unknown export format", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	view, err := h.rosterController.View(r.Context(), sessionID, filterFromQuery(r.URL.Query()))
	if err != nil {
		http.Error(w, "Player data is unavailable right now", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	_ = export.Write(w, format, view.Players)
}
