package handler

import (
	"net/http"

	"github.com/courtside/draftboard/internal/services/roster"
	"github.com/courtside/draftboard/internal/web/charts"
	"github.com/courtside/draftboard/internal/web/middleware"
)

// ChartsHandler renders interactive chart pages over the filtered view
type ChartsHandler struct {
	rosterController *roster.Controller
	chartConfig      charts.ChartConfig
}

// NewChartsHandler creates a new ChartsHandler
func NewChartsHandler(rosterController *roster.Controller) *ChartsHandler {
	return &ChartsHandler{
		rosterController: rosterController,
		chartConfig:      charts.DefaultChartConfig(),
	}
}

// Positions renders the position-count pie and mean-score bar charts
func (h *ChartsHandler) Positions(w http.ResponseWriter, r *http.Request) {
	stats, ok := h.positionStats(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderPositionCharts(w, stats, h.chartConfig); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ScoreDistribution renders the fantasy-score box plot by position
func (h *ChartsHandler) ScoreDistribution(w http.ResponseWriter, r *http.Request) {
	stats, ok := h.positionStats(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderScoreDistribution(w, stats, h.chartConfig); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *ChartsHandler) positionStats(w http.ResponseWriter, r *http.Request) ([]roster.PositionStats, bool) {
	sessionID := middleware.GetSessionID(r.Context())

	summary, err := h.rosterController.Summary(r.Context(), sessionID, filterFromQuery(r.URL.Query()))
	if err != nil {
		http.Error(w, "Player data is unavailable right now", http.StatusBadGateway)
		return nil, false
	}

	if len(summary.ByPosition) == 0 {
		http.Error(w, "No players to chart", http.StatusNotFound)
		return nil, false
	}

	return summary.ByPosition, true
}
