package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/courtside/draftboard/internal/services/draft"
	"github.com/courtside/draftboard/internal/services/roster"
	"github.com/courtside/draftboard/internal/services/session"
	"github.com/courtside/draftboard/internal/web/handler"
	"github.com/courtside/draftboard/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger           *slog.Logger
	SessionService   *session.Service
	RosterController *roster.Controller
	DraftController  *draft.Controller
	StaticDir        string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	sessionMiddleware := middleware.Session(cfg.SessionService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	boardHandler := handler.NewBoardHandler(cfg.RosterController, cfg.DraftController)
	exportHandler := handler.NewExportHandler(cfg.RosterController)
	chartsHandler := handler.NewChartsHandler(cfg.RosterController)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// Every page and action runs under an anonymous session
	pages := r.NewRoute().Subrouter()
	pages.Use(flashMiddleware)
	pages.Use(sessionMiddleware)

	pages.HandleFunc("/", boardHandler.Board).Methods(http.MethodGet)
	pages.HandleFunc("/refresh", boardHandler.Refresh).Methods(http.MethodPost)

	pages.HandleFunc("/draft", boardHandler.Draft).Methods(http.MethodPost)
	pages.HandleFunc("/undraft", boardHandler.Undraft).Methods(http.MethodPost)
	pages.HandleFunc("/draft/clear", boardHandler.ClearDraft).Methods(http.MethodPost)

	pages.HandleFunc("/export", exportHandler.Export).Methods(http.MethodGet)

	pages.HandleFunc("/charts/positions", chartsHandler.Positions).Methods(http.MethodGet)
	pages.HandleFunc("/charts/fppg", chartsHandler.ScoreDistribution).Methods(http.MethodGet)

	return r
}
