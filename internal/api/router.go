package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/courtside/draftboard/internal/api/handler"
	"github.com/courtside/draftboard/internal/api/middleware"
	"github.com/courtside/draftboard/internal/services/draft"
	"github.com/courtside/draftboard/internal/services/roster"
	"github.com/courtside/draftboard/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	SessionService   *session.Service
	RosterController *roster.Controller
	DraftController  *draft.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionService)
	rosterHandler := handler.NewRosterHandler(cfg.RosterController)
	draftHandler := handler.NewDraftHandler(cfg.DraftController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.SessionService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session creation requires no auth; everything else does
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/sessions/current", sessionHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/players", rosterHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/refresh", rosterHandler.Refresh).Methods(http.MethodPost)
	protected.HandleFunc("/summary", rosterHandler.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/export", rosterHandler.Export).Methods(http.MethodGet)

	protected.HandleFunc("/draft", draftHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/draft", draftHandler.Clear).Methods(http.MethodDelete)
	protected.HandleFunc("/draft/{name}", draftHandler.Mark).Methods(http.MethodPut)
	protected.HandleFunc("/draft/{name}", draftHandler.Unmark).Methods(http.MethodDelete)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
