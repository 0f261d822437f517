package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/courtside/draftboard/internal/dependencies/clock"
	"github.com/courtside/draftboard/internal/provider"
	"github.com/courtside/draftboard/internal/provider/espn"
	"github.com/courtside/draftboard/internal/services/draft"
	"github.com/courtside/draftboard/internal/services/roster"
	"github.com/courtside/draftboard/internal/services/scoring"
	"github.com/courtside/draftboard/internal/services/session"
	"github.com/courtside/draftboard/internal/storage"
	"github.com/courtside/draftboard/internal/storage/memory"
	redisstorage "github.com/courtside/draftboard/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock    clock.Clock
	Provider provider.Provider

	// Services
	ScoringService   *scoring.Service
	SessionService   *session.Service
	RosterController *roster.Controller
	DraftController  *draft.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ProviderConfig holds statistics provider settings (optional)
	// If zero value, defaults to espn.DefaultConfig()
	ProviderConfig espn.Config
	// SessionConfig holds session settings (optional)
	// If zero value, defaults to session.DefaultConfig()
	SessionConfig session.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	providerCfg := cfg.ProviderConfig
	if providerCfg.FantasyBaseURL == "" {
		providerCfg = espn.DefaultConfig()
	}
	prov := espn.New(providerCfg, logger)

	sessionCfg := cfg.SessionConfig
	if sessionCfg.SessionDuration == 0 {
		sessionCfg = session.DefaultConfig()
	}

	return newWithDependencies(store, clk, prov, sessionCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, prov provider.Provider, sessionCfg session.Config, logger *slog.Logger) *App {
	scoringService := scoring.New()
	sessionService := session.New(store, clk, sessionCfg)
	rosterController := roster.NewController(store, prov, scoringService, clk, logger)
	draftController := draft.NewController(store, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Provider:         prov,
		ScoringService:   scoringService,
		SessionService:   sessionService,
		RosterController: rosterController,
		DraftController:  draftController,
	}
}
