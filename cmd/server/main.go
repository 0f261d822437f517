package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/courtside/draftboard/internal/api"
	"github.com/courtside/draftboard/internal/config"
	"github.com/courtside/draftboard/internal/factory"
	"github.com/courtside/draftboard/internal/provider/espn"
	"github.com/courtside/draftboard/internal/services/session"
	redisstorage "github.com/courtside/draftboard/internal/storage/redis"
	"github.com/courtside/draftboard/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath := flag.String("config", os.Getenv("DRAFTBOARD_CONFIG"), "Path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
		ProviderConfig: espn.Config{
			FantasyBaseURL: cfg.Provider.FantasyBaseURL,
			CoreBaseURL:    cfg.Provider.CoreBaseURL,
			Timeout:        cfg.ProviderTimeout(),
		},
		SessionConfig: session.Config{
			SessionDuration: cfg.SessionDuration(),
		},
	}

	if cfg.Storage.Type == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.SessionTTL = cfg.SessionDuration()
		redisCfg.DatasetTTL = cfg.DatasetTTL()
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Find static files directory
	staticDir := findStaticDir()

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		SessionService:   app.SessionService,
		RosterController: app.RosterController,
		DraftController:  app.DraftController,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:           logger,
		SessionService:   app.SessionService,
		RosterController: app.RosterController,
		DraftController:  app.DraftController,
		StaticDir:        staticDir,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		"./internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// Default to relative path
	return "internal/web/static"
}
