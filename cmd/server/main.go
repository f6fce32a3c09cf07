package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/noobdev/site-api/internal/api"
	"github.com/noobdev/site-api/internal/config"
	"github.com/noobdev/site-api/internal/notion"
	"github.com/noobdev/site-api/internal/service"
	"github.com/noobdev/site-api/internal/store"
	"github.com/noobdev/site-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting site API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize interaction store
	var interactions store.Store
	switch cfg.Interactions.Backend {
	case "sqlite":
		interactions, err = store.NewSQLiteStore(cfg.Interactions.DBPath, cfg.Interactions.MigrationsPath, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open interaction store")
		}
	default:
		interactions = store.NewFileStore(cfg.Interactions.FilePath, log)
	}
	defer interactions.Close()
	log.Info().Str("backend", cfg.Interactions.Backend).Msg("Interaction store initialized")

	// Initialize content source and services
	source := notion.NewSource(&cfg.Notion, log)
	services := service.NewServices(source, interactions, log)

	// Initialize router
	router := api.NewRouter(services, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
