package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hsm-gustavo/smart-pantry/internal/api/inventory"
	"github.com/hsm-gustavo/smart-pantry/internal/api/routes"
	"github.com/hsm-gustavo/smart-pantry/internal/archive"
	"github.com/hsm-gustavo/smart-pantry/internal/config"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
	"github.com/hsm-gustavo/smart-pantry/internal/logging"
)

// @title						Smart Pantry API
// @version					1.0
// @description				Household inventory tracking with expiry stats and recipe suggestions
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	store := db.NewMemoryStore()

	var archiver inventory.Archiver
	if cfg.Archive.Enabled() {
		uploader, err := archive.NewS3Uploader(ctx, cfg.Archive)
		if err != nil {
			logger.Error(ctx, "archive init failed", "error", err)
			os.Exit(1)
		}
		archiver = uploader
		logger.Info(ctx, "archiving enabled", "bucket", cfg.Archive.Bucket)
	}

	// Setup routes here:
	router := routes.SetupRoutes(cfg, store, archiver, logger)
	// End routes

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starts server in a goroutine
	go func() {
		logger.Info(ctx, "server running", "port", cfg.Server.Port)
		err := server.ListenAndServe()

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "error starting the server", "error", err)
			os.Exit(1)
		}
	}()

	// channel to capture quit signals (e.g. CTRL+C)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "error on server shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info(ctx, "server shut down successfully")
}
