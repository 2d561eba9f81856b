// Package server provides the main server initialization and run logic.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/printcraft-dev/printcraft/internal/api"
	"github.com/printcraft-dev/printcraft/internal/api/handlers"
	"github.com/printcraft-dev/printcraft/internal/config"
	"github.com/printcraft-dev/printcraft/internal/logger"
	"github.com/printcraft-dev/printcraft/internal/store"
)

// Config holds the server configuration options.
type Config struct {
	Port    int    // Port to run the server on (0 = use config default)
	Version string // Version string to report
}

// Run starts the server with the given configuration and blocks until the
// context is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Version != "" {
		handlers.Version = cfg.Version
	}

	// Load configuration
	appCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from CLI flag if provided
	if cfg.Port != 0 {
		appCfg.Server.Port = cfg.Port
	}

	// Initialize logger
	logger.Init(appCfg.Log.Format, appCfg.Log.Level)
	slog.Info("Starting PrintCraft server", "version", cfg.Version, "mode", appCfg.Server.Mode)

	// The in-memory store is the only store: one instance is constructed at
	// boot and lives for the process lifetime. State resets on restart.
	memStore := store.NewMemoryStore()

	router := api.NewRouter(appCfg, memStore)

	addr := appCfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("Server stopped")

	return nil
}

// RunWithSignalHandling starts the server and handles OS signals for
// graceful shutdown.
func RunWithSignalHandling(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, cfg)
	}()

	select {
	case sig := <-quit:
		slog.Info("Received signal", "signal", sig)
		cancel()
		return <-errCh
	case err := <-errCh:
		return err
	}
}
