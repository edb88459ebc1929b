package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/curriforge/internal/config"
	"github.com/stemsi/curriforge/internal/database"
	"github.com/stemsi/curriforge/internal/handler"
	"github.com/stemsi/curriforge/internal/logger"
	"github.com/stemsi/curriforge/internal/router"
	"github.com/stemsi/curriforge/internal/service"
	"github.com/stemsi/curriforge/internal/validator"
)

func main() {
	// Runs last, after the store is closed.
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("env", cfg.AppEnv).
		Str("driver", string(database.DriverFor(cfg.DatabaseURL))).
		Msg("Starting Curriforge")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ─── Open Store (migrates on open) ─────────────────────────────────
	store, err := database.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open curriculum store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Store close error")
		}
	}()

	// ─── Initialize Services & Handlers ───────────────────────────────
	curriculumService := service.NewCurriculumService(store, log)

	handlers := &router.Handlers{
		Curriculum: handler.NewCurriculumHandler(curriculumService),
		Health:     handler.NewHealthHandler(curriculumService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r, err := router.SetupRouter(handlers, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to set up router")
		exitCode = 1
		return
	}

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Serve until SIGINT/SIGTERM ────────────────────────────────────
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(sigCtx, srv, log); err != nil {
		log.Error().Err(err).Msg("Server error")
		exitCode = 1
		return
	}

	log.Info().Msg("Shutdown complete")
}

// serve runs srv until ctx is cancelled, then shuts it down within 5s.
// A listen failure is returned immediately.
func serve(ctx context.Context, srv *http.Server, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
