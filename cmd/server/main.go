// @title E025 Extraction API
// @version 1.0
// @description Extracts E025 outpatient visit documents from Lithuanian doctor-patient transcripts.
// @BasePath /api
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/config"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor/providers"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/handler"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/logging"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/router"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/schema"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.Log, os.Stderr)

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// A missing key does not stop the server; extraction requests report it.
	ext, err := providers.Resolve(&cfg.LLM)
	if err != nil {
		slog.Warn("extraction provider unavailable", "provider", cfg.LLM.Provider, "error", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to compile output schema: %w", err)
	}

	// Initialize services
	extractionSvc := service.NewExtractionService(ext, validator, cfg.LLM.Provider)

	// Initialize handlers
	extractionH := handler.NewExtractionHandler(extractionSvc)
	healthH := handler.NewHealthHandler(extractionSvc.Provider())

	// Setup router
	r := router.Setup(extractionH, healthH, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "provider", cfg.LLM.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
