package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/cache"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/config"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/logger"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/mfapi"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/service"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.Logging.Level)
	zlog.Logger = log.Logger

	// Create the NAV data provider client
	client := mfapi.NewClient(
		mfapi.WithBaseURL(cfg.MFAPI.BaseURL),
		mfapi.WithTimeout(cfg.MFAPI.GetTimeout()),
		mfapi.WithRateLimit(cfg.MFAPI.RateLimit),
		mfapi.WithLogger(log),
	)

	// Create services
	schemeService := service.NewSchemeService(client, cfg.Cache.GetTTL(), log)
	analyticsService := service.NewAnalyticsService(schemeService)
	systemService := service.NewSystemService(schemeService.Caches()...)

	sweeper, err := cache.NewSweeper(cfg.Cache.SweepSchedule, log, schemeService.Caches()...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule cache sweeps")
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Create router
	router := api.NewRouter(systemService, schemeService, analyticsService, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("addr", cfg.Server.Addr).
			Str("version", version.Version).
			Str("provider", cfg.MFAPI.BaseURL).
			Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	<-ctx.Done()

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	log.Info().Msg("Server exited")
}
