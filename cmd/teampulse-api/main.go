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

	"github.com/dimitrije/teampulse-api/internal/config"
	"github.com/dimitrije/teampulse-api/internal/database"
	"github.com/dimitrije/teampulse-api/internal/handlers"
	"github.com/dimitrije/teampulse-api/internal/logger"
	"github.com/dimitrije/teampulse-api/internal/repository"
	"github.com/dimitrije/teampulse-api/internal/seed"
	"github.com/dimitrije/teampulse-api/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	teamRepo := repository.NewTeamRepository(db)
	preferencesRepo := repository.NewPreferencesRepository(db)

	if cfg.SeedOnStart {
		if _, err := seed.TeamData(ctx, teamRepo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed team data")
		}
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Release:     cfg.IsProduction(),
		CORSOrigins: cfg.CORSOrigins,
		Team:        handlers.NewTeamHandler(services.NewTeamService(teamRepo)),
		Preferences: handlers.NewPreferencesHandler(services.NewPreferencesService(preferencesRepo)),
		Health:      handlers.NewHealthHandler(db.Pool),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
