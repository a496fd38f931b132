package handlers

import (
	"net/http"

	"github.com/dimitrije/teampulse-api/internal/logger"
	"github.com/dimitrije/teampulse-api/internal/middleware"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
)

type RouterConfig struct {
	Release     bool
	CORSOrigins []string
	Team        *TeamHandler
	Preferences *PreferencesHandler
	Health      *HealthHandler
}

// NewRouter mounts every endpoint under /api/v1.
func NewRouter(cfg RouterConfig) http.Handler {
	app := drift.New()

	if cfg.Release {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(driftmw.Recovery())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(logger.Get()))
	app.Use(middleware.Metrics())
	app.Use(driftmw.CORSWithConfig(driftmw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		MaxAge:       86400,
	}))
	app.Use(driftmw.BodyParser())

	api := app.Group("/api/v1")

	api.Get("/health", cfg.Health.Check)

	api.Get("/team", cfg.Team.List)
	api.Post("/team", cfg.Team.Create)
	api.Get("/team/:id", cfg.Team.Get)
	api.Post("/team/:id/mood", cfg.Team.SubmitMood)
	api.Patch("/team/:id/status", cfg.Team.UpdateStatus)
	api.Delete("/team/:id", cfg.Team.Delete)

	api.Get("/preferences/:userId", cfg.Preferences.Get)
	api.Put("/preferences/:userId", cfg.Preferences.Update)
	api.Delete("/preferences/:userId", cfg.Preferences.Delete)

	return app
}
