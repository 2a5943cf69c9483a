package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"fullwoodjoz/visitus/internal/api"
	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/db"
	"fullwoodjoz/visitus/internal/logging"
	"fullwoodjoz/visitus/internal/metrics"
	"fullwoodjoz/visitus/internal/middleware"
	"fullwoodjoz/visitus/internal/workers"
)

func RegisterRoutes(cfg *config.Config, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	logging.Info("Router initialized")

	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	handlers := api.NewHandlers(deps)

	r.Get("/healthCheck", api.HealthCheckHandler(db.OrmDB, upSince))

	RegisterAPIRoutes(r, metricsReg, deps, handlers)

	// Preload dataset snapshots so the first dashboard hit is warm.
	workers.WarmDatasetCache(deps.Tenants, deps.Services.Datasets)

	return r
}
