package routes

import (
	"github.com/go-chi/chi/v5"

	"fullwoodjoz/visitus/internal/api"
	"fullwoodjoz/visitus/internal/metrics"
	"fullwoodjoz/visitus/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers. Kept separate
// from the main router setup.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies, handlers *api.Handlers) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// Public
		v1.Post("/auth/login", handlers.Login())
		v1.Post("/auth/logout", handlers.Logout())

		// Authenticated
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Sessions, []byte(deps.Cfg.JWTSecret), deps.Repo.Keys))

			authed.Post("/visits", handlers.SubmitVisit())
			authed.Get("/postal/{code}/cities", handlers.LookupCities())

			authed.Get("/datasets", handlers.ListDatasets())
			authed.Get("/datasets/{name}", handlers.GetDataset())
			authed.Get("/map", handlers.MapViewHandler())
			authed.Get("/analytics", handlers.Analytics())

			// Admin-only download and export surface
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Get("/admin/files", handlers.ListFiles())
				admin.Get("/admin/files/{name}", handlers.DownloadFile())
				admin.Get("/admin/export/xlsx", handlers.ExportXLSXHandler())
			})
		})
	})
}
