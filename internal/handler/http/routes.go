package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/perf-dashboard/models"
)

// Init builds the router. Access policy per route:
//
//	public         login, register-admin, version, metrics, /uploads/*
//	authenticated  me, change-password, dataset upload/list/delete/summary
//	admin          create-analyst, analysts list and delete
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// must be set before subrouters are mounted so they inherit it
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/api/version", h.getServerVersion)
	router.Method("GET", "/metrics", h.metrics.handler())
	router.Handle("/"+models.UploadsURLPrefix+"/*", h.uploads())

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/register-admin", h.registerAdmin)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/me", h.getSelf)
			r.Put("/me", h.updateSelf)
			r.Post("/change-password", h.changePassword)

			r.Post("/upload-csv", h.uploadDataset)
			r.Post("/upload-csv-folder", h.uploadDatasetFolder)
			r.Get("/csv-files", h.listDatasets)
			r.Delete("/csv/{id}", h.deleteDataset)
			r.Get("/csv/{id}/summary", h.summarizeDataset)

			r.Group(func(r chi.Router) {
				r.Use(h.requireRole(models.RoleAdmin))

				r.Post("/create-analyst", h.createAnalyst)
				r.Get("/analysts", h.listAnalysts)
				r.Delete("/analysts/{id}", h.deleteAnalyst)
			})
		})
	})

	return router
}
