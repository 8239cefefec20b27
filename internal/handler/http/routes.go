package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/apps", h.listApps)
			r.Post("/refresh", h.refreshAll)
			r.Get("/cache/stats", h.cacheStats)

			r.Get("/apps/{appID}/config", h.getConfiguration)
			r.Get("/apps/{appID}/config/{key}", h.getValue)
			r.Post("/apps/{appID}/resolve", h.resolveValues)
			r.Get("/apps/{appID}/fallback", h.getFallback)
			r.Post("/apps/{appID}/refresh", h.refreshApp)
			r.Get("/apps/{appID}/snapshots", h.listSnapshots)
			r.Get("/apps/{appID}/snapshots/latest", h.latestSnapshot)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
