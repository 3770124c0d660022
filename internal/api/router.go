package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/westbrae/smartalarm-core/internal/webui"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Control panel UI (embedded via go:embed). The wildcard mount lets
	// the handler's index fallback cover every non-API path.
	r.Handle("/*", webui.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/time", s.handleGetTime)

		r.Route("/alarms", func(r chi.Router) {
			r.Get("/", s.handleListAlarms)
			r.Post("/", s.handleAddAlarm)
			r.Delete("/{position}", s.handleDeleteAlarm)
		})

		r.Get("/zones", s.handleListZones)
		r.Route("/zone", func(r chi.Router) {
			r.Get("/", s.handleGetZone)
			r.Post("/cycle", s.handleCycleZone)
		})

		r.Get(s.wsCfg.Path, s.handleWebSocket)
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
