package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jeichenberger88/golf-tracker/internal/api/handlers"
	"github.com/jeichenberger88/golf-tracker/internal/api/response"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	// WebSocket endpoint (no JSON content-type requirement)
	s.router.Get("/ws", s.wsHub.ServeWs)

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		var tees handlers.TeeResolver
		if s.catalog != nil {
			tees = s.catalog
		}
		roundHandler := handlers.NewRoundHandler(s.service, s.wsHub, tees)
		exportHandler := handlers.NewExportHandler(s.service)
		r.Route("/rounds", func(r chi.Router) {
			r.Get("/", roundHandler.ListRounds)
			r.Post("/", roundHandler.CreateRound)
			r.Get("/export", exportHandler.ExportRounds)
			r.Get("/{roundID}", roundHandler.GetRound)
		})

		statsHandler := handlers.NewStatsHandler(s.service)
		r.Route("/stats", func(r chi.Router) {
			r.Get("/", statsHandler.GetSummary)
			r.Get("/recommendations", statsHandler.GetRecommendations)
			r.Get("/chart", statsHandler.GetChart)
		})

		courseHandler := handlers.NewCourseHandler(s.catalog)
		r.Route("/courses", func(r chi.Router) {
			r.Get("/search", courseHandler.SearchCourses)
		})
	})
}

// healthCheck returns server health status.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "golf-tracker-api",
	})
}
