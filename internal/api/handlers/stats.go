package handlers

import (
	"context"
	"net/http"

	"github.com/jeichenberger88/golf-tracker/internal/api/response"
	"github.com/jeichenberger88/golf-tracker/internal/charts"
	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// StatsService is the subset of the storage service used by stats
// handlers.
type StatsService interface {
	Summary(ctx context.Context) (*models.Summary, error)
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
	ListRounds(ctx context.Context) ([]*models.Round, error)
}

// StatsHandler handles statistics and recommendation API requests.
type StatsHandler struct {
	service StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetSummary returns the aggregate stats over all logged rounds.
func (h *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		response.InternalError(w, err)
		return
	}
	response.Success(w, summary)
}

// GetRecommendations returns practice recommendations derived from the
// logged rounds.
func (h *StatsHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.Recommendations(r.Context())
	if err != nil {
		response.InternalError(w, err)
		return
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}
	response.Success(w, recs)
}

// GetChart renders the score trend chart as a standalone HTML page.
func (h *StatsHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.service.ListRounds(r.Context())
	if err != nil {
		response.InternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderScoreTrend(w, rounds, charts.DefaultConfig()); err != nil {
		response.InternalError(w, err)
	}
}
