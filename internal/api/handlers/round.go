// Package handlers implements the HTTP handlers for the REST API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jeichenberger88/golf-tracker/internal/api/response"
	"github.com/jeichenberger88/golf-tracker/internal/api/websocket"
	"github.com/jeichenberger88/golf-tracker/internal/storage"
	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// RoundService is the subset of the storage service used by round
// handlers.
type RoundService interface {
	AddRound(ctx context.Context, round *models.Round, useHoleByHole bool) error
	ListRounds(ctx context.Context) ([]*models.Round, error)
	GetRound(ctx context.Context, id int64) (*models.Round, error)
	RecentRounds(ctx context.Context, n int) ([]*models.Round, error)
}

// Broadcaster pushes events to connected WebSocket clients.
type Broadcaster interface {
	BroadcastEvent(event websocket.Event) bool
}

// TeeResolver resolves tee-level reference data for a catalog course.
type TeeResolver interface {
	Lookup(ctx context.Context, courseID, teeName string) (models.TeeInfo, bool)
}

// RoundHandler handles round-related API requests.
type RoundHandler struct {
	service RoundService
	events  Broadcaster
	tees    TeeResolver
}

// NewRoundHandler creates a new RoundHandler. events and tees may be
// nil when no WebSocket hub or course catalog is available.
func NewRoundHandler(service RoundService, events Broadcaster, tees TeeResolver) *RoundHandler {
	return &RoundHandler{service: service, events: events, tees: tees}
}

// CreateRoundRequest represents the JSON request body for logging a
// round. Optional fields stay nil when the client omits them.
type CreateRoundRequest struct {
	Course             string   `json:"course"`
	CourseID           *string  `json:"course_id,omitempty"`
	Date               string   `json:"date"`
	Score              *int     `json:"score,omitempty"`
	Par                int      `json:"par,omitempty"`
	RoundType          string   `json:"round_type,omitempty"`
	Tees               string   `json:"tees,omitempty"`
	CourseRating       *float64 `json:"course_rating,omitempty"`
	SlopeRating        *int     `json:"slope_rating,omitempty"`
	Yardage            *int     `json:"yardage,omitempty"`
	Weather            *string  `json:"weather,omitempty"`
	Temperature        *int     `json:"temperature,omitempty"`
	Wind               *string  `json:"wind,omitempty"`
	CourseCondition    *string  `json:"course_condition,omitempty"`
	FairwaysHit        *string  `json:"fairways_hit,omitempty"`
	GreensInRegulation *string  `json:"greens_in_regulation,omitempty"`
	Putts              *int     `json:"putts,omitempty"`
	Chips              *int     `json:"chips,omitempty"`
	BunkerShots        *int     `json:"bunker_shots,omitempty"`
	Penalties          *int     `json:"penalties,omitempty"`
	DrivingDistance    *int     `json:"driving_distance,omitempty"`
	HoleScores         []*int   `json:"hole_scores,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	UseHoleByHole      bool     `json:"use_hole_by_hole,omitempty"`
}

// ToRound converts the request to a Round model.
func (req *CreateRoundRequest) ToRound() (*models.Round, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}

	round := &models.Round{
		Course:             req.Course,
		CourseID:           req.CourseID,
		Date:               date,
		Par:                req.Par,
		RoundType:          req.RoundType,
		Tees:               req.Tees,
		CourseRating:       req.CourseRating,
		SlopeRating:        req.SlopeRating,
		Yardage:            req.Yardage,
		Weather:            req.Weather,
		Temperature:        req.Temperature,
		Wind:               req.Wind,
		CourseCondition:    req.CourseCondition,
		FairwaysHit:        req.FairwaysHit,
		GreensInRegulation: req.GreensInRegulation,
		Putts:              req.Putts,
		Chips:              req.Chips,
		BunkerShots:        req.BunkerShots,
		Penalties:          req.Penalties,
		DrivingDistance:    req.DrivingDistance,
		HoleScores:         req.HoleScores,
		Notes:              req.Notes,
	}
	if req.Score != nil {
		round.Score = *req.Score
	}
	return round, nil
}

// CreateRound logs a new round.
func (h *RoundHandler) CreateRound(w http.ResponseWriter, r *http.Request) {
	var req CreateRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}

	round, err := req.ToRound()
	if err != nil {
		response.BadRequest(w, err)
		return
	}

	h.fillCourseReference(r.Context(), round)

	if err := h.service.AddRound(r.Context(), round, req.UseHoleByHole); err != nil {
		if errors.Is(err, storage.ErrInvalidRound) {
			response.BadRequest(w, err)
			return
		}
		response.InternalError(w, err)
		return
	}

	if h.events != nil {
		h.events.BroadcastEvent(websocket.Event{Type: websocket.EventRoundCreated, Data: round})
		h.events.BroadcastEvent(websocket.Event{Type: websocket.EventStatsUpdated})
	}

	response.Created(w, round)
}

// fillCourseReference pre-fills rating, slope and yardage from the
// course catalog when the round references a catalog course and the
// client did not send them.
func (h *RoundHandler) fillCourseReference(ctx context.Context, round *models.Round) {
	if h.tees == nil || round.CourseID == nil {
		return
	}
	if round.CourseRating != nil || round.SlopeRating != nil || round.Yardage != nil {
		return
	}
	tees := round.Tees
	if tees == "" {
		tees = models.TeesWhite
	}
	info, ok := h.tees.Lookup(ctx, *round.CourseID, tees)
	if !ok {
		return
	}
	round.CourseRating = &info.Rating
	round.SlopeRating = &info.Slope
	round.Yardage = &info.Yardage
}

// ListRounds returns all rounds, oldest first. With ?recent=N only the
// last N rounds are returned.
func (h *RoundHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	var (
		rounds []*models.Round
		err    error
	)
	if recent := r.URL.Query().Get("recent"); recent != "" {
		n, convErr := strconv.Atoi(recent)
		if convErr != nil || n < 1 {
			response.BadRequest(w, errors.New("recent must be a positive integer"))
			return
		}
		rounds, err = h.service.RecentRounds(r.Context(), n)
	} else {
		rounds, err = h.service.ListRounds(r.Context())
	}
	if err != nil {
		response.InternalError(w, err)
		return
	}

	// Return empty array instead of nil
	if rounds == nil {
		rounds = []*models.Round{}
	}

	response.Success(w, rounds)
}

// GetRound returns a single round by ID.
func (h *RoundHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "roundID"), 10, 64)
	if err != nil {
		response.BadRequest(w, errors.New("round ID must be an integer"))
		return
	}

	round, err := h.service.GetRound(r.Context(), id)
	if err != nil {
		response.InternalError(w, err)
		return
	}
	if round == nil {
		response.NotFound(w, errors.New("round not found"))
		return
	}

	response.Success(w, round)
}
