package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeichenberger88/golf-tracker/internal/stats"
	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
	"github.com/jeichenberger88/golf-tracker/internal/storage/repository"
)

// ErrInvalidRound is returned when a submitted round is missing its
// required fields: course, date, and a resolvable score.
var ErrInvalidRound = errors.New("round is missing required fields")

// Service provides high-level operations for storing rounds and
// deriving statistics from them. The statistics and recommendation
// computations themselves are pure; the service only feeds them the
// current repository snapshot.
type Service struct {
	db     *DB
	rounds repository.RoundRepository
}

// NewService creates a new storage service.
func NewService(db *DB) *Service {
	return &Service{
		db:     db,
		rounds: NewRoundRepository(db),
	}
}

// NewRoundRepository exposes the round repository for callers that need
// direct access, such as tests.
func NewRoundRepository(db *DB) repository.RoundRepository {
	return repository.NewRoundRepository(db.Conn())
}

// AddRound validates and stores a round. When useHoleByHole is set the
// total score is resolved from the per-hole entries, which must be
// complete for the round's hole count and are stored padded to the full
// 18 slots. Defaults are applied for par, tees and round type when
// unset. Invalid submissions are rejected and nothing is appended.
func (s *Service) AddRound(ctx context.Context, round *models.Round, useHoleByHole bool) error {
	if round.Par == 0 {
		round.Par = 72
	}
	if round.RoundType == "" {
		round.RoundType = models.RoundType18
	}
	if round.Tees == "" {
		round.Tees = models.TeesWhite
	}

	if round.Course == "" || round.Date.IsZero() {
		return ErrInvalidRound
	}
	if round.RoundType != models.RoundType9 && round.RoundType != models.RoundType18 {
		return fmt.Errorf("%w: unknown round type %q", ErrInvalidRound, round.RoundType)
	}
	if !models.ValidTees(round.Tees) {
		return fmt.Errorf("%w: unknown tees %q", ErrInvalidRound, round.Tees)
	}

	// Optional condition fields follow the malformed-input policy:
	// unrecognized values are dropped, never rejected.
	if round.Weather != nil && !models.ValidWeather(*round.Weather) {
		round.Weather = nil
	}
	if round.Wind != nil && !models.ValidWind(*round.Wind) {
		round.Wind = nil
	}
	if round.CourseCondition != nil && !models.ValidCourseCondition(*round.CourseCondition) {
		round.CourseCondition = nil
	}

	if useHoleByHole {
		sum, ok := round.HoleScoreSum()
		if !ok {
			return fmt.Errorf("%w: incomplete hole-by-hole entry", ErrInvalidRound)
		}
		round.Score = sum
		normalizeHoleScores(round)
	} else {
		round.HoleScores = nil
	}
	if round.Score <= 0 {
		return ErrInvalidRound
	}

	if err := s.rounds.Create(ctx, round); err != nil {
		return fmt.Errorf("failed to store round: %w", err)
	}
	return nil
}

// normalizeHoleScores pads or trims the hole scores to exactly
// models.HolesPerRound entries, clearing slots past the round's hole
// count so nine-hole rounds never carry stray back-nine data. The
// caller has already verified the first Holes() entries are populated.
func normalizeHoleScores(round *models.Round) {
	scores := make([]*int, models.HolesPerRound)
	copy(scores, round.HoleScores[:round.Holes()])
	round.HoleScores = scores
}

// ListRounds returns every recorded round in insertion order.
func (s *Service) ListRounds(ctx context.Context) ([]*models.Round, error) {
	return s.rounds.GetAll(ctx)
}

// GetRound returns a round by ID, or nil when not found.
func (s *Service) GetRound(ctx context.Context, id int64) (*models.Round, error) {
	return s.rounds.GetByID(ctx, id)
}

// RecentRounds returns the n most recently added rounds, oldest first.
func (s *Service) RecentRounds(ctx context.Context, n int) ([]*models.Round, error) {
	return s.rounds.GetRecent(ctx, n)
}

// Summary recomputes the aggregate statistics surface from the current
// repository snapshot.
func (s *Service) Summary(ctx context.Context) (*models.Summary, error) {
	rounds, err := s.rounds.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}
	return stats.BuildSummary(rounds), nil
}

// Recommendations recomputes the prioritized recommendation list from
// the current repository snapshot.
func (s *Service) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	rounds, err := s.rounds.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}
	return stats.GenerateRecommendations(rounds), nil
}

// Close releases the service's resources, including its database
// connection.
func (s *Service) Close() error {
	return s.db.Close()
}
