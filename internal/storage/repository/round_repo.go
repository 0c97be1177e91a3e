// Package repository contains the data-access layer for recorded rounds.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// dateFormat is how round dates are stored; rounds carry no time
// component.
const dateFormat = "2006-01-02"

// RoundRepository provides methods for managing recorded rounds. The
// collection is append-only from the statistics engine's perspective,
// but the schema does not preclude future edit or delete support.
type RoundRepository interface {
	Create(ctx context.Context, round *models.Round) error
	GetByID(ctx context.Context, id int64) (*models.Round, error)
	// GetAll returns every round in insertion order, oldest first.
	GetAll(ctx context.Context) ([]*models.Round, error)
	// GetRecent returns the n most recently added rounds, oldest first.
	GetRecent(ctx context.Context, n int) ([]*models.Round, error)
	Count(ctx context.Context) (int, error)
}

type roundRepository struct {
	db *sql.DB
}

// NewRoundRepository creates a new round repository.
func NewRoundRepository(db *sql.DB) RoundRepository {
	return &roundRepository{db: db}
}

const roundColumns = `id, course, date, score, par, round_type, tees,
		course_id, course_rating, slope_rating, yardage,
		weather, temperature, wind, course_condition,
		fairways_hit, greens_in_regulation, putts, chips, bunker_shots,
		penalties, driving_distance, hole_scores, notes, created_at`

// Create inserts a round and assigns its ID.
func (r *roundRepository) Create(ctx context.Context, round *models.Round) error {
	holeScores, err := marshalHoleScores(round.HoleScores)
	if err != nil {
		return fmt.Errorf("failed to encode hole scores: %w", err)
	}

	if round.CreatedAt.IsZero() {
		round.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO rounds (
			course, date, score, par, round_type, tees,
			course_id, course_rating, slope_rating, yardage,
			weather, temperature, wind, course_condition,
			fairways_hit, greens_in_regulation, putts, chips, bunker_shots,
			penalties, driving_distance, hole_scores, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		round.Course,
		round.Date.Format(dateFormat),
		round.Score,
		round.Par,
		round.RoundType,
		round.Tees,
		round.CourseID,
		round.CourseRating,
		round.SlopeRating,
		round.Yardage,
		round.Weather,
		round.Temperature,
		round.Wind,
		round.CourseCondition,
		round.FairwaysHit,
		round.GreensInRegulation,
		round.Putts,
		round.Chips,
		round.BunkerShots,
		round.Penalties,
		round.DrivingDistance,
		holeScores,
		round.Notes,
		round.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	round.ID = id
	return nil
}

// GetByID retrieves a round by ID. Returns (nil, nil) when not found.
func (r *roundRepository) GetByID(ctx context.Context, id int64) (*models.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds WHERE id = ?`
	round, err := scanRound(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return round, nil
}

// GetAll retrieves every round in insertion order.
func (r *roundRepository) GetAll(ctx context.Context) ([]*models.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanRounds(rows)
}

// GetRecent retrieves the n most recently added rounds, oldest first.
func (r *roundRepository) GetRecent(ctx context.Context, n int) ([]*models.Round, error) {
	query := `
		SELECT * FROM (
			SELECT ` + roundColumns + ` FROM rounds ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanRounds(rows)
}

// Count returns the number of recorded rounds.
func (r *roundRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rounds`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// scanner abstracts sql.Row and sql.Rows for scanRound.
type scanner interface {
	Scan(dest ...any) error
}

func scanRound(row scanner) (*models.Round, error) {
	round := &models.Round{}
	var (
		date            string
		courseID        sql.NullString
		courseRating    sql.NullFloat64
		slopeRating     sql.NullInt64
		yardage         sql.NullInt64
		weather         sql.NullString
		temperature     sql.NullInt64
		wind            sql.NullString
		courseCondition sql.NullString
		fairwaysHit     sql.NullString
		gir             sql.NullString
		putts           sql.NullInt64
		chips           sql.NullInt64
		bunkerShots     sql.NullInt64
		penalties       sql.NullInt64
		drivingDistance sql.NullInt64
		holeScores      sql.NullString
	)

	err := row.Scan(
		&round.ID,
		&round.Course,
		&date,
		&round.Score,
		&round.Par,
		&round.RoundType,
		&round.Tees,
		&courseID,
		&courseRating,
		&slopeRating,
		&yardage,
		&weather,
		&temperature,
		&wind,
		&courseCondition,
		&fairwaysHit,
		&gir,
		&putts,
		&chips,
		&bunkerShots,
		&penalties,
		&drivingDistance,
		&holeScores,
		&round.Notes,
		&round.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	round.Date, err = time.Parse(dateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid round date %q: %w", date, err)
	}

	round.CourseID = nullString(courseID)
	round.CourseRating = nullFloat(courseRating)
	round.SlopeRating = nullInt(slopeRating)
	round.Yardage = nullInt(yardage)
	round.Weather = nullString(weather)
	round.Temperature = nullInt(temperature)
	round.Wind = nullString(wind)
	round.CourseCondition = nullString(courseCondition)
	round.FairwaysHit = nullString(fairwaysHit)
	round.GreensInRegulation = nullString(gir)
	round.Putts = nullInt(putts)
	round.Chips = nullInt(chips)
	round.BunkerShots = nullInt(bunkerShots)
	round.Penalties = nullInt(penalties)
	round.DrivingDistance = nullInt(drivingDistance)

	if holeScores.Valid && holeScores.String != "" {
		scores, err := unmarshalHoleScores(holeScores.String)
		if err != nil {
			return nil, fmt.Errorf("invalid hole scores for round %d: %w", round.ID, err)
		}
		round.HoleScores = scores
	}

	return round, nil
}

func scanRounds(rows *sql.Rows) ([]*models.Round, error) {
	var rounds []*models.Round
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	return rounds, rows.Err()
}

// marshalHoleScores encodes hole scores as a JSON array with null
// entries for unplayed holes. Returns nil for rounds without any.
func marshalHoleScores(scores []*int) (*string, error) {
	if len(scores) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

func unmarshalHoleScores(s string) ([]*int, error) {
	var scores []*int
	if err := json.Unmarshal([]byte(s), &scores); err != nil {
		return nil, err
	}
	if len(scores) != models.HolesPerRound {
		return nil, fmt.Errorf("expected %d hole entries, got %d", models.HolesPerRound, len(scores))
	}
	return scores, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
