package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
	_ "modernc.org/sqlite"
)

func setupRoundTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			course TEXT NOT NULL,
			date TEXT NOT NULL,
			score INTEGER NOT NULL,
			par INTEGER NOT NULL DEFAULT 72,
			round_type TEXT NOT NULL DEFAULT '18',
			tees TEXT NOT NULL DEFAULT 'white',
			course_id TEXT,
			course_rating REAL,
			slope_rating INTEGER,
			yardage INTEGER,
			weather TEXT,
			temperature INTEGER,
			wind TEXT,
			course_condition TEXT,
			fairways_hit TEXT,
			greens_in_regulation TEXT,
			putts INTEGER,
			chips INTEGER,
			bunker_shots INTEGER,
			penalties INTEGER,
			driving_distance INTEGER,
			hole_scores TEXT,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}

	return db
}

func intp(v int) *int { return &v }

func strp(s string) *string { return &s }

func floatp(v float64) *float64 { return &v }

func testRound(course string, score int) *models.Round {
	return &models.Round{
		Course:    course,
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		Score:     score,
		Par:       72,
		RoundType: models.RoundType18,
		Tees:      models.TeesWhite,
	}
}

func TestRoundRepository_Create(t *testing.T) {
	db := setupRoundTestDB(t)
	repo := NewRoundRepository(db)
	ctx := context.Background()

	round := testRound("Pebble Creek", 85)
	if err := repo.Create(ctx, round); err != nil {
		t.Fatalf("Failed to create round: %v", err)
	}
	if round.ID == 0 {
		t.Error("Expected round ID to be set after creation")
	}
}

func TestRoundRepository_RoundTrip(t *testing.T) {
	db := setupRoundTestDB(t)
	repo := NewRoundRepository(db)
	ctx := context.Background()

	holeScores := make([]*int, models.HolesPerRound)
	total := 0
	for i := 0; i < 18; i++ {
		holeScores[i] = intp(4 + i%3)
		total += 4 + i%3
	}

	round := testRound("Pebble Creek", total)
	round.CourseID = strp("pc-001")
	round.CourseRating = floatp(71.3)
	round.SlopeRating = intp(128)
	round.Yardage = intp(6412)
	round.Weather = strp("sunny")
	round.Temperature = intp(74)
	round.Wind = strp(models.WindLight)
	round.CourseCondition = strp("good")
	round.FairwaysHit = strp("8/14")
	round.GreensInRegulation = strp("10/18")
	round.Putts = intp(31)
	round.Chips = intp(4)
	round.BunkerShots = intp(2)
	round.Penalties = intp(1)
	round.DrivingDistance = intp(245)
	round.HoleScores = holeScores
	round.Notes = "Solid ball striking"

	if err := repo.Create(ctx, round); err != nil {
		t.Fatalf("Failed to create round: %v", err)
	}

	got, err := repo.GetByID(ctx, round.ID)
	if err != nil {
		t.Fatalf("Failed to get round: %v", err)
	}
	if got == nil {
		t.Fatal("Expected round, got nil")
	}

	if got.Course != round.Course || !got.Date.Equal(round.Date) || got.Score != round.Score {
		t.Errorf("required fields mismatch: got %s/%s/%d", got.Course, got.Date, got.Score)
	}
	if got.CourseID == nil || *got.CourseID != "pc-001" {
		t.Errorf("CourseID = %v, want pc-001", got.CourseID)
	}
	if got.CourseRating == nil || *got.CourseRating != 71.3 {
		t.Errorf("CourseRating = %v, want 71.3", got.CourseRating)
	}
	if got.SlopeRating == nil || *got.SlopeRating != 128 {
		t.Errorf("SlopeRating = %v, want 128", got.SlopeRating)
	}
	if got.FairwaysHit == nil || *got.FairwaysHit != "8/14" {
		t.Errorf("FairwaysHit = %v, want 8/14", got.FairwaysHit)
	}
	if got.Putts == nil || *got.Putts != 31 {
		t.Errorf("Putts = %v, want 31", got.Putts)
	}
	if got.Notes != "Solid ball striking" {
		t.Errorf("Notes = %q", got.Notes)
	}

	if len(got.HoleScores) != models.HolesPerRound {
		t.Fatalf("HoleScores length = %d, want %d", len(got.HoleScores), models.HolesPerRound)
	}
	sum, ok := got.HoleScoreSum()
	if !ok || sum != round.Score {
		t.Errorf("hole score sum = %d, %v, want %d, true", sum, ok, round.Score)
	}
}

func TestRoundRepository_AbsentFieldsStayAbsent(t *testing.T) {
	db := setupRoundTestDB(t)
	repo := NewRoundRepository(db)
	ctx := context.Background()

	round := testRound("Bare Minimum GC", 90)
	if err := repo.Create(ctx, round); err != nil {
		t.Fatalf("Failed to create round: %v", err)
	}

	got, err := repo.GetByID(ctx, round.ID)
	if err != nil {
		t.Fatalf("Failed to get round: %v", err)
	}
	if got.Putts != nil || got.Penalties != nil || got.FairwaysHit != nil || got.Weather != nil {
		t.Error("optional fields should round-trip as absent, not zero")
	}
	if got.HoleScores != nil {
		t.Errorf("HoleScores = %v, want nil", got.HoleScores)
	}
}

func TestRoundRepository_GetByIDNotFound(t *testing.T) {
	db := setupRoundTestDB(t)
	repo := NewRoundRepository(db)

	got, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing round, got %+v", got)
	}
}

func TestRoundRepository_InsertionOrder(t *testing.T) {
	db := setupRoundTestDB(t)
	repo := NewRoundRepository(db)
	ctx := context.Background()

	for i, course := range []string{"First", "Second", "Third", "Fourth"} {
		if err := repo.Create(ctx, testRound(course, 80+i)); err != nil {
			t.Fatalf("Failed to create round: %v", err)
		}
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get rounds: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d rounds, want 4", len(all))
	}
	for i, want := range []string{"First", "Second", "Third", "Fourth"} {
		if all[i].Course != want {
			t.Errorf("all[%d].Course = %s, want %s", i, all[i].Course, want)
		}
	}

	recent, err := repo.GetRecent(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get recent rounds: %v", err)
	}
	if len(recent) != 2 || recent[0].Course != "Third" || recent[1].Course != "Fourth" {
		t.Errorf("GetRecent(2) = %v, want [Third Fourth]", courseNames(recent))
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count rounds: %v", err)
	}
	if count != 4 {
		t.Errorf("Count() = %d, want 4", count)
	}
}

func courseNames(rounds []*models.Round) []string {
	names := make([]string, len(rounds))
	for i, r := range rounds {
		names[i] = r.Course
	}
	return names
}
