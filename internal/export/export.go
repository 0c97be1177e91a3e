// Package export writes logged rounds to CSV or JSON for use in
// spreadsheets and other tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// Format represents the export format.
type Format string

const (
	// FormatCSV represents CSV export format.
	FormatCSV Format = "csv"
	// FormatJSON represents JSON export format.
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied format name to a Format. An empty
// name defaults to CSV.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", name)
	}
}

// WriteRounds writes rounds to w in the given format.
func WriteRounds(w io.Writer, rounds []*models.Round, format Format) error {
	switch format {
	case FormatCSV:
		return writeRoundsCSV(w, rounds)
	case FormatJSON:
		return writeRoundsJSON(w, rounds)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func writeRoundsJSON(w io.Writer, rounds []*models.Round) error {
	if rounds == nil {
		rounds = []*models.Round{}
	}
	output, err := json.MarshalIndent(rounds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := w.Write(output); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"id", "date", "course", "round_type", "tees", "score", "par",
	"score_to_par", "course_rating", "slope_rating", "yardage",
	"weather", "temperature", "wind", "course_condition",
	"fairways_hit", "greens_in_regulation", "putts", "chips",
	"bunker_shots", "penalties", "driving_distance", "notes",
}

func writeRoundsCSV(w io.Writer, rounds []*models.Round) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, round := range rounds {
		row := []string{
			strconv.FormatInt(round.ID, 10),
			round.Date.Format("2006-01-02"),
			round.Course,
			round.RoundType,
			round.Tees,
			strconv.Itoa(round.Score),
			strconv.Itoa(round.Par),
			strconv.Itoa(round.ScoreToPar()),
			formatFloatPtr(round.CourseRating),
			formatIntPtr(round.SlopeRating),
			formatIntPtr(round.Yardage),
			formatStringPtr(round.Weather),
			formatIntPtr(round.Temperature),
			formatStringPtr(round.Wind),
			formatStringPtr(round.CourseCondition),
			formatStringPtr(round.FairwaysHit),
			formatStringPtr(round.GreensInRegulation),
			formatIntPtr(round.Putts),
			formatIntPtr(round.Chips),
			formatIntPtr(round.BunkerShots),
			formatIntPtr(round.Penalties),
			formatIntPtr(round.DrivingDistance),
			round.Notes,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 1, 64)
}

func formatIntPtr(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func formatStringPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
