package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func floatp(v float64) *float64 { return &v }

func testRounds() []*models.Round {
	return []*models.Round{
		{
			ID:           1,
			Course:       "Chambers Bay",
			Date:         time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
			Score:        88,
			Par:          72,
			RoundType:    models.RoundType18,
			Tees:         models.TeesWhite,
			CourseRating: floatp(70.6),
			SlopeRating:  intp(129),
			Putts:        intp(34),
			FairwaysHit:  strp("7/14"),
			Notes:        "windy back nine",
		},
		{
			ID:        2,
			Course:    "Local Muni",
			Date:      time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC),
			Score:     44,
			Par:       36,
			RoundType: models.RoundType9,
			Tees:      models.TeesWhite,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatCSV, false},
		{"csv", FormatCSV, false},
		{"CSV", FormatCSV, false},
		{"json", FormatJSON, false},
		{" JSON ", FormatJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWriteRoundsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRounds(&buf, testRounds(), FormatCSV); err != nil {
		t.Fatalf("WriteRounds: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d CSV records, want header + 2 rows", len(records))
	}
	if len(records[0]) != len(csvHeader) {
		t.Errorf("header has %d columns, want %d", len(records[0]), len(csvHeader))
	}

	first := records[1]
	if first[1] != "2026-04-12" || first[2] != "Chambers Bay" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[7] != "16" {
		t.Errorf("score_to_par = %q, want 16", first[7])
	}
	if first[8] != "70.6" || first[9] != "129" {
		t.Errorf("rating/slope = %q/%q, want 70.6/129", first[8], first[9])
	}

	// Absent optional fields export as empty cells, not zeros.
	second := records[2]
	if second[8] != "" || second[17] != "" {
		t.Errorf("absent fields not empty: rating=%q putts=%q", second[8], second[17])
	}
}

func TestWriteRoundsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRounds(&buf, testRounds(), FormatJSON); err != nil {
		t.Fatalf("WriteRounds: %v", err)
	}

	var decoded []models.Round
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding JSON back: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d rounds, want 2", len(decoded))
	}
	if decoded[0].Course != "Chambers Bay" || decoded[1].RoundType != models.RoundType9 {
		t.Errorf("round fields lost in export: %+v", decoded)
	}

	// Absent fields must be omitted or null, never zero.
	if strings.Contains(buf.String(), `"putts":0`) {
		t.Error("absent putts exported as zero")
	}
}

func TestWriteRoundsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRounds(&buf, nil, FormatJSON); err != nil {
		t.Fatalf("WriteRounds: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty JSON export = %q, want []", buf.String())
	}

	buf.Reset()
	if err := WriteRounds(&buf, nil, FormatCSV); err != nil {
		t.Fatalf("WriteRounds: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("empty CSV export has %d records, want header only", len(records))
	}
}
