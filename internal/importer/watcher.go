// Package importer watches a directory for JSON round files and logs
// them through the storage service, so rounds exported elsewhere (or
// written by hand) can be dropped in without touching the API.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// Suffixes applied to files after an import attempt. Suffixed files
// are never picked up again.
const (
	importedSuffix = ".imported"
	failedSuffix   = ".failed"
)

// defaultSettle is how long the watcher waits after the last file
// event before sweeping, so half-written files are not picked up.
const defaultSettle = 500 * time.Millisecond

// RoundAdder is the subset of the storage service the importer needs.
type RoundAdder interface {
	AddRound(ctx context.Context, round *models.Round, useHoleByHole bool) error
}

// Watcher monitors a directory and imports any *.json round file that
// appears in it.
type Watcher struct {
	dir       string
	service   RoundAdder
	debounced func(func())
}

// New creates a watcher over dir. A non-positive settle delay falls
// back to defaultSettle.
func New(dir string, service RoundAdder, settle time.Duration) *Watcher {
	if settle <= 0 {
		settle = defaultSettle
	}
	return &Watcher{
		dir:       dir,
		service:   service,
		debounced: debounce.New(settle),
	}
}

// Run watches the directory until ctx is cancelled. Files already
// present at startup are imported immediately.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch import directory: %w", err)
	}

	log.Printf("Watching %s for round files", w.dir)
	w.Sweep(ctx)

	// Backup polling in case file events are missed.
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-watcher.Events:
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !isRoundFile(event.Name) {
				continue
			}
			w.debounced(func() { w.Sweep(ctx) })
		case err := <-watcher.Errors:
			log.Printf("File watcher error: %v", err)
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep imports every pending round file in the directory.
func (w *Watcher) Sweep(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		log.Printf("Reading import directory: %v", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !isRoundFile(entry.Name()) {
			continue
		}
		path := filepath.Join(w.dir, entry.Name())
		if err := w.importFile(ctx, path); err != nil {
			log.Printf("Import %s: %v", entry.Name(), err)
			w.markFile(path, failedSuffix)
			continue
		}
		w.markFile(path, importedSuffix)
	}
}

func isRoundFile(name string) bool {
	return strings.HasSuffix(name, ".json")
}

func (w *Watcher) markFile(path, suffix string) {
	if err := os.Rename(path, path+suffix); err != nil {
		log.Printf("Renaming %s: %v", path, err)
	}
}

// roundFile is the JSON shape of an importable round. A file holds
// either one round object or an array of them.
type roundFile struct {
	Course             string   `json:"course"`
	CourseID           *string  `json:"course_id"`
	Date               string   `json:"date"`
	Score              *int     `json:"score"`
	Par                int      `json:"par"`
	RoundType          string   `json:"round_type"`
	Tees               string   `json:"tees"`
	CourseRating       *float64 `json:"course_rating"`
	SlopeRating        *int     `json:"slope_rating"`
	Yardage            *int     `json:"yardage"`
	Weather            *string  `json:"weather"`
	Temperature        *int     `json:"temperature"`
	Wind               *string  `json:"wind"`
	CourseCondition    *string  `json:"course_condition"`
	FairwaysHit        *string  `json:"fairways_hit"`
	GreensInRegulation *string  `json:"greens_in_regulation"`
	Putts              *int     `json:"putts"`
	Chips              *int     `json:"chips"`
	BunkerShots        *int     `json:"bunker_shots"`
	Penalties          *int     `json:"penalties"`
	DrivingDistance    *int     `json:"driving_distance"`
	HoleScores         []*int   `json:"hole_scores"`
	Notes              string   `json:"notes"`
	UseHoleByHole      bool     `json:"use_hole_by_hole"`
}

func (f *roundFile) toRound() (*models.Round, error) {
	date, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		return nil, fmt.Errorf("date %q: must be YYYY-MM-DD", f.Date)
	}

	round := &models.Round{
		Course:             f.Course,
		CourseID:           f.CourseID,
		Date:               date,
		Par:                f.Par,
		RoundType:          f.RoundType,
		Tees:               f.Tees,
		CourseRating:       f.CourseRating,
		SlopeRating:        f.SlopeRating,
		Yardage:            f.Yardage,
		Weather:            f.Weather,
		Temperature:        f.Temperature,
		Wind:               f.Wind,
		CourseCondition:    f.CourseCondition,
		FairwaysHit:        f.FairwaysHit,
		GreensInRegulation: f.GreensInRegulation,
		Putts:              f.Putts,
		Chips:              f.Chips,
		BunkerShots:        f.BunkerShots,
		Penalties:          f.Penalties,
		DrivingDistance:    f.DrivingDistance,
		HoleScores:         f.HoleScores,
		Notes:              f.Notes,
	}
	if f.Score != nil {
		round.Score = *f.Score
	}
	return round, nil
}

func (w *Watcher) importFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	files, err := decodeRounds(data)
	if err != nil {
		return err
	}

	for i, f := range files {
		round, err := f.toRound()
		if err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
		if err := w.service.AddRound(ctx, round, f.UseHoleByHole); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	log.Printf("Imported %d round(s) from %s", len(files), filepath.Base(path))
	return nil
}

func decodeRounds(data []byte) ([]roundFile, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, errors.New("file is empty")
	}

	if strings.HasPrefix(trimmed, "[") {
		var files []roundFile
		if err := json.Unmarshal(data, &files); err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, errors.New("file holds no rounds")
		}
		return files, nil
	}

	var f roundFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return []roundFile{f}, nil
}
