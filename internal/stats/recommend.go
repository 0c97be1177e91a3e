package stats

import (
	"sort"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// recentWindow is the number of most recent rounds the short-term
// analysis passes look at. History-wide passes need larger samples and
// deliberately ignore it.
const recentWindow = 5

// minRoundsForAnalysis is the hard floor below which no analysis runs:
// every comparative pass needs at least a small sample to avoid
// meaningless deltas.
const minRoundsForAnalysis = 2

// GenerateRecommendations derives a prioritized list of coaching
// recommendations from the recorded rounds, oldest first. Each analysis
// pass runs independently over either the recent window or the full
// history; their outputs are concatenated and stably sorted by
// priority, so equal-priority items keep pass order. The result is
// never empty for a non-empty input: with fewer than two rounds a
// single getting-started item is returned, and when no pass fires a
// single generic fallback is.
func GenerateRecommendations(rounds []*models.Round) []models.Recommendation {
	if len(rounds) < minRoundsForAnalysis {
		return []models.Recommendation{{
			Category:    "Getting Started",
			Title:       "Track More Rounds",
			Description: "Add a few more rounds to unlock personalized insights and recommendations.",
			Priority:    models.PriorityHigh,
		}}
	}

	recent := rounds
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	var recs []models.Recommendation
	recs = append(recs, analyzePutting(recent)...)
	recs = append(recs, analyzeDriving(recent)...)
	recs = append(recs, analyzeApproach(recent)...)
	recs = append(recs, analyzePenalties(recent)...)
	recs = append(recs, analyzeWind(recent)...)
	recs = append(recs, analyzeTrend(recent)...)
	recs = append(recs, analyzeCourseDifficulty(rounds)...)
	recs = append(recs, analyzeTeeSelection(rounds)...)
	recs = append(recs, analyzeCourseFamiliarity(rounds)...)
	recs = append(recs, analyzeTroubleHoles(rounds)...)
	recs = append(recs, analyzeNineSplit(rounds)...)
	recs = append(recs, analyzeFormatGap(rounds)...)
	recs = append(recs, analyzeFormatVariety(rounds)...)

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			Category:    "General",
			Title:       "Consistent Performance",
			Description: "Your game is well-balanced! Focus on maintaining consistency and small improvements across all areas.",
			Priority:    models.PriorityLow,
			ActionItems: []string{
				"Continue current practice routine",
				"Set specific improvement goals",
				"Track progress over time",
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return models.PriorityWeight(recs[i].Priority) > models.PriorityWeight(recs[j].Priority)
	})
	return recs
}

// meanScore returns the mean total score. ok is false for an empty set.
func meanScore(rounds []*models.Round) (float64, bool) {
	if len(rounds) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range rounds {
		sum += r.Score
	}
	return float64(sum) / float64(len(rounds)), true
}

// meanScoreToPar returns the mean score relative to par. ok is false
// for an empty set.
func meanScoreToPar(rounds []*models.Round) (float64, bool) {
	if len(rounds) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range rounds {
		sum += r.ScoreToPar()
	}
	return float64(sum) / float64(len(rounds)), true
}

// meanIntField returns the mean of an optional per-round integer over
// the rounds where it was recorded. ok is false when none carry it.
func meanIntField(rounds []*models.Round, field func(*models.Round) *int) (float64, bool) {
	sum, n := 0, 0
	for _, r := range rounds {
		v := field(r)
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
