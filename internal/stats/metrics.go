// Package stats computes aggregate performance metrics and coaching
// recommendations from recorded golf rounds. Every function is pure:
// calling it twice with the same rounds yields identical output.
package stats

import (
	"math"
	"strconv"
	"strings"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// parseRatio parses a "hit/attempts" value such as "8/14". Values
// without a separator or with non-numeric parts are reported as
// invalid so callers exclude them from aggregates.
func parseRatio(s string) (hit, attempts int, ok bool) {
	left, right, found := strings.Cut(s, "/")
	if !found {
		return 0, 0, false
	}
	hit, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil || hit < 0 {
		return 0, 0, false
	}
	attempts, err = strconv.Atoi(strings.TrimSpace(right))
	if err != nil || attempts < 0 {
		return 0, 0, false
	}
	return hit, attempts, true
}

// HandicapEstimate estimates a handicap from score differentials.
// Nine-hole differentials are doubled to approximate an 18-hole
// equivalent. The average differential is scaled by 0.96, rounded to
// the nearest integer and clamped at zero. Returns 0 for no rounds.
//
// This is a rough estimate, not a governing-body handicap index.
func HandicapEstimate(rounds []*models.Round) int {
	if len(rounds) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rounds {
		diff := r.ScoreToPar()
		if r.RoundType == models.RoundType9 {
			diff *= 2
		}
		sum += diff
	}
	avg := float64(sum) / float64(len(rounds))
	estimate := int(math.Round(avg * 0.96))
	if estimate < 0 {
		return 0
	}
	return estimate
}

// FairwayPercentage returns the percentage of fairways hit across
// rounds with a well-formed fairways value, or 0 when none qualify.
func FairwayPercentage(rounds []*models.Round) float64 {
	return ratioPercentage(rounds, func(r *models.Round) *string { return r.FairwaysHit })
}

// GIRPercentage returns the percentage of greens hit in regulation
// across rounds with a well-formed GIR value, or 0 when none qualify.
func GIRPercentage(rounds []*models.Round) float64 {
	return ratioPercentage(rounds, func(r *models.Round) *string { return r.GreensInRegulation })
}

// ratioPercentage sums numerators and denominators independently over
// the rounds whose ratio field parses, then returns 100*hit/attempts.
// Malformed values are excluded, never an error.
func ratioPercentage(rounds []*models.Round, field func(*models.Round) *string) float64 {
	totalHit, totalAttempts := 0, 0
	for _, r := range rounds {
		v := field(r)
		if v == nil {
			continue
		}
		hit, attempts, ok := parseRatio(*v)
		if !ok {
			continue
		}
		totalHit += hit
		totalAttempts += attempts
	}
	if totalAttempts == 0 {
		return 0
	}
	return float64(totalHit) / float64(totalAttempts) * 100
}

// BestScore returns the lowest recorded score. ok is false when no
// rounds are recorded.
func BestScore(rounds []*models.Round) (best int, ok bool) {
	for _, r := range rounds {
		if !ok || r.Score < best {
			best = r.Score
			ok = true
		}
	}
	return best, ok
}

// AveragePutts returns the mean putts over rounds where putts were
// recorded. ok is false when no round carries a putt count.
func AveragePutts(rounds []*models.Round) (avg float64, ok bool) {
	sum, n := 0, 0
	for _, r := range rounds {
		if r.Putts == nil {
			continue
		}
		sum += *r.Putts
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// BuildSummary computes the statistics surface shown by the display
// layer. Pointer fields stay nil when no round carries the underlying
// value, so the caller can render a "–" marker instead of a zero.
func BuildSummary(rounds []*models.Round) *models.Summary {
	s := &models.Summary{
		TotalRounds:      len(rounds),
		HandicapEstimate: HandicapEstimate(rounds),
	}
	for _, r := range rounds {
		if r.RoundType == models.RoundType9 {
			s.NineHoleRounds++
		} else {
			s.EighteenRounds++
		}
	}
	if best, ok := BestScore(rounds); ok {
		s.BestScore = &best
	}
	if avg, ok := AveragePutts(rounds); ok {
		// One decimal place, matching the stat card display.
		rounded := math.Round(avg*10) / 10
		s.AveragePutts = &rounded
	}
	if pct := FairwayPercentage(rounds); hasRatio(rounds, func(r *models.Round) *string { return r.FairwaysHit }) {
		s.FairwayPct = &pct
	}
	if pct := GIRPercentage(rounds); hasRatio(rounds, func(r *models.Round) *string { return r.GreensInRegulation }) {
		s.GIRPct = &pct
	}
	return s
}

func hasRatio(rounds []*models.Round, field func(*models.Round) *string) bool {
	for _, r := range rounds {
		if v := field(r); v != nil {
			if _, _, ok := parseRatio(*v); ok {
				return true
			}
		}
	}
	return false
}
