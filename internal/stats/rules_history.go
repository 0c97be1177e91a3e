package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// Thresholds for the history-wide passes.
const (
	highSlope            = 135
	lowSlope             = 125
	slopeGapStrokes      = 5.0
	teeGapStrokes        = 3.0
	minRoundsPerTee      = 2
	familiarPlays        = 3
	familiarityGap       = 4.0
	nineSplitStrokes     = 3.0
	minHoleDataRounds    = 2
	formatGapPerHole     = 0.3
	minRoundsPerFormat   = 2
	maxTroubleHoleReport = 3
)

// TroubleHoleThreshold is the mean per-hole score above which a hole is
// flagged as a trouble hole. The value assumes mostly par-4 holes;
// override it when tracking a par-3 heavy rotation.
var TroubleHoleThreshold = 5.0

func analyzeCourseDifficulty(all []*models.Round) []models.Recommendation {
	var hard, easy []*models.Round
	for _, r := range all {
		if r.SlopeRating == nil {
			continue
		}
		switch {
		case *r.SlopeRating > highSlope:
			hard = append(hard, r)
		case *r.SlopeRating <= lowSlope:
			easy = append(easy, r)
		}
	}
	hardAvg, hardOK := meanScoreToPar(hard)
	easyAvg, easyOK := meanScoreToPar(easy)
	if !hardOK || !easyOK {
		return nil
	}
	gap := hardAvg - easyAvg
	if gap <= slopeGapStrokes {
		return nil
	}
	return []models.Recommendation{{
		Category:    "Course Selection",
		Title:       "Tough Courses Cost You Strokes",
		Description: fmt.Sprintf("You average %.1f more strokes over par on high-slope courses (slope above %d). Build a game plan before playing difficult layouts.", gap, highSlope),
		Priority:    models.PriorityMedium,
		ActionItems: []string{
			"Aim for the middle of greens on tough courses",
			"Favor position over distance off the tee",
			"Accept bogey on the hardest holes",
		},
	}}
}

func analyzeTeeSelection(all []*models.Round) []models.Recommendation {
	byTee := make(map[string][]*models.Round)
	for _, r := range all {
		byTee[r.Tees] = append(byTee[r.Tees], r)
	}

	bestTee, worstTee := "", ""
	bestAvg, worstAvg := 0.0, 0.0
	for tee, rounds := range byTee {
		if len(rounds) < minRoundsPerTee {
			continue
		}
		avg, _ := meanScoreToPar(rounds)
		if bestTee == "" || avg < bestAvg || (avg == bestAvg && tee < bestTee) {
			bestTee, bestAvg = tee, avg
		}
		if worstTee == "" || avg > worstAvg || (avg == worstAvg && tee < worstTee) {
			worstTee, worstAvg = tee, avg
		}
	}
	if bestTee == "" || bestTee == worstTee || worstAvg-bestAvg <= teeGapStrokes {
		return nil
	}
	return []models.Recommendation{{
		Category:    "Tee Selection",
		Title:       "Optimize Your Tee Choice",
		Description: fmt.Sprintf("You average %.1f fewer strokes over par from the %s tees than the %s tees. Play the tees that match your current game.", worstAvg-bestAvg, bestTee, worstTee),
		Priority:    models.PriorityMedium,
	}}
}

func analyzeCourseFamiliarity(all []*models.Round) []models.Recommendation {
	plays := make(map[string]int)
	for _, r := range all {
		plays[r.Course]++
	}
	var familiar, fresh []*models.Round
	for _, r := range all {
		switch {
		case plays[r.Course] >= familiarPlays:
			familiar = append(familiar, r)
		case plays[r.Course] == 1:
			fresh = append(fresh, r)
		}
	}
	familiarAvg, familiarOK := meanScoreToPar(familiar)
	freshAvg, freshOK := meanScoreToPar(fresh)
	if !familiarOK || !freshOK {
		return nil
	}
	gap := freshAvg - familiarAvg
	if gap <= familiarityGap {
		return nil
	}
	return []models.Recommendation{{
		Category:    "Course Knowledge",
		Title:       "New Courses Cost You Strokes",
		Description: fmt.Sprintf("You score %.1f strokes better on courses you have played %d or more times. Study new layouts before the first tee.", gap, familiarPlays),
		Priority:    models.PriorityMedium,
		ActionItems: []string{
			"Review the scorecard and yardages in advance",
			"Walk or ride a practice round when possible",
			"Note blind shots and forced carries",
		},
	}}
}

// holeRounds filters to rounds carrying a complete hole-by-hole record
// for their hole count.
func holeRounds(all []*models.Round) []*models.Round {
	var out []*models.Round
	for _, r := range all {
		if r.HasHoleScores() {
			out = append(out, r)
		}
	}
	return out
}

type holeAverage struct {
	hole int // 1-based
	mean float64
}

func analyzeTroubleHoles(all []*models.Round) []models.Recommendation {
	tracked := holeRounds(all)
	if len(tracked) < minHoleDataRounds {
		return nil
	}

	var trouble []holeAverage
	for hole := 0; hole < models.HolesPerRound; hole++ {
		sum, n := 0, 0
		for _, r := range tracked {
			if hole >= len(r.HoleScores) || r.HoleScores[hole] == nil {
				continue
			}
			sum += *r.HoleScores[hole]
			n++
		}
		if n == 0 {
			continue
		}
		mean := float64(sum) / float64(n)
		if mean > TroubleHoleThreshold {
			trouble = append(trouble, holeAverage{hole: hole + 1, mean: mean})
		}
	}
	if len(trouble) == 0 {
		return nil
	}

	// Worst first; cap the report at the top few.
	sort.SliceStable(trouble, func(i, j int) bool { return trouble[i].mean > trouble[j].mean })
	if len(trouble) > maxTroubleHoleReport {
		trouble = trouble[:maxTroubleHoleReport]
	}

	parts := make([]string, len(trouble))
	for i, h := range trouble {
		parts[i] = fmt.Sprintf("hole %d (avg %.1f)", h.hole, h.mean)
	}
	return []models.Recommendation{{
		Category:    "Hole Strategy",
		Title:       "Tame Your Trouble Holes",
		Description: fmt.Sprintf("Your toughest holes are %s. A few blow-up holes can undo an otherwise solid round.", strings.Join(parts, ", ")),
		Priority:    models.PriorityHigh,
		ActionItems: []string{
			"Club down to keep the ball in play on these holes",
			"Pick a conservative target off the tee",
			"Take your medicine instead of forcing a recovery",
		},
	}}
}

func analyzeNineSplit(all []*models.Round) []models.Recommendation {
	var eighteen []*models.Round
	for _, r := range holeRounds(all) {
		if r.Holes() == 18 {
			eighteen = append(eighteen, r)
		}
	}
	if len(eighteen) < minHoleDataRounds {
		return nil
	}

	frontSum, backSum := 0, 0
	for _, r := range eighteen {
		for i := 0; i < 9; i++ {
			frontSum += *r.HoleScores[i]
		}
		for i := 9; i < 18; i++ {
			backSum += *r.HoleScores[i]
		}
	}
	front := float64(frontSum) / float64(len(eighteen))
	back := float64(backSum) / float64(len(eighteen))
	gap := front - back
	weaker := "front"
	if gap < 0 {
		gap = -gap
		weaker = "back"
	}
	if gap <= nineSplitStrokes {
		return nil
	}
	return []models.Recommendation{{
		Category:    "Consistency",
		Title:       "Balance Your Nines",
		Description: fmt.Sprintf("You average %.1f more strokes on the %s nine. Look at how you warm up and how you finish.", gap, weaker),
		Priority:    models.PriorityMedium,
	}}
}

func analyzeFormatGap(all []*models.Round) []models.Recommendation {
	var nines, eighteens []*models.Round
	for _, r := range all {
		if r.RoundType == models.RoundType9 {
			nines = append(nines, r)
		} else {
			eighteens = append(eighteens, r)
		}
	}
	if len(nines) < minRoundsPerFormat || len(eighteens) < minRoundsPerFormat {
		return nil
	}

	perHole := func(rounds []*models.Round) float64 {
		sum := 0.0
		for _, r := range rounds {
			sum += float64(r.ScoreToPar()) / float64(r.Holes())
		}
		return sum / float64(len(rounds))
	}
	nineAvg := perHole(nines)
	eighteenAvg := perHole(eighteens)
	gap := nineAvg - eighteenAvg
	better := "18"
	if gap < 0 {
		gap = -gap
		better = "9"
	}
	if gap <= formatGapPerHole {
		return nil
	}
	return []models.Recommendation{{
		Category:    "Round Format",
		Title:       "Close the 9- vs 18-Hole Gap",
		Description: fmt.Sprintf("You play %.2f strokes per hole better in %s-hole rounds. Work on pacing and focus for the other format.", gap, better),
		Priority:    models.PriorityMedium,
	}}
}

func analyzeFormatVariety(all []*models.Round) []models.Recommendation {
	seen := make(map[string]bool)
	for _, r := range all {
		seen[r.RoundType] = true
	}
	if len(seen) != 1 {
		return nil
	}
	only := models.RoundType18
	if seen[models.RoundType9] {
		only = models.RoundType9
	}
	return []models.Recommendation{{
		Category:    "Round Format",
		Title:       "Mix Up Your Round Formats",
		Description: fmt.Sprintf("All of your recorded rounds are %s-hole rounds. Mixing formats builds both stamina and focus.", only),
		Priority:    models.PriorityLow,
	}}
}
