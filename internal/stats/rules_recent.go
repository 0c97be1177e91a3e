package stats

import (
	"fmt"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// Thresholds for the recent-window passes. Heuristic constants, not
// derived values.
const (
	puttsWeakThreshold   = 33.0
	puttsStrongThreshold = 30.0
	fairwayWeakPct       = 50.0
	fairwayStrongPct     = 70.0
	girWeakPct           = 40.0
	penaltyThreshold     = 1.0
	windPenaltyStrokes   = 3.0
	trendDeltaStrokes    = 3
	minRoundsForTrend    = 3
)

func analyzePutting(recent []*models.Round) []models.Recommendation {
	avg, ok := meanIntField(recent, func(r *models.Round) *int { return r.Putts })
	if !ok {
		return nil
	}
	if avg > puttsWeakThreshold {
		return []models.Recommendation{{
			Category:    "Short Game",
			Title:       "Focus on Putting Practice",
			Description: fmt.Sprintf("Your recent putting average is %.1f putts per round. Tour average is 29-30. Spend 30%% of practice time on putting drills.", avg),
			Priority:    models.PriorityHigh,
			ActionItems: []string{
				"Practice 3-foot putts until 95% success rate",
				"Work on lag putting from 30+ feet",
				"Focus on green reading skills",
			},
		}}
	}
	if avg < puttsStrongThreshold {
		return []models.Recommendation{{
			Category:    "Strength Area",
			Title:       "Putting is Your Strength",
			Description: fmt.Sprintf("Excellent putting! Average of %.1f putts per round. Maintain this strength while working on other areas.", avg),
			Priority:    models.PriorityLow,
		}}
	}
	return nil
}

func analyzeDriving(recent []*models.Round) []models.Recommendation {
	pct := FairwayPercentage(recent)
	if pct > 0 && pct < fairwayWeakPct {
		return []models.Recommendation{{
			Category:    "Driving",
			Title:       "Improve Driving Accuracy",
			Description: fmt.Sprintf("Hitting %.0f%% of fairways. Focus on accuracy over distance. Aim for 60%%+ fairway accuracy.", pct),
			Priority:    models.PriorityHigh,
			ActionItems: []string{
				"Practice with alignment sticks",
				"Consider shorter, more controlled swings",
				"Work on setup and tempo",
			},
		}}
	}
	if pct > fairwayStrongPct {
		return []models.Recommendation{{
			Category:    "Strength Area",
			Title:       "Excellent Driving Accuracy",
			Description: fmt.Sprintf("Outstanding fairway accuracy at %.0f%%! Consider adding distance while maintaining accuracy.", pct),
			Priority:    models.PriorityLow,
		}}
	}
	return nil
}

func analyzeApproach(recent []*models.Round) []models.Recommendation {
	pct := GIRPercentage(recent)
	if pct > 0 && pct < girWeakPct {
		return []models.Recommendation{{
			Category:    "Iron Play",
			Title:       "Work on Approach Shots",
			Description: fmt.Sprintf("%.0f%% GIR rate needs improvement. Tour average is 60-65%%. Focus on iron accuracy and distance control.", pct),
			Priority:    models.PriorityHigh,
			ActionItems: []string{
				"Practice with targets at driving range",
				"Work on yardage precision",
				"Focus on club selection",
			},
		}}
	}
	return nil
}

func analyzePenalties(recent []*models.Round) []models.Recommendation {
	avg, ok := meanIntField(recent, func(r *models.Round) *int { return r.Penalties })
	if !ok || avg <= penaltyThreshold {
		return nil
	}
	return []models.Recommendation{{
		Category:    "Course Management",
		Title:       "Reduce Penalty Strokes",
		Description: fmt.Sprintf("Averaging %.1f penalties per round. Smart course management can save 2-3 strokes per round.", avg),
		Priority:    models.PriorityHigh,
		ActionItems: []string{
			"Play more conservatively off tees",
			"Avoid water hazards and OB",
			"Choose safer targets",
		},
	}}
}

func analyzeWind(recent []*models.Round) []models.Recommendation {
	var windy, calm []*models.Round
	for _, r := range recent {
		if r.Wind == nil {
			continue
		}
		switch *r.Wind {
		case models.WindStrong, models.WindModerate:
			windy = append(windy, r)
		case models.WindCalm, models.WindLight:
			calm = append(calm, r)
		}
	}
	windyAvg, windyOK := meanScore(windy)
	calmAvg, calmOK := meanScore(calm)
	if !windyOK || !calmOK {
		return nil
	}
	if windyAvg-calmAvg <= windPenaltyStrokes {
		return nil
	}
	return []models.Recommendation{{
		Category:    "Weather Adaptation",
		Title:       "Improve Wind Play",
		Description: fmt.Sprintf("You score %.0f strokes higher in wind. Practice wind management techniques.", windyAvg-calmAvg),
		Priority:    models.PriorityMedium,
		ActionItems: []string{
			"Practice lower ball flights",
			"Club up and swing easier",
			"Focus on balance and tempo",
		},
	}}
}

func analyzeTrend(recent []*models.Round) []models.Recommendation {
	if len(recent) < minRoundsForTrend {
		return nil
	}
	delta := recent[len(recent)-1].Score - recent[0].Score
	if delta > trendDeltaStrokes {
		return []models.Recommendation{{
			Category:    "Performance Trend",
			Title:       "Scores Trending Up",
			Description: "Recent rounds show score increase. Consider lessons or focused practice to address fundamentals.",
			Priority:    models.PriorityMedium,
		}}
	}
	if delta < -trendDeltaStrokes {
		return []models.Recommendation{{
			Category:    "Performance Trend",
			Title:       "Great Improvement!",
			Description: "Scores are trending down - keep up the excellent work! Your practice is paying off.",
			Priority:    models.PriorityLow,
		}}
	}
	return nil
}
