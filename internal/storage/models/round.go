package models

import "time"

// Round types distinguish 9-hole from full 18-hole outings.
const (
	RoundType9  = "9"
	RoundType18 = "18"
)

// HolesPerRound is the number of hole slots carried by every round.
// Nine-hole rounds populate only the front nine.
const HolesPerRound = 18

// Tee colors offered by the entry form.
const (
	TeesBlack = "black"
	TeesBlue  = "blue"
	TeesWhite = "white"
	TeesRed   = "red"
	TeesGold  = "gold"
)

// Wind conditions recorded with a round.
const (
	WindCalm     = "calm"
	WindLight    = "light"
	WindModerate = "moderate"
	WindStrong   = "strong"
)

// ValidTees reports whether name is one of the supported tee colors.
func ValidTees(name string) bool {
	switch name {
	case TeesBlack, TeesBlue, TeesWhite, TeesRed, TeesGold:
		return true
	}
	return false
}

// ValidWeather reports whether w is one of the supported weather values.
func ValidWeather(w string) bool {
	switch w {
	case "sunny", "cloudy", "overcast", "light-rain", "rain", "windy":
		return true
	}
	return false
}

// ValidWind reports whether w is one of the supported wind values.
func ValidWind(w string) bool {
	switch w {
	case WindCalm, WindLight, WindModerate, WindStrong:
		return true
	}
	return false
}

// ValidCourseCondition reports whether c is one of the supported
// course-condition values.
func ValidCourseCondition(c string) bool {
	switch c {
	case "excellent", "good", "fair", "poor":
		return true
	}
	return false
}

// Round represents one recorded round of golf.
//
// Optional fields are pointer-typed so that "not recorded" stays
// distinguishable from a recorded zero through storage and every
// aggregate computation. FairwaysHit and GreensInRegulation keep the
// "hit/attempts" form they are entered in (e.g. "8/14"); malformed
// values are excluded from aggregates rather than rejected.
type Round struct {
	ID        int64     `json:"id"`
	Course    string    `json:"course"`
	Date      time.Time `json:"date"` // calendar date, no time component
	Score     int       `json:"score"`
	Par       int       `json:"par"`
	RoundType string    `json:"round_type"` // "9" or "18"
	Tees      string    `json:"tees"`

	// Course-reference fields, populated when a catalog course was selected.
	CourseID     *string  `json:"course_id,omitempty"`
	CourseRating *float64 `json:"course_rating,omitempty"`
	SlopeRating  *int     `json:"slope_rating,omitempty"`
	Yardage      *int     `json:"yardage,omitempty"`

	// Environmental fields.
	Weather         *string `json:"weather,omitempty"`
	Temperature     *int    `json:"temperature,omitempty"` // °F
	Wind            *string `json:"wind,omitempty"`
	CourseCondition *string `json:"course_condition,omitempty"`

	// Performance fields.
	FairwaysHit        *string `json:"fairways_hit,omitempty"`
	GreensInRegulation *string `json:"greens_in_regulation,omitempty"`
	Putts              *int    `json:"putts,omitempty"`
	Chips              *int    `json:"chips,omitempty"`
	BunkerShots        *int    `json:"bunker_shots,omitempty"`
	Penalties          *int    `json:"penalties,omitempty"`
	DrivingDistance    *int    `json:"driving_distance,omitempty"` // yards

	// HoleScores holds per-hole strokes when the round was entered
	// hole by hole. Always HolesPerRound entries; unplayed holes are nil.
	HoleScores []*int `json:"hole_scores,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Holes returns the number of holes the round covers.
func (r *Round) Holes() int {
	if r.RoundType == RoundType9 {
		return 9
	}
	return 18
}

// ScoreToPar returns the round's score relative to par.
func (r *Round) ScoreToPar() int {
	return r.Score - r.Par
}

// HoleScoreSum returns the sum of the populated hole scores for the
// round's hole count and whether every relevant hole is populated.
func (r *Round) HoleScoreSum() (int, bool) {
	holes := r.Holes()
	if len(r.HoleScores) < holes {
		return 0, false
	}
	sum := 0
	for i := 0; i < holes; i++ {
		if r.HoleScores[i] == nil {
			return 0, false
		}
		sum += *r.HoleScores[i]
	}
	return sum, true
}

// HasHoleScores reports whether the round carries a complete
// hole-by-hole record for its hole count.
func (r *Round) HasHoleScores() bool {
	_, ok := r.HoleScoreSum()
	return ok
}
