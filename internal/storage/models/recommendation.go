package models

// Recommendation priorities, from most to least urgent.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PriorityWeight returns the sort weight for a priority. Unknown
// priorities weigh zero and sort last.
func PriorityWeight(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Recommendation is a derived coaching suggestion. Recommendations are
// recomputed from the recorded rounds on every read and never stored.
type Recommendation struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	ActionItems []string `json:"action_items,omitempty"`
}

// Summary is the computed-statistics surface read by the display layer.
// Pointer fields are nil when no round carries the underlying value.
type Summary struct {
	TotalRounds      int      `json:"total_rounds"`
	NineHoleRounds   int      `json:"nine_hole_rounds"`
	EighteenRounds   int      `json:"eighteen_hole_rounds"`
	HandicapEstimate int      `json:"handicap_estimate"`
	BestScore        *int     `json:"best_score,omitempty"`
	AveragePutts     *float64 `json:"average_putts,omitempty"`
	FairwayPct       *float64 `json:"fairway_pct,omitempty"`
	GIRPct           *float64 `json:"gir_pct,omitempty"`
}
