package models

// Course sources, visible to the user so local and remote catalog
// entries can be told apart.
const (
	CourseSourceLocal  = "local"
	CourseSourceRemote = "remote"
)

// TeeInfo describes one set of tees on a course.
type TeeInfo struct {
	Yardage int     `json:"yardage"`
	Rating  float64 `json:"rating"`
	Slope   int     `json:"slope"`
}

// Course is catalog reference data used to pre-fill a round draft.
type Course struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Location string             `json:"location"`
	Par      int                `json:"par"`
	Tees     map[string]TeeInfo `json:"tees,omitempty"`
	Source   string             `json:"source"` // "local" or "remote"
}

// Tee looks up tee-level data by tee name.
func (c *Course) Tee(name string) (TeeInfo, bool) {
	info, ok := c.Tees[name]
	return info, ok
}
