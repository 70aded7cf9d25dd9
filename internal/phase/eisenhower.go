package phase

import "github.com/mogumo/levemagi/internal/model"

// Quadrant names an Eisenhower quadrant.
type Quadrant string

const (
	DoNow     Quadrant = "do_now"
	Schedule  Quadrant = "schedule"
	Delegate  Quadrant = "delegate"
	Eliminate Quadrant = "eliminate"
)

// QuadrantInfo describes a quadrant for display.
type QuadrantInfo struct {
	Quadrant Quadrant `json:"quadrant"`
	Label    string   `json:"label"`
	Emoji    string   `json:"emoji"`
	Color    string   `json:"color"`
}

var quadrants = map[Quadrant]QuadrantInfo{
	DoNow:     {DoNow, "今すぐやる", "🔥", "red"},
	Schedule:  {Schedule, "計画を立てる", "📅", "blue"},
	Delegate:  {Delegate, "さっと片付ける", "⚡", "yellow"},
	Eliminate: {Eliminate, "やらなくていい", "🌿", "gray"},
}

// urgent phases: the back half of the deadline window and beyond.
func urgent(id ID) bool {
	switch id {
	case Red, Deadline, Fire:
		return true
	}
	return false
}

// Classify maps (priority, phase) to an Eisenhower quadrant. Only
// PriorityHigh counts as important; the function is total over every
// phase ID, including no_dates and complete.
func Classify(priority model.Priority, id ID) QuadrantInfo {
	important := priority == model.PriorityHigh
	switch {
	case important && urgent(id):
		return quadrants[DoNow]
	case important:
		return quadrants[Schedule]
	case urgent(id):
		return quadrants[Delegate]
	default:
		return quadrants[Eliminate]
	}
}
