// Package phase classifies a Nuts against its deadline window and
// derives the Eisenhower quadrant from priority and time pressure.
package phase

import (
	"time"

	"github.com/mogumo/levemagi/internal/model"
)

// ID names a deadline phase.
type ID string

const (
	Complete   ID = "complete"
	NoDates    ID = "no_dates"
	NotStarted ID = "not_started"
	Green      ID = "green"
	Yellow     ID = "yellow"
	Red        ID = "red"
	Deadline   ID = "deadline"
	Fire       ID = "fire"
)

// Elapsed-ratio breakpoints. Ordering matters; these are fixed, not
// per-entity configuration.
const (
	greenUntil    = 0.50
	yellowUntil   = 0.65
	redUntil      = 0.80
	deadlineUntil = 0.95
)

// Info describes a detected phase for display.
type Info struct {
	ID    ID     `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var infos = map[ID]Info{
	Complete:   {Complete, "完了", "gray"},
	NoDates:    {NoDates, "日付未設定", "gray"},
	NotStarted: {NotStarted, "開始前", "blue"},
	Green:      {Green, "順調", "green"},
	Yellow:     {Yellow, "注意", "yellow"},
	Red:        {Red, "締切間近", "orange"},
	Deadline:   {Deadline, "最終ライン", "red"},
	Fire:       {Fire, "炎上", "red"},
}

// InfoFor returns the display info for a phase ID.
func InfoFor(id ID) Info {
	return infos[id]
}

// Detect classifies the current moment against [startDate, deadline].
// A complete-category status wins over everything; missing dates mean
// no classification; a non-positive window counts as already overdue.
func Detect(now time.Time, startDate, deadline *time.Time, status model.NutsStatus) Info {
	if status.Category() == model.CategoryComplete {
		return infos[Complete]
	}
	if startDate == nil || deadline == nil {
		return infos[NoDates]
	}
	if now.Before(*startDate) {
		return infos[NotStarted]
	}
	total := deadline.Sub(*startDate)
	if total <= 0 {
		return infos[Fire]
	}

	ratio := float64(now.Sub(*startDate)) / float64(total)
	switch {
	case ratio <= greenUntil:
		return infos[Green]
	case ratio <= yellowUntil:
		return infos[Yellow]
	case ratio <= redUntil:
		return infos[Red]
	case ratio <= deadlineUntil:
		return infos[Deadline]
	default:
		return infos[Fire]
	}
}

// Segment is one slice of the milestone progress bar.
type Segment struct {
	Label   string    `json:"label"`
	Color   string    `json:"color"`
	Percent float64   `json:"percent"` // proportion of the total window, 0-1
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// milestoneSpec fixes the five segment proportions and their colors.
var milestoneSpec = []struct {
	label   string
	color   string
	percent float64
}{
	{"順調", "green", 0.50},
	{"注意", "yellow", 0.15},
	{"締切間近", "orange", 0.15},
	{"最終ライン", "red", 0.15},
	{"炎上", "red", 0.05},
}

// Milestones splits [startDate, deadline] into five contiguous
// segments with fixed proportions. Returns nil when the window is
// empty or inverted.
func Milestones(startDate, deadline time.Time) []Segment {
	total := deadline.Sub(startDate)
	if total <= 0 {
		return nil
	}

	segments := make([]Segment, 0, len(milestoneSpec))
	cursor := startDate
	for i, spec := range milestoneSpec {
		end := cursor.Add(time.Duration(float64(total) * spec.percent))
		if i == len(milestoneSpec)-1 {
			// Absorb rounding drift so the bar ends exactly on the deadline.
			end = deadline
		}
		segments = append(segments, Segment{
			Label:   spec.label,
			Color:   spec.color,
			Percent: spec.percent,
			Start:   cursor,
			End:     end,
		})
		cursor = end
	}
	return segments
}
