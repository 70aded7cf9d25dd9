package model

import "time"

// Worklog is an audit record of a work session on a Nuts. At most one
// open worklog (CompletedAt == nil) exists per Nuts; starting a new
// session or completing the Nuts closes any open one.
type Worklog struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	NutsID      string     `json:"nuts_id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Snapshots taken at session start.
	Status     NutsStatus `json:"status"`
	PhaseLabel string     `json:"phase_label,omitempty"`
	Level      int        `json:"level"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}

// Open reports whether the session is still running.
func (w *Worklog) Open() bool {
	return w.CompletedAt == nil
}

// Tag is a reusable label with a favorite flag.
type Tag struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsFavorite bool   `json:"is_favorite"`
}
