package model

import "time"

// LeafDifficulty is the size tier of a Leaf. Each tier maps to a fixed
// estimated-hours constant via EstimateHours.
type LeafDifficulty string

const (
	DifficultyEasy   LeafDifficulty = "easy"
	DifficultyNormal LeafDifficulty = "normal"
	DifficultyHard   LeafDifficulty = "hard"
)

// String returns the string representation of the difficulty.
func (d LeafDifficulty) String() string {
	return string(d)
}

// IsValid checks whether the difficulty is a known tier.
func (d LeafDifficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// EstimateHours maps each difficulty tier to its estimated hours.
// Estimate lookups and UI labels both read this table; it is the only
// place the numbers live.
var EstimateHours = map[LeafDifficulty]float64{
	DifficultyEasy:   1,
	DifficultyNormal: 2,
	DifficultyHard:   4,
}

// Estimate returns the estimated hours for the tier, defaulting to the
// normal tier for unknown values.
func (d LeafDifficulty) Estimate() float64 {
	if h, ok := EstimateHours[d]; ok {
		return h
	}
	return EstimateHours[DifficultyNormal]
}

// LeafStatus is the derived lifecycle state of a Leaf. It is never
// stored; it is a pure function of StartedAt/CompletedAt presence.
type LeafStatus string

const (
	LeafPending    LeafStatus = "pending"
	LeafInProgress LeafStatus = "in_progress"
	LeafCompleted  LeafStatus = "completed"
)

// Leaf is an atomic task, optionally owned by a Nuts and a Trunk.
type Leaf struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Difficulty  LeafDifficulty `json:"difficulty"`
	Priority    Priority       `json:"priority"`
	NutsID      string         `json:"nuts_id,omitempty"`
	TrunkID     string         `json:"trunk_id,omitempty"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	ActualHours *float64       `json:"actual_hours,omitempty"`
	BonusHours  *float64       `json:"bonus_hours,omitempty"`
	XPSubtotal  *float64       `json:"xp_subtotal,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Status derives the lifecycle state from the timestamp fields.
func (l *Leaf) Status() LeafStatus {
	switch {
	case l.CompletedAt != nil:
		return LeafCompleted
	case l.StartedAt != nil:
		return LeafInProgress
	default:
		return LeafPending
	}
}
