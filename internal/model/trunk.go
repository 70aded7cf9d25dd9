package model

import "time"

// TrunkType distinguishes issue records from non-issue records.
type TrunkType string

const (
	TrunkIssue    TrunkType = "issue"
	TrunkNonIssue TrunkType = "non-issue"
)

// String returns the string representation of the trunk type.
func (t TrunkType) String() string {
	return string(t)
}

// IsValid checks whether the trunk type is a known value.
func (t TrunkType) IsValid() bool {
	return t == TrunkIssue || t == TrunkNonIssue
}

// TrunkStatus is the resolution state of a Trunk.
type TrunkStatus string

const (
	TrunkPending    TrunkStatus = "pending"
	TrunkInProgress TrunkStatus = "in_progress"
	TrunkDone       TrunkStatus = "done"
)

// String returns the string representation of the trunk status.
func (s TrunkStatus) String() string {
	return string(s)
}

// IsValid checks whether the trunk status is a known value.
func (s TrunkStatus) IsValid() bool {
	switch s {
	case TrunkPending, TrunkInProgress, TrunkDone:
		return true
	}
	return false
}

// Trunk is an issue/decision record attached to a Nuts.
type Trunk struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	NutsID     string      `json:"nuts_id"`
	Type       TrunkType   `json:"type"`
	Value      int         `json:"value"` // 1-3 importance
	Status     TrunkStatus `json:"status"`
	What       string      `json:"what,omitempty"`
	Idea       string      `json:"idea,omitempty"`
	Conclusion string      `json:"conclusion,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
