package model

import "time"

// NutsStatus is the workflow state of a Nuts. Values are the
// user-facing Japanese labels stored as-is on the wire.
type NutsStatus string

const (
	// Todo category.
	StatusConcept   NutsStatus = "構想中"
	StatusSomeday   NutsStatus = "いつかやる"
	StatusPreparing NutsStatus = "準備中"

	// In-progress category.
	StatusActive  NutsStatus = "進行中"
	StatusStalled NutsStatus = "停滞中"

	// Complete category.
	StatusDone     NutsStatus = "完了"
	StatusArchived NutsStatus = "保管"
)

// String returns the string representation of the status.
func (s NutsStatus) String() string {
	return string(s)
}

// IsValid checks whether the status is a known value.
func (s NutsStatus) IsValid() bool {
	switch s {
	case StatusConcept, StatusSomeday, StatusPreparing,
		StatusActive, StatusStalled, StatusDone, StatusArchived:
		return true
	}
	return false
}

// StatusCategory is the coarse grouping a NutsStatus belongs to.
type StatusCategory string

const (
	CategoryTodo       StatusCategory = "todo"
	CategoryInProgress StatusCategory = "in_progress"
	CategoryComplete   StatusCategory = "complete"
)

// Category returns the category for the status. Every valid status
// belongs to exactly one category; unknown statuses fall into todo.
func (s NutsStatus) Category() StatusCategory {
	switch s {
	case StatusActive, StatusStalled:
		return CategoryInProgress
	case StatusDone, StatusArchived:
		return CategoryComplete
	default:
		return CategoryTodo
	}
}

// statusProgress maps each status to a progress-bar percentage.
var statusProgress = map[NutsStatus]int{
	StatusConcept:   0,
	StatusSomeday:   0,
	StatusPreparing: 10,
	StatusActive:    50,
	StatusStalled:   30,
	StatusDone:      100,
	StatusArchived:  100,
}

// Progress returns the fixed progress percentage for the status.
func (s NutsStatus) Progress() int {
	return statusProgress[s]
}

// Priority ranks a Nuts or Leaf. Only PriorityHigh counts as
// "important" for Eisenhower classification.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks whether the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Nuts is a deliverable/outcome unit, the aggregation root for
// Trunks, Leaves and Worklogs.
type Nuts struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      NutsStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	Difficulty  int        `json:"difficulty"` // 1-10
	Tags        []string   `json:"tags,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
