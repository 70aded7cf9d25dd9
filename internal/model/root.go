package model

import "time"

// RootType classifies a knowledge note. Seeds are created as a side
// effect of completing a Leaf and can be promoted step by step toward
// the archive.
type RootType string

const (
	RootSeed      RootType = "seed"
	RootKnowledge RootType = "knowledge"
	RootGuide     RootType = "guide"
	RootColumn    RootType = "column"
	RootArchive   RootType = "archive"
)

// rootPromotion is the ordered promotion path starting from seed.
var rootPromotion = []RootType{RootSeed, RootKnowledge, RootGuide, RootColumn, RootArchive}

// String returns the string representation of the root type.
func (t RootType) String() string {
	return string(t)
}

// IsValid checks whether the root type is a known value.
func (t RootType) IsValid() bool {
	for _, rt := range rootPromotion {
		if t == rt {
			return true
		}
	}
	return false
}

// Next returns the next type on the promotion path, or the type itself
// when already at the end (archive) or unknown.
func (t RootType) Next() RootType {
	for i, rt := range rootPromotion {
		if t == rt && i+1 < len(rootPromotion) {
			return rootPromotion[i+1]
		}
	}
	return t
}

// Root is a knowledge note, optionally linked to a Nuts. Roots survive
// deletion of their Nuts (they become orphaned, never cascaded).
type Root struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Type       RootType  `json:"type"`
	NutsID     string    `json:"nuts_id,omitempty"`
	Difficulty int       `json:"difficulty,omitempty"` // 1-3
	What       string    `json:"what,omitempty"`
	Content    string    `json:"content,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
