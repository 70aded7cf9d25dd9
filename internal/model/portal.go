package model

import "time"

// PortalCategory is the hub category of a Portal.
type PortalCategory string

const (
	PortalLearning PortalCategory = "learning"
	PortalCreative PortalCategory = "creative"
	PortalWork     PortalCategory = "work"
	PortalLife     PortalCategory = "life"
	PortalOther    PortalCategory = "other"
)

// String returns the string representation of the category.
func (c PortalCategory) String() string {
	return string(c)
}

// IsValid checks whether the category is a known value.
func (c PortalCategory) IsValid() bool {
	switch c {
	case PortalLearning, PortalCreative, PortalWork, PortalLife, PortalOther:
		return true
	}
	return false
}

// Portal is a tag-based hub. Its relationship to other entities is
// computed from tag intersection, never stored.
type Portal struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    PortalCategory `json:"category"`
	Description string         `json:"description,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Rating      int            `json:"rating,omitempty"` // 1-10
	CreatedAt   time.Time      `json:"created_at"`
}

// ResourceType classifies a Resource.
type ResourceType string

const (
	ResourceImage    ResourceType = "image"
	ResourceDocument ResourceType = "document"
	ResourceMusic    ResourceType = "music"
	ResourceVideo    ResourceType = "video"
	ResourceLyrics   ResourceType = "lyrics"
)

// String returns the string representation of the resource type.
func (t ResourceType) String() string {
	return string(t)
}

// IsValid checks whether the resource type is a known value.
func (t ResourceType) IsValid() bool {
	switch t {
	case ResourceImage, ResourceDocument, ResourceMusic, ResourceVideo, ResourceLyrics:
		return true
	}
	return false
}

// Resource is an external asset reference.
type Resource struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ResourceType `json:"type"`
	Tags        []string     `json:"tags,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
