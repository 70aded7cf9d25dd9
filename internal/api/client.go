// Package api defines the contract with the LeveMagi bot backend and
// an HTTP/JSON implementation of it. The backend owns durable state;
// this client only mirrors the shapes the engine depends on.
package api

import (
	"context"
	"time"

	"github.com/mogumo/levemagi/internal/model"
)

// Client is the interface the state orchestrator uses to talk to the
// remote store. It is implemented by HTTPClient and can be backed by
// any transport.
type Client interface {
	// Full-state operations.
	FetchState(ctx context.Context) (model.State, error)
	ImportState(ctx context.Context, st model.State) (model.State, error)

	// Per-entity writes. All of these are fire-and-forget from the
	// orchestrator's point of view; no response body is consumed.
	CreateNuts(ctx context.Context, n model.Nuts) error
	UpdateNuts(ctx context.Context, id string, p NutsPatch) error
	DeleteNuts(ctx context.Context, id string) error

	CreateLeaf(ctx context.Context, l model.Leaf) error
	UpdateLeaf(ctx context.Context, id string, p LeafPatch) error
	DeleteLeaf(ctx context.Context, id string) error

	CreateTrunk(ctx context.Context, t model.Trunk) error
	UpdateTrunk(ctx context.Context, id string, p TrunkPatch) error
	DeleteTrunk(ctx context.Context, id string) error

	CreateRoot(ctx context.Context, r model.Root) error
	UpdateRoot(ctx context.Context, id string, p RootPatch) error
	DeleteRoot(ctx context.Context, id string) error

	CreatePortal(ctx context.Context, p model.Portal) error
	UpdatePortal(ctx context.Context, id string, patch PortalPatch) error
	DeletePortal(ctx context.Context, id string) error

	CreateResource(ctx context.Context, r model.Resource) error
	UpdateResource(ctx context.Context, id string, p ResourcePatch) error
	DeleteResource(ctx context.Context, id string) error

	CreateTag(ctx context.Context, t model.Tag) error
	UpdateTag(ctx context.Context, id string, p TagPatch) error
	DeleteTag(ctx context.Context, id string) error

	// Action notifications mirroring transitions already applied
	// locally; the engine never waits on their result.
	NotifyStartWork(ctx context.Context, nutsID string) error
	NotifyComplete(ctx context.Context, nutsID string) error
	NotifyGachaDraw(ctx context.Context, itemID string) error

	// Lifecycle.
	Close() error
}

// NutsPatch holds optional field updates for a Nuts. Nil pointer
// fields mean "don't change".
type NutsPatch struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Status      *model.NutsStatus `json:"status,omitempty"`
	Priority    *model.Priority   `json:"priority,omitempty"`
	Difficulty  *int              `json:"difficulty,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	StartDate   *time.Time        `json:"start_date,omitempty"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
}

// LeafPatch holds optional field updates for a Leaf.
type LeafPatch struct {
	Title       *string               `json:"title,omitempty"`
	Difficulty  *model.LeafDifficulty `json:"difficulty,omitempty"`
	Priority    *model.Priority       `json:"priority,omitempty"`
	NutsID      *string               `json:"nuts_id,omitempty"`
	TrunkID     *string               `json:"trunk_id,omitempty"`
	StartedAt   *time.Time            `json:"started_at,omitempty"`
	CompletedAt *time.Time            `json:"completed_at,omitempty"`
	ActualHours *float64              `json:"actual_hours,omitempty"`
	BonusHours  *float64              `json:"bonus_hours,omitempty"`
	XPSubtotal  *float64              `json:"xp_subtotal,omitempty"`
}

// TrunkPatch holds optional field updates for a Trunk.
type TrunkPatch struct {
	Title      *string            `json:"title,omitempty"`
	Type       *model.TrunkType   `json:"type,omitempty"`
	Value      *int               `json:"value,omitempty"`
	Status     *model.TrunkStatus `json:"status,omitempty"`
	What       *string            `json:"what,omitempty"`
	Idea       *string            `json:"idea,omitempty"`
	Conclusion *string            `json:"conclusion,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
}

// RootPatch holds optional field updates for a Root.
type RootPatch struct {
	Title      *string         `json:"title,omitempty"`
	Type       *model.RootType `json:"type,omitempty"`
	NutsID     *string         `json:"nuts_id,omitempty"`
	Difficulty *int            `json:"difficulty,omitempty"`
	What       *string         `json:"what,omitempty"`
	Content    *string         `json:"content,omitempty"`
	Comment    *string         `json:"comment,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
}

// PortalPatch holds optional field updates for a Portal.
type PortalPatch struct {
	Name        *string               `json:"name,omitempty"`
	Category    *model.PortalCategory `json:"category,omitempty"`
	Description *string               `json:"description,omitempty"`
	Tags        []string              `json:"tags,omitempty"`
	Rating      *int                  `json:"rating,omitempty"`
}

// ResourcePatch holds optional field updates for a Resource.
type ResourcePatch struct {
	Name        *string             `json:"name,omitempty"`
	Type        *model.ResourceType `json:"type,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Description *string             `json:"description,omitempty"`
	URL         *string             `json:"url,omitempty"`
}

// TagPatch holds optional field updates for a Tag.
type TagPatch struct {
	Name       *string `json:"name,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
}
