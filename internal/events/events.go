// Package events publishes progression events so companions (the
// Discord bot, notification jobs) can react to state transitions the
// engine has already applied locally. Publication is best effort and
// never blocks a mutation.
package events

import (
	"context"

	"github.com/mogumo/levemagi/internal/model"
)

// Event topic constants.
const (
	TopicLeafCompleted = "levemagi.leaf.completed"
	TopicLevelUp       = "levemagi.level.up"
	TopicGachaDrawn    = "levemagi.gacha.drawn"
	TopicWorklogOpened = "levemagi.worklog.opened"
	TopicWorklogClosed = "levemagi.worklog.closed"
	TopicNutsCompleted = "levemagi.nuts.completed"
)

// Event types

type LeafCompleted struct {
	Leaf       model.Leaf `json:"leaf"`
	XPSubtotal float64    `json:"xp_subtotal"`
}

type LevelUp struct {
	From    int `json:"from"`
	To      int `json:"to"`
	Tickets int `json:"tickets"`
}

type GachaDrawn struct {
	Item model.GachaItem `json:"item"`
	New  bool            `json:"new"` // first copy of this item
}

type WorklogOpened struct {
	Worklog model.Worklog `json:"worklog"`
}

type WorklogClosed struct {
	Worklog model.Worklog `json:"worklog"`
}

type NutsCompleted struct {
	Nuts model.Nuts `json:"nuts"`
}

// Publisher sends events to interested subscribers.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
