package state

import (
	"context"
	"time"

	"github.com/mogumo/levemagi/internal/api"
	"github.com/mogumo/levemagi/internal/events"
	"github.com/mogumo/levemagi/internal/idgen"
	"github.com/mogumo/levemagi/internal/leveling"
	"github.com/mogumo/levemagi/internal/model"
	"github.com/mogumo/levemagi/internal/phase"
	"github.com/mogumo/levemagi/internal/xp"
)

// closeOpenWorklog stamps CompletedAt on the open worklog for the Nuts,
// if any, refreshing its status/phase/level snapshots to the moment of
// closing, and returns a copy of the closed record.
func (s *Store) closeOpenWorklog(st *model.State, n *model.Nuts, now time.Time) (model.Worklog, bool) {
	w := st.OpenWorklog(n.ID)
	if w == nil {
		return model.Worklog{}, false
	}
	w.CompletedAt = &now
	w.Status = n.Status
	w.PhaseLabel = phase.Detect(now, n.StartDate, n.Deadline, n.Status).Label
	w.Level = leveling.LevelForXP(xp.TotalXP(st.Leaves), s.policy)
	return *w, true
}

// StartNutsWork opens a work session on a Nuts: the previous open
// session (if any) is closed, a new worklog is created with snapshots
// of the current status, phase and level, and the Nuts moves to the
// active status. StartDate is stamped only on the first session.
func (s *Store) StartNutsWork(id string) bool {
	now := s.now()
	var (
		found   bool
		closed  model.Worklog
		hadOpen bool
		opened  model.Worklog
		patch   api.NutsPatch
	)
	s.mutate(func(st *model.State) {
		n := st.FindNuts(id)
		if n == nil {
			return
		}
		found = true
		closed, hadOpen = s.closeOpenWorklog(st, n, now)

		n.Status = model.StatusActive
		patch.Status = &n.Status
		if n.StartDate == nil {
			n.StartDate = &now
			patch.StartDate = &now
		}

		level := leveling.LevelForXP(xp.TotalXP(st.Leaves), s.policy)
		opened = model.Worklog{
			ID:         idgen.MustNew("wl"),
			Name:       n.Name,
			NutsID:     n.ID,
			StartedAt:  now,
			Status:     n.Status,
			PhaseLabel: phase.Detect(now, n.StartDate, n.Deadline, n.Status).Label,
			Level:      level,
			Deadline:   n.Deadline,
		}
		st.Worklogs = append(st.Worklogs, opened)
	})
	if !found {
		return false
	}

	s.asyncWrite("start work", func(ctx context.Context, c api.Client) error {
		if err := c.UpdateNuts(ctx, id, patch); err != nil {
			return err
		}
		return c.NotifyStartWork(ctx, id)
	})
	if hadOpen {
		s.publish(events.TopicWorklogClosed, events.WorklogClosed{Worklog: closed})
	}
	s.publish(events.TopicWorklogOpened, events.WorklogOpened{Worklog: opened})
	return true
}

// CompleteNuts marks a Nuts done and closes its open work session.
func (s *Store) CompleteNuts(id string) bool {
	now := s.now()
	var (
		found   bool
		closed  model.Worklog
		hadOpen bool
		done    model.Nuts
	)
	s.mutate(func(st *model.State) {
		n := st.FindNuts(id)
		if n == nil {
			return
		}
		found = true
		closed, hadOpen = s.closeOpenWorklog(st, n, now)
		n.Status = model.StatusDone
		done = *n
	})
	if !found {
		return false
	}

	s.asyncWrite("complete nuts", func(ctx context.Context, c api.Client) error {
		status := model.StatusDone
		if err := c.UpdateNuts(ctx, id, api.NutsPatch{Status: &status}); err != nil {
			return err
		}
		return c.NotifyComplete(ctx, id)
	})
	if hadOpen {
		s.publish(events.TopicWorklogClosed, events.WorklogClosed{Worklog: closed})
	}
	s.publish(events.TopicNutsCompleted, events.NutsCompleted{Nuts: done})
	return true
}

// CompleteLeaf finishes a Leaf: actual and bonus hours are computed
// from the session window and frozen on the record, the XP subtotal is
// returned, and a gacha ticket is granted when the total pushed the
// level up. With createSeed a seed Root linked to the Leaf's Nuts is
// created as a side effect.
//
// Completing an already-completed or unknown Leaf is a no-op returning
// false.
func (s *Store) CompleteLeaf(id string, createSeed bool) (float64, bool) {
	now := s.now()
	var (
		found     bool
		subtotal  float64
		prevLevel int
		newLevel  int
		completed model.Leaf
		seed      model.Root
		hasSeed   bool
	)
	s.mutate(func(st *model.State) {
		l := st.FindLeaf(id)
		if l == nil || l.CompletedAt != nil {
			return
		}
		found = true
		prevLevel = leveling.LevelForXP(xp.TotalXP(st.Leaves), s.policy)

		start := now
		if l.StartedAt != nil {
			start = *l.StartedAt
		} else {
			l.StartedAt = &now
		}
		actual := xp.ActualHours(start, now)
		bonus := xp.BonusHours(l.Difficulty.Estimate(), actual)
		sub := actual + bonus
		l.CompletedAt = &now
		l.ActualHours = &actual
		l.BonusHours = &bonus
		l.XPSubtotal = &sub
		subtotal = sub
		completed = *l

		newLevel = leveling.LevelForXP(xp.TotalXP(st.Leaves), s.policy)
		if newLevel > prevLevel {
			st.User.GachaTickets++
		}

		if createSeed {
			hasSeed = true
			seed = model.Root{
				ID:        idgen.MustNew("root"),
				Title:     l.Title,
				Type:      model.RootSeed,
				NutsID:    l.NutsID,
				CreatedAt: now,
			}
			st.Roots = append(st.Roots, seed)
		}
	})
	if !found {
		return 0, false
	}

	s.asyncWrite("complete leaf", func(ctx context.Context, c api.Client) error {
		p := api.LeafPatch{
			StartedAt:   completed.StartedAt,
			CompletedAt: completed.CompletedAt,
			ActualHours: completed.ActualHours,
			BonusHours:  completed.BonusHours,
			XPSubtotal:  completed.XPSubtotal,
		}
		if err := c.UpdateLeaf(ctx, id, p); err != nil {
			return err
		}
		if hasSeed {
			return c.CreateRoot(ctx, seed)
		}
		return nil
	})

	s.publish(events.TopicLeafCompleted, events.LeafCompleted{Leaf: completed, XPSubtotal: subtotal})
	if newLevel > prevLevel {
		s.publish(events.TopicLevelUp, events.LevelUp{From: prevLevel, To: newLevel, Tickets: 1})
	}
	return subtotal, true
}

// PullGacha spends one ticket and draws from the catalog. The drawn
// item is added to the collection at most once; duplicate draws still
// consume the ticket. Returns false when no tickets are left.
func (s *Store) PullGacha() (model.GachaItem, bool) {
	var (
		item  model.GachaItem
		drawn bool
		fresh bool
	)
	s.mutate(func(st *model.State) {
		if st.User.GachaTickets <= 0 {
			return
		}
		drawn = true
		st.User.GachaTickets--
		item = s.drawer.Draw()
		if !st.User.HasItem(item.ID) {
			fresh = true
			st.User.CollectedItems = append(st.User.CollectedItems, item.ID)
		}
	})
	if !drawn {
		return model.GachaItem{}, false
	}

	s.asyncWrite("gacha draw", func(ctx context.Context, c api.Client) error {
		return c.NotifyGachaDraw(ctx, item.ID)
	})
	s.publish(events.TopicGachaDrawn, events.GachaDrawn{Item: item, New: fresh})
	return item, true
}
