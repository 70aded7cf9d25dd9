// Package xp converts task timing data into experience points.
//
// XP is denominated in hours: a completed Leaf earns its actual hours
// plus a bonus for finishing under the difficulty-tier estimate. When
// leaves are aggregated under a Nuts, every bonus is counted twice
// more on top of the per-leaf totals; unlinked leaves earn only their
// per-leaf value. The asymmetry rewards structured work and is load-
// bearing, not an accident.
package xp

import (
	"time"

	"github.com/mogumo/levemagi/internal/model"
)

// ActualHours returns the wall-clock difference in hours, floored at
// zero even when the timestamps are inverted.
func ActualHours(startedAt, completedAt time.Time) float64 {
	h := completedAt.Sub(startedAt).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// BonusHours rewards finishing under the estimate: max(0, estimate-actual).
func BonusHours(estimateHours, actualHours float64) float64 {
	b := estimateHours - actualHours
	if b < 0 {
		return 0
	}
	return b
}

// LeafXP returns the XP a single Leaf is worth: actual + bonus for a
// timed leaf, zero when it was never started nor completed.
func LeafXP(l *model.Leaf) float64 {
	if l.StartedAt == nil && l.CompletedAt == nil {
		return 0
	}
	if l.ActualHours != nil && l.BonusHours != nil {
		return *l.ActualHours + *l.BonusHours
	}
	if l.StartedAt == nil || l.CompletedAt == nil {
		return 0
	}
	actual := ActualHours(*l.StartedAt, *l.CompletedAt)
	return actual + BonusHours(l.Difficulty.Estimate(), actual)
}

// NutsXP aggregates a group of leaves sharing one Nuts:
// Σ(actual+bonus) plus every bonus doubled again.
func NutsXP(leaves []model.Leaf) float64 {
	var total, bonuses float64
	for i := range leaves {
		l := &leaves[i]
		if l.CompletedAt == nil {
			continue
		}
		total += LeafXP(l)
		if l.BonusHours != nil {
			bonuses += *l.BonusHours
		} else if l.StartedAt != nil {
			actual := ActualHours(*l.StartedAt, *l.CompletedAt)
			bonuses += BonusHours(l.Difficulty.Estimate(), actual)
		}
	}
	return total + 2*bonuses
}

// TotalXP recomputes the authoritative total from scratch: leaves are
// partitioned by NutsID and each group contributes NutsXP; leaves
// without a Nuts contribute LeafXP individually (no bonus doubling).
func TotalXP(leaves []model.Leaf) float64 {
	groups := make(map[string][]model.Leaf)
	var total float64
	for _, l := range leaves {
		if l.NutsID == "" {
			total += LeafXP(&l)
			continue
		}
		groups[l.NutsID] = append(groups[l.NutsID], l)
	}
	for _, group := range groups {
		total += NutsXP(group)
	}
	return total
}
