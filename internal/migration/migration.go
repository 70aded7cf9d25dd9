// Package migration normalizes arbitrarily-shaped persisted state into
// the current schema. It is a tolerant reader: anything malformed is
// coerced to an empty value, never rejected, and running a snapshot
// through it twice yields the same result as once.
package migration

import (
	"encoding/json"

	"github.com/mogumo/levemagi/internal/model"
)

// Old Nuts status values from the pre-localization schema.
var legacyNutsStatus = map[string]model.NutsStatus{
	"someday":  model.StatusSomeday,
	"active":   model.StatusActive,
	"blocked":  model.StatusStalled,
	"done":     model.StatusDone,
	"archived": model.StatusArchived,
}

// Old numeric Leaf difficulty (1-5 scale) to the current tiers.
var legacyLeafDifficulty = map[int]model.LeafDifficulty{
	1: model.DifficultyEasy,
	2: model.DifficultyEasy,
	3: model.DifficultyNormal,
	4: model.DifficultyHard,
	5: model.DifficultyHard,
}

// Old Trunk types to the current issue/non-issue split.
var legacyTrunkType = map[string]model.TrunkType{
	"problem":    model.TrunkIssue,
	"hypothesis": model.TrunkIssue,
	"decision":   model.TrunkNonIssue,
	"research":   model.TrunkNonIssue,
}

// FromJSON migrates a raw JSON snapshot. Invalid JSON yields an empty
// state.
func FromJSON(data []byte) model.State {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.NewState()
	}
	return State(raw)
}

// State migrates an untyped snapshot (as produced by encoding/json)
// into the canonical state tree.
func State(raw any) model.State {
	st := model.NewState()
	obj, ok := raw.(map[string]any)
	if !ok {
		return st
	}

	for _, item := range items(obj, "nuts") {
		migrateNuts(item)
		if n, ok := decode[model.Nuts](item); ok {
			st.Nuts = append(st.Nuts, n)
		}
	}
	for _, item := range items(obj, "leaves") {
		migrateLeaf(item)
		if l, ok := decode[model.Leaf](item); ok {
			st.Leaves = append(st.Leaves, l)
		}
	}
	for _, item := range items(obj, "trunks") {
		migrateTrunk(item)
		if t, ok := decode[model.Trunk](item); ok {
			st.Trunks = append(st.Trunks, t)
		}
	}
	for _, item := range items(obj, "roots") {
		if r, ok := decode[model.Root](item); ok {
			st.Roots = append(st.Roots, r)
		}
	}
	for _, item := range items(obj, "portals") {
		if p, ok := decode[model.Portal](item); ok {
			st.Portals = append(st.Portals, p)
		}
	}
	for _, item := range items(obj, "resources") {
		if r, ok := decode[model.Resource](item); ok {
			st.Resources = append(st.Resources, r)
		}
	}
	for _, item := range items(obj, "worklogs") {
		if w, ok := decode[model.Worklog](item); ok {
			st.Worklogs = append(st.Worklogs, w)
		}
	}
	for _, item := range items(obj, "tags") {
		if t, ok := decode[model.Tag](item); ok {
			st.Tags = append(st.Tags, t)
		}
	}
	if u, ok := obj["user_data"].(map[string]any); ok {
		if ud, ok := decode[model.UserData](u); ok {
			st.User = ud
		}
	}
	return st
}

// items extracts a collection, coercing missing or non-array values to
// empty and skipping non-object elements.
func items(obj map[string]any, key string) []map[string]any {
	arr, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func migrateNuts(m map[string]any) {
	if s, ok := m["status"].(string); ok {
		if mapped, ok := legacyNutsStatus[s]; ok {
			m["status"] = string(mapped)
		}
	}
}

func migrateLeaf(m map[string]any) {
	// JSON numbers arrive as float64; a numeric difficulty is the old
	// 1-5 scale.
	if d, ok := m["difficulty"].(float64); ok {
		tier, ok := legacyLeafDifficulty[int(d)]
		if !ok {
			tier = model.DifficultyNormal
		}
		m["difficulty"] = string(tier)
	}
	if _, ok := m["priority"].(string); !ok {
		m["priority"] = string(model.PriorityMedium)
	}
}

func migrateTrunk(m map[string]any) {
	if t, ok := m["type"].(string); ok {
		if mapped, ok := legacyTrunkType[t]; ok {
			m["type"] = string(mapped)
			if _, ok := m["value"]; !ok {
				m["value"] = 2
			}
		}
	}
	if _, ok := m["tags"]; !ok {
		m["tags"] = []any{}
	}
}

// decode round-trips an untyped object into T, reporting false when
// the shape does not fit at all.
func decode[T any](m map[string]any) (T, bool) {
	var v T
	data, err := json.Marshal(m)
	if err != nil {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false
	}
	return v, true
}
