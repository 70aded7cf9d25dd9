package migration

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/mogumo/levemagi/internal/model"
)

func TestState_NonObjectInputs(t *testing.T) {
	empty := model.NewState()
	for _, tc := range []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"string", "oops"},
		{"number", 42.0},
		{"array", []any{1, 2}},
		{"bool", true},
	} {
		if got := State(tc.raw); !reflect.DeepEqual(got, empty) {
			t.Errorf("%s: State = %+v, want empty state", tc.name, got)
		}
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	got := FromJSON([]byte("{not json"))
	if !reflect.DeepEqual(got, model.NewState()) {
		t.Errorf("FromJSON(invalid) = %+v, want empty state", got)
	}
}

func TestState_CoercesMissingCollections(t *testing.T) {
	got := FromJSON([]byte(`{"nuts": "not-an-array", "leaves": 5}`))
	if got.Nuts == nil || len(got.Nuts) != 0 {
		t.Errorf("nuts = %v, want empty slice", got.Nuts)
	}
	if got.Leaves == nil || len(got.Leaves) != 0 {
		t.Errorf("leaves = %v, want empty slice", got.Leaves)
	}
}

func TestState_NutsStatusRemap(t *testing.T) {
	for _, tc := range []struct {
		old  string
		want model.NutsStatus
	}{
		{"someday", model.StatusSomeday},
		{"active", model.StatusActive},
		{"blocked", model.StatusStalled},
		{"done", model.StatusDone},
		{"archived", model.StatusArchived},
		{string(model.StatusConcept), model.StatusConcept}, // already new
		{"mystery", model.NutsStatus("mystery")},           // unknown passes through
	} {
		raw := map[string]any{"nuts": []any{map[string]any{"id": "n1", "status": tc.old}}}
		got := State(raw)
		if len(got.Nuts) != 1 {
			t.Fatalf("status %q: nuts = %d, want 1", tc.old, len(got.Nuts))
		}
		if got.Nuts[0].Status != tc.want {
			t.Errorf("status %q migrated to %q, want %q", tc.old, got.Nuts[0].Status, tc.want)
		}
	}
}

func TestState_LeafDifficultyRemap(t *testing.T) {
	for _, tc := range []struct {
		difficulty any
		want       model.LeafDifficulty
	}{
		{1.0, model.DifficultyEasy},
		{2.0, model.DifficultyEasy},
		{3.0, model.DifficultyNormal},
		{4.0, model.DifficultyHard},
		{5.0, model.DifficultyHard},
		{9.0, model.DifficultyNormal}, // unmapped number defaults
		{"hard", model.DifficultyHard},
	} {
		raw := map[string]any{"leaves": []any{map[string]any{"id": "l1", "difficulty": tc.difficulty}}}
		got := State(raw)
		if len(got.Leaves) != 1 {
			t.Fatalf("difficulty %v: leaves = %d, want 1", tc.difficulty, len(got.Leaves))
		}
		l := got.Leaves[0]
		if l.Difficulty != tc.want {
			t.Errorf("difficulty %v migrated to %q, want %q", tc.difficulty, l.Difficulty, tc.want)
		}
		if l.Priority != model.PriorityMedium {
			t.Errorf("difficulty %v: priority backfilled to %q, want medium", tc.difficulty, l.Priority)
		}
	}
}

func TestState_LeafPriorityKept(t *testing.T) {
	raw := map[string]any{"leaves": []any{map[string]any{"id": "l1", "difficulty": "easy", "priority": "high"}}}
	got := State(raw)
	if got.Leaves[0].Priority != model.PriorityHigh {
		t.Errorf("existing priority overwritten: %q", got.Leaves[0].Priority)
	}
}

func TestState_TrunkTypeRemap(t *testing.T) {
	for _, tc := range []struct {
		old  string
		want model.TrunkType
	}{
		{"problem", model.TrunkIssue},
		{"hypothesis", model.TrunkIssue},
		{"decision", model.TrunkNonIssue},
		{"research", model.TrunkNonIssue},
	} {
		raw := map[string]any{"trunks": []any{map[string]any{"id": "t1", "type": tc.old}}}
		got := State(raw)
		if len(got.Trunks) != 1 {
			t.Fatalf("type %q: trunks = %d, want 1", tc.old, len(got.Trunks))
		}
		tr := got.Trunks[0]
		if tr.Type != tc.want {
			t.Errorf("type %q migrated to %q, want %q", tc.old, tr.Type, tc.want)
		}
		if tr.Value != 2 {
			t.Errorf("type %q: value backfilled to %d, want 2", tc.old, tr.Value)
		}
		if tr.Tags == nil {
			t.Errorf("type %q: tags not backfilled", tc.old)
		}
	}
}

func TestState_TrunkAlreadyMigrated(t *testing.T) {
	raw := map[string]any{"trunks": []any{map[string]any{"id": "t1", "type": "issue", "value": 3.0}}}
	got := State(raw)
	tr := got.Trunks[0]
	if tr.Type != model.TrunkIssue || tr.Value != 3 {
		t.Errorf("migrated trunk changed: type %q value %d", tr.Type, tr.Value)
	}
}

func TestState_Idempotent(t *testing.T) {
	raw := map[string]any{
		"nuts": []any{
			map[string]any{"id": "n1", "name": "旅の記録", "status": "active", "tags": []any{"travel"}},
			map[string]any{"id": "n2", "status": "someday"},
		},
		"leaves": []any{
			map[string]any{"id": "l1", "title": "下調べ", "difficulty": 2.0, "nuts_id": "n1"},
			map[string]any{"id": "l2", "difficulty": "hard", "priority": "low"},
		},
		"trunks": []any{
			map[string]any{"id": "t1", "title": "判断", "type": "decision", "nuts_id": "n1"},
		},
		"user_data": map[string]any{"total_xp": 12.5, "gacha_tickets": 2.0},
	}

	once := State(raw)

	// Round-trip the migrated state back through JSON, as the local
	// store would, and migrate again.
	data, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	twice := FromJSON(data)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("migration not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	if once.User.TotalXP != 12.5 || once.User.GachaTickets != 2 {
		t.Errorf("user data = %+v", once.User)
	}
}
