package model

import (
	"testing"
	"time"
)

func TestNutsStatus_Category(t *testing.T) {
	for _, tc := range []struct {
		status NutsStatus
		want   StatusCategory
	}{
		{StatusConcept, CategoryTodo},
		{StatusSomeday, CategoryTodo},
		{StatusPreparing, CategoryTodo},
		{StatusActive, CategoryInProgress},
		{StatusStalled, CategoryInProgress},
		{StatusDone, CategoryComplete},
		{StatusArchived, CategoryComplete},
		{NutsStatus("bogus"), CategoryTodo},
	} {
		if got := tc.status.Category(); got != tc.want {
			t.Errorf("NutsStatus(%q).Category() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestNutsStatus_IsValid(t *testing.T) {
	for _, tc := range []struct {
		status NutsStatus
		want   bool
	}{
		{StatusConcept, true},
		{StatusActive, true},
		{StatusArchived, true},
		{NutsStatus(""), false},
		{NutsStatus("done"), false},
	} {
		if got := tc.status.IsValid(); got != tc.want {
			t.Errorf("NutsStatus(%q).IsValid() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestNutsStatus_Progress(t *testing.T) {
	for _, tc := range []struct {
		status NutsStatus
		want   int
	}{
		{StatusConcept, 0},
		{StatusPreparing, 10},
		{StatusStalled, 30},
		{StatusActive, 50},
		{StatusDone, 100},
		{StatusArchived, 100},
	} {
		if got := tc.status.Progress(); got != tc.want {
			t.Errorf("NutsStatus(%q).Progress() = %d, want %d", tc.status, got, tc.want)
		}
	}
}

func TestLeaf_Status(t *testing.T) {
	now := time.Now()
	for _, tc := range []struct {
		name string
		leaf Leaf
		want LeafStatus
	}{
		{"pending", Leaf{}, LeafPending},
		{"started", Leaf{StartedAt: &now}, LeafInProgress},
		{"completed", Leaf{StartedAt: &now, CompletedAt: &now}, LeafCompleted},
		{"completed without start", Leaf{CompletedAt: &now}, LeafCompleted},
	} {
		if got := tc.leaf.Status(); got != tc.want {
			t.Errorf("%s: Status() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestLeafDifficulty_Estimate(t *testing.T) {
	for _, tc := range []struct {
		difficulty LeafDifficulty
		want       float64
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 2},
		{DifficultyHard, 4},
		{LeafDifficulty("unknown"), 2},
	} {
		if got := tc.difficulty.Estimate(); got != tc.want {
			t.Errorf("LeafDifficulty(%q).Estimate() = %v, want %v", tc.difficulty, got, tc.want)
		}
	}
}

func TestRootType_Next(t *testing.T) {
	for _, tc := range []struct {
		typ  RootType
		want RootType
	}{
		{RootSeed, RootKnowledge},
		{RootKnowledge, RootGuide},
		{RootGuide, RootColumn},
		{RootColumn, RootArchive},
		{RootArchive, RootArchive},
		{RootType("bogus"), RootType("bogus")},
	} {
		if got := tc.typ.Next(); got != tc.want {
			t.Errorf("RootType(%q).Next() = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestState_OpenWorklog(t *testing.T) {
	done := time.Now()
	st := State{Worklogs: []Worklog{
		{ID: "w1", NutsID: "n1", CompletedAt: &done},
		{ID: "w2", NutsID: "n1"},
		{ID: "w3", NutsID: "n2"},
	}}

	if got := st.OpenWorklog("n1"); got == nil || got.ID != "w2" {
		t.Errorf("OpenWorklog(n1) = %v, want w2", got)
	}
	if got := st.OpenWorklog("n3"); got != nil {
		t.Errorf("OpenWorklog(n3) = %v, want nil", got)
	}
}

func TestState_RelatedTo(t *testing.T) {
	st := State{
		Nuts: []Nuts{
			{ID: "n1", Tags: []string{"go", "oss"}},
			{ID: "n2", Tags: []string{"music"}},
		},
		Trunks: []Trunk{
			{ID: "t1", NutsID: "n1"},                           // related via owner
			{ID: "t2", NutsID: "n2", Tags: []string{"go"}},     // related via own tag
			{ID: "t3", NutsID: "n2", Tags: []string{"random"}}, // unrelated
		},
		Leaves: []Leaf{
			{ID: "l1", NutsID: "n1"},
			{ID: "l2", NutsID: "n2"},
		},
		Roots: []Root{
			{ID: "r1", Tags: []string{"oss"}},
			{ID: "r2", Tags: []string{"piano"}},
		},
		Resources: []Resource{
			{ID: "res1", Tags: []string{"go"}},
		},
	}
	p := Portal{ID: "p1", Tags: []string{"go", "oss"}}

	rel := st.RelatedTo(&p)
	if len(rel.Nuts) != 1 || rel.Nuts[0].ID != "n1" {
		t.Errorf("related nuts = %v, want [n1]", rel.Nuts)
	}
	if len(rel.Trunks) != 2 {
		t.Errorf("related trunks = %d, want 2", len(rel.Trunks))
	}
	if len(rel.Leaves) != 1 || rel.Leaves[0].ID != "l1" {
		t.Errorf("related leaves = %v, want [l1]", rel.Leaves)
	}
	if len(rel.Roots) != 1 || rel.Roots[0].ID != "r1" {
		t.Errorf("related roots = %v, want [r1]", rel.Roots)
	}
	if len(rel.Resources) != 1 {
		t.Errorf("related resources = %d, want 1", len(rel.Resources))
	}
}

func TestState_Clone(t *testing.T) {
	st := NewState()
	st.Nuts = append(st.Nuts, Nuts{ID: "n1", Status: StatusConcept})
	st.User.CollectedItems = []string{"acorn"}

	c := st.Clone()
	c.Nuts[0].Status = StatusDone
	c.Nuts = append(c.Nuts, Nuts{ID: "n2"})
	c.User.CollectedItems[0] = "clover"

	if st.Nuts[0].Status != StatusConcept {
		t.Errorf("clone mutation leaked into original: %q", st.Nuts[0].Status)
	}
	if len(st.Nuts) != 1 {
		t.Errorf("original nuts length = %d, want 1", len(st.Nuts))
	}
	if st.User.CollectedItems[0] != "acorn" {
		t.Errorf("collected items leaked: %q", st.User.CollectedItems[0])
	}
}
