package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mogumo/levemagi/internal/api"
	"github.com/mogumo/levemagi/internal/localstore"
	"github.com/mogumo/levemagi/internal/model"
)

// recordPublisher captures published events for assertions.
type recordPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordPublisher) Publish(ctx context.Context, topic string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

func (p *recordPublisher) Close() error { return nil }

func (p *recordPublisher) published(topic string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range p.topics {
		if t == topic {
			return true
		}
	}
	return false
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestInitWithoutClientLoadsLocal(t *testing.T) {
	local := localstore.New(t.TempDir() + "/state.json")
	st := model.NewState()
	st.Nuts = append(st.Nuts, model.Nuts{ID: "nuts-1", Name: "offline", Status: model.StatusConcept})
	if err := local.Save(st); err != nil {
		t.Fatal(err)
	}

	s := New(Options{Local: local})
	s.Init(context.Background())
	defer s.Close()

	if !s.Loaded() {
		t.Fatal("store not loaded after Init")
	}
	snap := s.Snapshot()
	if len(snap.Nuts) != 1 || snap.Nuts[0].ID != "nuts-1" {
		t.Errorf("snapshot nuts = %+v, want the local nuts", snap.Nuts)
	}
}

func TestInitImportsLocalIntoEmptyRemote(t *testing.T) {
	local := localstore.New(t.TempDir() + "/state.json")
	st := model.NewState()
	st.Nuts = append(st.Nuts, model.Nuts{ID: "nuts-1", Name: "offline", Status: model.StatusActive})
	if err := local.Save(st); err != nil {
		t.Fatal(err)
	}

	client := &mockClient{}
	s := New(Options{Client: client, Local: local, PollInterval: time.Hour})
	s.Init(context.Background())
	defer s.Close()

	if !client.has("ImportState") {
		t.Fatalf("ImportState not called, calls = %v", client.callLog())
	}
	if len(client.imported) != 1 || len(client.imported[0].Nuts) != 1 {
		t.Errorf("imported state = %+v, want one nuts", client.imported)
	}
	if _, ok, _ := local.Load(); ok {
		t.Error("local snapshot not cleared after import")
	}
	snap := s.Snapshot()
	if len(snap.Nuts) != 1 || snap.Nuts[0].ID != "nuts-1" {
		t.Errorf("snapshot nuts = %+v, want the imported nuts", snap.Nuts)
	}
}

func TestInitSkipsImportWhenRemoteHasData(t *testing.T) {
	local := localstore.New(t.TempDir() + "/state.json")
	st := model.NewState()
	st.Nuts = append(st.Nuts, model.Nuts{ID: "nuts-local", Name: "offline"})
	if err := local.Save(st); err != nil {
		t.Fatal(err)
	}

	client := &mockClient{
		fetchFunc: func(ctx context.Context) (model.State, error) {
			remote := model.NewState()
			remote.Nuts = append(remote.Nuts, model.Nuts{ID: "nuts-remote", Name: "server"})
			return remote, nil
		},
	}
	s := New(Options{Client: client, Local: local, PollInterval: time.Hour})
	s.Init(context.Background())
	defer s.Close()

	if client.has("ImportState") {
		t.Error("ImportState called even though remote had data")
	}
	if _, ok, _ := local.Load(); ok {
		t.Error("stale local snapshot not cleared")
	}
	snap := s.Snapshot()
	if len(snap.Nuts) != 1 || snap.Nuts[0].ID != "nuts-remote" {
		t.Errorf("snapshot nuts = %+v, want the remote nuts", snap.Nuts)
	}
}

func TestInitFetchFailureFallsBackToLocal(t *testing.T) {
	local := localstore.New(t.TempDir() + "/state.json")
	st := model.NewState()
	st.Nuts = append(st.Nuts, model.Nuts{ID: "nuts-1", Name: "offline"})
	if err := local.Save(st); err != nil {
		t.Fatal(err)
	}

	client := &mockClient{
		fetchFunc: func(ctx context.Context) (model.State, error) {
			return model.State{}, errors.New("backend down")
		},
	}
	s := New(Options{Client: client, Local: local, PollInterval: time.Hour})
	s.Init(context.Background())
	defer s.Close()

	if !s.Loaded() {
		t.Fatal("store not loaded despite fetch failure")
	}
	snap := s.Snapshot()
	if len(snap.Nuts) != 1 || snap.Nuts[0].ID != "nuts-1" {
		t.Errorf("snapshot nuts = %+v, want the local fallback", snap.Nuts)
	}
}

func TestMutationIsOptimisticAndWritesRemote(t *testing.T) {
	client := &mockClient{}
	s := New(Options{Client: client, PollInterval: time.Hour})
	s.Init(context.Background())

	n := s.CreateNuts(model.Nuts{Name: "write me"})
	if n.ID == "" {
		t.Fatal("CreateNuts did not assign an ID")
	}
	// Visible immediately, before any remote round trip.
	snap := s.Snapshot()
	if snap.FindNuts(n.ID) == nil {
		t.Error("created nuts not visible in snapshot")
	}

	s.Close()
	if !client.has("CreateNuts:" + n.ID) {
		t.Errorf("remote CreateNuts not fired, calls = %v", client.callLog())
	}
}

func TestDeleteNutsCascades(t *testing.T) {
	s := New(Options{})
	st := model.NewState()
	st.Nuts = append(st.Nuts, model.Nuts{ID: "nuts-1"}, model.Nuts{ID: "nuts-2"})
	st.Trunks = append(st.Trunks, model.Trunk{ID: "trunk-1", NutsID: "nuts-1"})
	st.Leaves = append(st.Leaves,
		model.Leaf{ID: "leaf-1", NutsID: "nuts-1"},
		model.Leaf{ID: "leaf-2", NutsID: "nuts-1"},
		model.Leaf{ID: "leaf-3", NutsID: "nuts-2"},
	)
	st.Worklogs = append(st.Worklogs, model.Worklog{ID: "wl-1", NutsID: "nuts-1", StartedAt: time.Now()})
	st.Roots = append(st.Roots, model.Root{ID: "root-1", NutsID: "nuts-1"})
	s.adopt(st)

	if !s.DeleteNuts("nuts-1") {
		t.Fatal("DeleteNuts returned false for existing nuts")
	}
	snap := s.Snapshot()
	if snap.FindNuts("nuts-1") != nil {
		t.Error("nuts-1 still present")
	}
	if len(snap.Trunks) != 0 {
		t.Errorf("trunks = %+v, want cascade delete", snap.Trunks)
	}
	if len(snap.Leaves) != 1 || snap.Leaves[0].ID != "leaf-3" {
		t.Errorf("leaves = %+v, want only leaf-3", snap.Leaves)
	}
	if len(snap.Worklogs) != 0 {
		t.Errorf("worklogs = %+v, want cascade delete", snap.Worklogs)
	}
	// Roots are orphaned, never cascaded.
	if len(snap.Roots) != 1 {
		t.Errorf("roots = %+v, want root-1 kept", snap.Roots)
	}
}

func TestDeleteTrunkDetachesLeaves(t *testing.T) {
	s := New(Options{})
	st := model.NewState()
	st.Trunks = append(st.Trunks, model.Trunk{ID: "trunk-1", NutsID: "nuts-1"})
	st.Leaves = append(st.Leaves, model.Leaf{ID: "leaf-1", NutsID: "nuts-1", TrunkID: "trunk-1"})
	s.adopt(st)

	if !s.DeleteTrunk("trunk-1") {
		t.Fatal("DeleteTrunk returned false for existing trunk")
	}
	snap := s.Snapshot()
	if len(snap.Leaves) != 1 {
		t.Fatalf("leaves = %+v, want leaf kept", snap.Leaves)
	}
	if got := snap.Leaves[0].TrunkID; got != "" {
		t.Errorf("leaf TrunkID = %q, want detached", got)
	}
}

func TestUpdateMissingEntityReturnsFalse(t *testing.T) {
	s := New(Options{})
	s.adopt(model.NewState())

	name := "nope"
	if s.UpdateNuts("missing", api.NutsPatch{Name: &name}) {
		t.Error("UpdateNuts on missing ID = true, want false")
	}
	if s.DeleteLeaf("missing") {
		t.Error("DeleteLeaf on missing ID = true, want false")
	}
}

func TestFetchOnceDropsStaleGeneration(t *testing.T) {
	s := New(Options{})
	client := &mockClient{
		fetchFunc: func(ctx context.Context) (model.State, error) {
			// Logout lands between the request and the adopt.
			s.Logout()
			remote := model.NewState()
			remote.Nuts = append(remote.Nuts, model.Nuts{ID: "nuts-stale"})
			return remote, nil
		},
	}
	s.remote = client
	s.adopt(model.NewState())

	s.fetchOnce()
	if got := s.Snapshot().Nuts; len(got) != 0 {
		t.Errorf("stale poll response adopted: nuts = %+v", got)
	}
}

func TestPollingPausesWhileHidden(t *testing.T) {
	client := &mockClient{}
	s := New(Options{Client: client, PollInterval: 10 * time.Millisecond})
	s.Init(context.Background())
	defer s.Close()

	waitFor(t, func() bool { return len(client.callLog()) >= 2 })

	s.SetVisible(false)
	time.Sleep(30 * time.Millisecond) // let an in-flight tick drain
	before := len(client.callLog())
	time.Sleep(100 * time.Millisecond)
	after := len(client.callLog())
	if after > before+1 {
		t.Errorf("fetches while hidden: %d -> %d", before, after)
	}

	s.SetVisible(true)
	waitFor(t, func() bool { return len(client.callLog()) > after })
}

func TestLogoutStopsRemoteWrites(t *testing.T) {
	client := &mockClient{}
	s := New(Options{Client: client, PollInterval: time.Hour})
	s.Init(context.Background())

	s.Logout()
	n := s.CreateNuts(model.Nuts{Name: "local only"})
	s.Close()

	if client.has("CreateNuts:" + n.ID) {
		t.Error("remote write fired after logout")
	}
	snap := s.Snapshot()
	if snap.FindNuts(n.ID) == nil {
		t.Error("local mutation lost after logout")
	}
}
