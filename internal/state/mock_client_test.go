package state

import (
	"context"
	"sync"

	"github.com/mogumo/levemagi/internal/api"
	"github.com/mogumo/levemagi/internal/model"
)

// mockClient records every call so tests can assert on the remote
// writes a mutation fired. FetchState and ImportState are pluggable.
type mockClient struct {
	mu    sync.Mutex
	calls []string

	fetchFunc  func(ctx context.Context) (model.State, error)
	importFunc func(ctx context.Context, st model.State) (model.State, error)

	imported []model.State
}

func (m *mockClient) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockClient) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockClient) has(call string) bool {
	for _, c := range m.callLog() {
		if c == call {
			return true
		}
	}
	return false
}

func (m *mockClient) FetchState(ctx context.Context) (model.State, error) {
	m.record("FetchState")
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return model.NewState(), nil
}

func (m *mockClient) ImportState(ctx context.Context, st model.State) (model.State, error) {
	m.record("ImportState")
	m.mu.Lock()
	m.imported = append(m.imported, st)
	m.mu.Unlock()
	if m.importFunc != nil {
		return m.importFunc(ctx, st)
	}
	return st, nil
}

func (m *mockClient) CreateNuts(ctx context.Context, n model.Nuts) error {
	m.record("CreateNuts:" + n.ID)
	return nil
}

func (m *mockClient) UpdateNuts(ctx context.Context, id string, p api.NutsPatch) error {
	m.record("UpdateNuts:" + id)
	return nil
}

func (m *mockClient) DeleteNuts(ctx context.Context, id string) error {
	m.record("DeleteNuts:" + id)
	return nil
}

func (m *mockClient) CreateLeaf(ctx context.Context, l model.Leaf) error {
	m.record("CreateLeaf:" + l.ID)
	return nil
}

func (m *mockClient) UpdateLeaf(ctx context.Context, id string, p api.LeafPatch) error {
	m.record("UpdateLeaf:" + id)
	return nil
}

func (m *mockClient) DeleteLeaf(ctx context.Context, id string) error {
	m.record("DeleteLeaf:" + id)
	return nil
}

func (m *mockClient) CreateTrunk(ctx context.Context, t model.Trunk) error {
	m.record("CreateTrunk:" + t.ID)
	return nil
}

func (m *mockClient) UpdateTrunk(ctx context.Context, id string, p api.TrunkPatch) error {
	m.record("UpdateTrunk:" + id)
	return nil
}

func (m *mockClient) DeleteTrunk(ctx context.Context, id string) error {
	m.record("DeleteTrunk:" + id)
	return nil
}

func (m *mockClient) CreateRoot(ctx context.Context, r model.Root) error {
	m.record("CreateRoot:" + r.ID)
	return nil
}

func (m *mockClient) UpdateRoot(ctx context.Context, id string, p api.RootPatch) error {
	m.record("UpdateRoot:" + id)
	return nil
}

func (m *mockClient) DeleteRoot(ctx context.Context, id string) error {
	m.record("DeleteRoot:" + id)
	return nil
}

func (m *mockClient) CreatePortal(ctx context.Context, p model.Portal) error {
	m.record("CreatePortal:" + p.ID)
	return nil
}

func (m *mockClient) UpdatePortal(ctx context.Context, id string, patch api.PortalPatch) error {
	m.record("UpdatePortal:" + id)
	return nil
}

func (m *mockClient) DeletePortal(ctx context.Context, id string) error {
	m.record("DeletePortal:" + id)
	return nil
}

func (m *mockClient) CreateResource(ctx context.Context, r model.Resource) error {
	m.record("CreateResource:" + r.ID)
	return nil
}

func (m *mockClient) UpdateResource(ctx context.Context, id string, p api.ResourcePatch) error {
	m.record("UpdateResource:" + id)
	return nil
}

func (m *mockClient) DeleteResource(ctx context.Context, id string) error {
	m.record("DeleteResource:" + id)
	return nil
}

func (m *mockClient) CreateTag(ctx context.Context, t model.Tag) error {
	m.record("CreateTag:" + t.ID)
	return nil
}

func (m *mockClient) UpdateTag(ctx context.Context, id string, p api.TagPatch) error {
	m.record("UpdateTag:" + id)
	return nil
}

func (m *mockClient) DeleteTag(ctx context.Context, id string) error {
	m.record("DeleteTag:" + id)
	return nil
}

func (m *mockClient) NotifyStartWork(ctx context.Context, nutsID string) error {
	m.record("NotifyStartWork:" + nutsID)
	return nil
}

func (m *mockClient) NotifyComplete(ctx context.Context, nutsID string) error {
	m.record("NotifyComplete:" + nutsID)
	return nil
}

func (m *mockClient) NotifyGachaDraw(ctx context.Context, itemID string) error {
	m.record("NotifyGachaDraw:" + itemID)
	return nil
}

func (m *mockClient) Close() error {
	m.record("Close")
	return nil
}
