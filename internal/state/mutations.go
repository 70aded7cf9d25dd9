package state

import (
	"context"

	"github.com/mogumo/levemagi/internal/api"
	"github.com/mogumo/levemagi/internal/idgen"
	"github.com/mogumo/levemagi/internal/model"
)

// Every mutation below follows the same shape: apply the change to the
// in-memory tree synchronously, then fire the matching remote write
// without waiting for it.

// --- Nuts ---

// CreateNuts adds a Nuts, filling ID, defaults and CreatedAt, and
// returns the stored value.
func (s *Store) CreateNuts(n model.Nuts) model.Nuts {
	if n.ID == "" {
		n.ID = idgen.MustNew("nuts")
	}
	if n.Status == "" {
		n.Status = model.StatusConcept
	}
	if n.Priority == "" {
		n.Priority = model.PriorityMedium
	}
	n.CreatedAt = s.now()

	s.mutate(func(st *model.State) {
		st.Nuts = append(st.Nuts, n)
	})
	s.asyncWrite("create nuts", func(ctx context.Context, c api.Client) error {
		return c.CreateNuts(ctx, n)
	})
	return n
}

// UpdateNuts applies a partial patch. Returns false when the Nuts does
// not exist.
func (s *Store) UpdateNuts(id string, p api.NutsPatch) bool {
	var found bool
	s.mutate(func(st *model.State) {
		n := st.FindNuts(id)
		if n == nil {
			return
		}
		found = true
		applyNutsPatch(n, p)
	})
	if !found {
		return false
	}
	s.asyncWrite("update nuts", func(ctx context.Context, c api.Client) error {
		return c.UpdateNuts(ctx, id, p)
	})
	return true
}

// DeleteNuts removes a Nuts and cascades to its Trunks, Leaves and
// Worklogs. Roots referencing it are kept (orphaned).
func (s *Store) DeleteNuts(id string) bool {
	var found bool
	s.mutate(func(st *model.State) {
		kept := st.Nuts[:0]
		for _, n := range st.Nuts {
			if n.ID == id {
				found = true
				continue
			}
			kept = append(kept, n)
		}
		st.Nuts = kept
		if !found {
			return
		}

		trunks := st.Trunks[:0]
		for _, t := range st.Trunks {
			if t.NutsID != id {
				trunks = append(trunks, t)
			}
		}
		st.Trunks = trunks

		leaves := st.Leaves[:0]
		for _, l := range st.Leaves {
			if l.NutsID != id {
				leaves = append(leaves, l)
			}
		}
		st.Leaves = leaves

		logs := st.Worklogs[:0]
		for _, w := range st.Worklogs {
			if w.NutsID != id {
				logs = append(logs, w)
			}
		}
		st.Worklogs = logs
	})
	if !found {
		return false
	}
	s.asyncWrite("delete nuts", func(ctx context.Context, c api.Client) error {
		return c.DeleteNuts(ctx, id)
	})
	return true
}

// --- Leaves ---

// CreateLeaf adds a Leaf with defaults filled.
func (s *Store) CreateLeaf(l model.Leaf) model.Leaf {
	if l.ID == "" {
		l.ID = idgen.MustNew("leaf")
	}
	if l.Difficulty == "" {
		l.Difficulty = model.DifficultyNormal
	}
	if l.Priority == "" {
		l.Priority = model.PriorityMedium
	}
	l.CreatedAt = s.now()

	s.mutate(func(st *model.State) {
		st.Leaves = append(st.Leaves, l)
	})
	s.asyncWrite("create leaf", func(ctx context.Context, c api.Client) error {
		return c.CreateLeaf(ctx, l)
	})
	return l
}

// UpdateLeaf applies a partial patch.
func (s *Store) UpdateLeaf(id string, p api.LeafPatch) bool {
	var found bool
	s.mutate(func(st *model.State) {
		l := st.FindLeaf(id)
		if l == nil {
			return
		}
		found = true
		applyLeafPatch(l, p)
	})
	if !found {
		return false
	}
	s.asyncWrite("update leaf", func(ctx context.Context, c api.Client) error {
		return c.UpdateLeaf(ctx, id, p)
	})
	return true
}

// StartLeaf stamps StartedAt on a pending Leaf.
func (s *Store) StartLeaf(id string) bool {
	now := s.now()
	return s.UpdateLeaf(id, api.LeafPatch{StartedAt: &now})
}

// DeleteLeaf removes a Leaf.
func (s *Store) DeleteLeaf(id string) bool {
	var found bool
	s.mutate(func(st *model.State) {
		kept := st.Leaves[:0]
		for _, l := range st.Leaves {
			if l.ID == id {
				found = true
				continue
			}
			kept = append(kept, l)
		}
		st.Leaves = kept
	})
	if !found {
		return false
	}
	s.asyncWrite("delete leaf", func(ctx context.Context, c api.Client) error {
		return c.DeleteLeaf(ctx, id)
	})
	return true
}

// --- Trunks ---

// CreateTrunk adds a Trunk with defaults filled.
func (s *Store) CreateTrunk(t model.Trunk) model.Trunk {
	if t.ID == "" {
		t.ID = idgen.MustNew("trunk")
	}
	if t.Type == "" {
		t.Type = model.TrunkIssue
	}
	if t.Status == "" {
		t.Status = model.TrunkPending
	}
	if t.Value == 0 {
		t.Value = 2
	}
	t.CreatedAt = s.now()

	s.mutate(func(st *model.State) {
		st.Trunks = append(st.Trunks, t)
	})
	s.asyncWrite("create trunk", func(ctx context.Context, c api.Client) error {
		return c.CreateTrunk(ctx, t)
	})
	return t
}

// UpdateTrunk applies a partial patch.
func (s *Store) UpdateTrunk(id string, p api.TrunkPatch) bool {
	var found bool
	s.mutate(func(st *model.State) {
		t := st.FindTrunk(id)
		if t == nil {
			return
		}
		found = true
		applyTrunkPatch(t, p)
	})
	if !found {
		return false
	}
	s.asyncWrite("update trunk", func(ctx context.Context, c api.Client) error {
		return c.UpdateTrunk(ctx, id, p)
	})
	return true
}

// DeleteTrunk removes a Trunk and detaches (not deletes) its child
// Leaves by clearing their TrunkID.
func (s *Store) DeleteTrunk(id string) bool {
	var found bool
	s.mutate(func(st *model.State) {
		kept := st.Trunks[:0]
		for _, t := range st.Trunks {
			if t.ID == id {
				found = true
				continue
			}
			kept = append(kept, t)
		}
		st.Trunks = kept
		if !found {
			return
		}
		for i := range st.Leaves {
			if st.Leaves[i].TrunkID == id {
				st.Leaves[i].TrunkID = ""
			}
		}
	})
	if !found {
		return false
	}
	s.asyncWrite("delete trunk", func(ctx context.Context, c api.Client) error {
		return c.DeleteTrunk(ctx, id)
	})
	return true
}

// --- Roots ---

// CreateRoot adds a Root with defaults filled.
func (s *Store) CreateRoot(r model.Root) model.Root {
	if r.ID == "" {
		r.ID = idgen.MustNew("root")
	}
	if r.Type == "" {
		r.Type = model.RootSeed
	}
	r.CreatedAt = s.now()

	s.mutate(func(st *model.State) {
		st.Roots = append(st.Roots, r)
	})
	s.asyncWrite("create root", func(ctx context.Context, c api.Client) error {
		return c.CreateRoot(ctx, r)
	})
	return r
}

// UpdateRoot applies a partial patch.
func (s *Store) UpdateRoot(id string, p api.RootPatch) bool {
	var found bool
	s.mutate(func(st *model.State) {
		for i := range st.Roots {
			if st.Roots[i].ID == id {
				found = true
				applyRootPatch(&st.Roots[i], p)
				return
			}
		}
	})
	if !found {
		return false
	}
	s.asyncWrite("update root", func(ctx context.Context, c api.Client) error {
		return c.UpdateRoot(ctx, id, p)
	})
	return true
}

// PromoteRoot advances a Root one step along the promotion path.
func (s *Store) PromoteRoot(id string) bool {
	var next model.RootType
	var found bool
	s.mutate(func(st *model.State) {
		for i := range st.Roots {
			if st.Roots[i].ID == id {
				found = true
				next = st.Roots[i].Type.Next()
				st.Roots[i].Type = next
				return
			}
		}
	})
	if !found {
		return false
	}
	s.asyncWrite("promote root", func(ctx context.Context, c api.Client) error {
		return c.UpdateRoot(ctx, id, api.RootPatch{Type: &next})
	})
	return true
}

// DeleteRoot removes a Root.
func (s *Store) DeleteRoot(id string) bool {
	var found bool
	s.mutate(func(st *model.State) {
		kept := st.Roots[:0]
		for _, r := range st.Roots {
			if r.ID == id {
				found = true
				continue
			}
			kept = append(kept, r)
		}
		st.Roots = kept
	})
	if !found {
		return false
	}
	s.asyncWrite("delete root", func(ctx context.Context, c api.Client) error {
		return c.DeleteRoot(ctx, id)
	})
	return true
}

// --- Portals ---

// CreatePortal adds a Portal.
func (s *Store) CreatePortal(p model.Portal) model.Portal {
	if p.ID == "" {
		p.ID = idgen.MustNew("portal")
	}
	if p.Category == "" {
		p.Category = model.PortalOther
	}
	p.CreatedAt = s.now()

	s.mutate(func(st *model.State) {
		st.Portals = append(st.Portals, p)
	})
	s.asyncWrite("create portal", func(ctx context.Context, c api.Client) error {
		return c.CreatePortal(ctx, p)
	})
	return p
}

// UpdatePortal applies a partial patch.
func (s *Store) UpdatePortal(id string, p api.PortalPatch) bool {
	var found bool
	s.mutate(func(st *model.State) {
		for i := range st.Portals {
			if st.Portals[i].ID == id {
				found = true
				applyPortalPatch(&st.Portals[i], p)
				return
			}
		}
	})
	if !found {
		return false
	}
	s.asyncWrite("update portal", func(ctx context.Context, c api.Client) error {
		return c.UpdatePortal(ctx, id, p)
	})
	return true
}

// DeletePortal removes a Portal. Related entities are untouched; the
// relation was only ever computed from tags.
func (s *Store) DeletePortal(id string) bool {
	var found bool
	s.mutate(func(st *model.State) {
		kept := st.Portals[:0]
		for _, p := range st.Portals {
			if p.ID == id {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		st.Portals = kept
	})
	if !found {
		return false
	}
	s.asyncWrite("delete portal", func(ctx context.Context, c api.Client) error {
		return c.DeletePortal(ctx, id)
	})
	return true
}

// --- Resources ---

// CreateResource adds a Resource.
func (s *Store) CreateResource(r model.Resource) model.Resource {
	if r.ID == "" {
		r.ID = idgen.MustNew("res")
	}
	if r.Type == "" {
		r.Type = model.ResourceDocument
	}
	r.CreatedAt = s.now()

	s.mutate(func(st *model.State) {
		st.Resources = append(st.Resources, r)
	})
	s.asyncWrite("create resource", func(ctx context.Context, c api.Client) error {
		return c.CreateResource(ctx, r)
	})
	return r
}

// UpdateResource applies a partial patch.
func (s *Store) UpdateResource(id string, p api.ResourcePatch) bool {
	var found bool
	s.mutate(func(st *model.State) {
		for i := range st.Resources {
			if st.Resources[i].ID == id {
				found = true
				applyResourcePatch(&st.Resources[i], p)
				return
			}
		}
	})
	if !found {
		return false
	}
	s.asyncWrite("update resource", func(ctx context.Context, c api.Client) error {
		return c.UpdateResource(ctx, id, p)
	})
	return true
}

// DeleteResource removes a Resource.
func (s *Store) DeleteResource(id string) bool {
	var found bool
	s.mutate(func(st *model.State) {
		kept := st.Resources[:0]
		for _, r := range st.Resources {
			if r.ID == id {
				found = true
				continue
			}
			kept = append(kept, r)
		}
		st.Resources = kept
	})
	if !found {
		return false
	}
	s.asyncWrite("delete resource", func(ctx context.Context, c api.Client) error {
		return c.DeleteResource(ctx, id)
	})
	return true
}

// --- Tags ---

// CreateTag adds a Tag.
func (s *Store) CreateTag(t model.Tag) model.Tag {
	if t.ID == "" {
		t.ID = idgen.MustNew("tag")
	}
	s.mutate(func(st *model.State) {
		st.Tags = append(st.Tags, t)
	})
	s.asyncWrite("create tag", func(ctx context.Context, c api.Client) error {
		return c.CreateTag(ctx, t)
	})
	return t
}

// UpdateTag applies a partial patch.
func (s *Store) UpdateTag(id string, p api.TagPatch) bool {
	var found bool
	s.mutate(func(st *model.State) {
		for i := range st.Tags {
			if st.Tags[i].ID == id {
				found = true
				if p.Name != nil {
					st.Tags[i].Name = *p.Name
				}
				if p.IsFavorite != nil {
					st.Tags[i].IsFavorite = *p.IsFavorite
				}
				return
			}
		}
	})
	if !found {
		return false
	}
	s.asyncWrite("update tag", func(ctx context.Context, c api.Client) error {
		return c.UpdateTag(ctx, id, p)
	})
	return true
}

// DeleteTag removes a Tag.
func (s *Store) DeleteTag(id string) bool {
	var found bool
	s.mutate(func(st *model.State) {
		kept := st.Tags[:0]
		for _, t := range st.Tags {
			if t.ID == id {
				found = true
				continue
			}
			kept = append(kept, t)
		}
		st.Tags = kept
	})
	if !found {
		return false
	}
	s.asyncWrite("delete tag", func(ctx context.Context, c api.Client) error {
		return c.DeleteTag(ctx, id)
	})
	return true
}

// --- patch application ---

func applyNutsPatch(n *model.Nuts, p api.NutsPatch) {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Status != nil {
		n.Status = *p.Status
	}
	if p.Priority != nil {
		n.Priority = *p.Priority
	}
	if p.Difficulty != nil {
		n.Difficulty = *p.Difficulty
	}
	if p.Tags != nil {
		n.Tags = p.Tags
	}
	if p.StartDate != nil {
		n.StartDate = p.StartDate
	}
	if p.Deadline != nil {
		n.Deadline = p.Deadline
	}
}

func applyLeafPatch(l *model.Leaf, p api.LeafPatch) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Difficulty != nil {
		l.Difficulty = *p.Difficulty
	}
	if p.Priority != nil {
		l.Priority = *p.Priority
	}
	if p.NutsID != nil {
		l.NutsID = *p.NutsID
	}
	if p.TrunkID != nil {
		l.TrunkID = *p.TrunkID
	}
	if p.StartedAt != nil {
		l.StartedAt = p.StartedAt
	}
	if p.CompletedAt != nil {
		l.CompletedAt = p.CompletedAt
	}
	if p.ActualHours != nil {
		l.ActualHours = p.ActualHours
	}
	if p.BonusHours != nil {
		l.BonusHours = p.BonusHours
	}
	if p.XPSubtotal != nil {
		l.XPSubtotal = p.XPSubtotal
	}
}

func applyTrunkPatch(t *model.Trunk, p api.TrunkPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Value != nil {
		t.Value = *p.Value
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.What != nil {
		t.What = *p.What
	}
	if p.Idea != nil {
		t.Idea = *p.Idea
	}
	if p.Conclusion != nil {
		t.Conclusion = *p.Conclusion
	}
	if p.Tags != nil {
		t.Tags = p.Tags
	}
}

func applyRootPatch(r *model.Root, p api.RootPatch) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.NutsID != nil {
		r.NutsID = *p.NutsID
	}
	if p.Difficulty != nil {
		r.Difficulty = *p.Difficulty
	}
	if p.What != nil {
		r.What = *p.What
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
	if p.Tags != nil {
		r.Tags = p.Tags
	}
}

func applyPortalPatch(pt *model.Portal, p api.PortalPatch) {
	if p.Name != nil {
		pt.Name = *p.Name
	}
	if p.Category != nil {
		pt.Category = *p.Category
	}
	if p.Description != nil {
		pt.Description = *p.Description
	}
	if p.Tags != nil {
		pt.Tags = p.Tags
	}
	if p.Rating != nil {
		pt.Rating = *p.Rating
	}
}

func applyResourcePatch(r *model.Resource, p api.ResourcePatch) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Tags != nil {
		r.Tags = p.Tags
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.URL != nil {
		r.URL = *p.URL
	}
}
