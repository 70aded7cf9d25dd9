package model

// State is the whole LeveMagi state tree. The orchestrator owns one
// State value and replaces it atomically on every mutation; callers
// only ever see copies.
type State struct {
	Nuts      []Nuts     `json:"nuts"`
	Leaves    []Leaf     `json:"leaves"`
	Trunks    []Trunk    `json:"trunks"`
	Roots     []Root     `json:"roots"`
	Portals   []Portal   `json:"portals"`
	Resources []Resource `json:"resources"`
	Worklogs  []Worklog  `json:"worklogs"`
	Tags      []Tag      `json:"tags"`
	User      UserData   `json:"user_data"`
}

// NewState returns an empty state with all collections initialized.
func NewState() State {
	return State{
		Nuts:      []Nuts{},
		Leaves:    []Leaf{},
		Trunks:    []Trunk{},
		Roots:     []Root{},
		Portals:   []Portal{},
		Resources: []Resource{},
		Worklogs:  []Worklog{},
		Tags:      []Tag{},
	}
}

// Clone returns a copy of the state with fresh collection slices, so
// the copy can be mutated without the original observing a torn write.
func (s State) Clone() State {
	c := s
	c.Nuts = append([]Nuts(nil), s.Nuts...)
	c.Leaves = append([]Leaf(nil), s.Leaves...)
	c.Trunks = append([]Trunk(nil), s.Trunks...)
	c.Roots = append([]Root(nil), s.Roots...)
	c.Portals = append([]Portal(nil), s.Portals...)
	c.Resources = append([]Resource(nil), s.Resources...)
	c.Worklogs = append([]Worklog(nil), s.Worklogs...)
	c.Tags = append([]Tag(nil), s.Tags...)
	c.User.CollectedItems = append([]string(nil), s.User.CollectedItems...)
	return c
}

// FindNuts returns the Nuts with the given ID, or nil.
func (s *State) FindNuts(id string) *Nuts {
	for i := range s.Nuts {
		if s.Nuts[i].ID == id {
			return &s.Nuts[i]
		}
	}
	return nil
}

// FindLeaf returns the Leaf with the given ID, or nil.
func (s *State) FindLeaf(id string) *Leaf {
	for i := range s.Leaves {
		if s.Leaves[i].ID == id {
			return &s.Leaves[i]
		}
	}
	return nil
}

// FindTrunk returns the Trunk with the given ID, or nil.
func (s *State) FindTrunk(id string) *Trunk {
	for i := range s.Trunks {
		if s.Trunks[i].ID == id {
			return &s.Trunks[i]
		}
	}
	return nil
}

// OpenWorklog returns the open worklog for the Nuts, or nil.
func (s *State) OpenWorklog(nutsID string) *Worklog {
	for i := range s.Worklogs {
		if s.Worklogs[i].NutsID == nutsID && s.Worklogs[i].Open() {
			return &s.Worklogs[i]
		}
	}
	return nil
}

// Related holds the entities a Portal aggregates by tag intersection.
type Related struct {
	Nuts      []Nuts
	Trunks    []Trunk
	Leaves    []Leaf
	Roots     []Root
	Resources []Resource
}

// RelatedTo computes the entities related to a Portal: anything whose
// tags intersect the portal's tags. Trunks and Leaves relate through
// their own tags or transitively through their owning Nuts' tags.
func (s *State) RelatedTo(p *Portal) Related {
	var rel Related

	nutsMatch := make(map[string]bool, len(s.Nuts))
	for _, n := range s.Nuts {
		if tagsIntersect(p.Tags, n.Tags) {
			nutsMatch[n.ID] = true
			rel.Nuts = append(rel.Nuts, n)
		}
	}
	for _, t := range s.Trunks {
		if tagsIntersect(p.Tags, t.Tags) || nutsMatch[t.NutsID] {
			rel.Trunks = append(rel.Trunks, t)
		}
	}
	for _, l := range s.Leaves {
		if nutsMatch[l.NutsID] {
			rel.Leaves = append(rel.Leaves, l)
		}
	}
	for _, r := range s.Roots {
		if tagsIntersect(p.Tags, r.Tags) {
			rel.Roots = append(rel.Roots, r)
		}
	}
	for _, r := range s.Resources {
		if tagsIntersect(p.Tags, r.Tags) {
			rel.Resources = append(rel.Resources, r)
		}
	}
	return rel
}

func tagsIntersect(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
