package entities

// Group represents a node in the user group hierarchy
// Example: Public (root) -> Registered -> Author
type Group struct {
	ID       int64  // Unique group ID
	Title    string // Display name (opaque to the resolver)
	ParentID int64  // Parent group ID (0 for the root group)
	Depth    int    // Number of ancestors (root = 0)
}

// IsRoot returns true if the group has no parent
func (g *Group) IsRoot() bool {
	return g.ParentID == 0
}

// GroupTree provides ancestry lookups over a validated set of groups.
// The tree is immutable after construction; group management is an
// external concern, the resolver only reads.
type GroupTree struct {
	groups  map[int64]*Group
	ordered []*Group           // tree order (parents before children)
	paths   map[int64][]*Group // memoized root-first paths, including the group itself
}

// NewGroupTree builds a GroupTree from a flat group listing.
// Returns TreeIntegrityError if the groups do not form a single tree with
// consistent depth values.
func NewGroupTree(groups []*Group) (*GroupTree, error) {
	t := &GroupTree{
		groups: make(map[int64]*Group, len(groups)),
		paths:  make(map[int64][]*Group, len(groups)),
	}

	var root *Group
	for _, g := range groups {
		if _, exists := t.groups[g.ID]; exists {
			return nil, &TreeIntegrityError{Kind: "group", Detail: "duplicate group id"}
		}
		t.groups[g.ID] = g
		if g.IsRoot() {
			if root != nil {
				return nil, &TreeIntegrityError{Kind: "group", Detail: "multiple root groups"}
			}
			root = g
		}
	}

	if len(groups) == 0 {
		return t, nil
	}
	if root == nil {
		return nil, &TreeIntegrityError{Kind: "group", Detail: "no root group"}
	}

	// Walk each group up to the root once. This validates parent references,
	// detects cycles (a walk longer than the group count) and checks depth
	// consistency, and fills the memoized paths as a side effect.
	for _, g := range groups {
		if _, err := t.path(g.ID); err != nil {
			return nil, err
		}
	}

	// Tree order: depth-first from the root, children in listing order.
	children := make(map[int64][]*Group, len(groups))
	for _, g := range groups {
		if !g.IsRoot() {
			children[g.ParentID] = append(children[g.ParentID], g)
		}
	}
	t.ordered = make([]*Group, 0, len(groups))
	var visit func(g *Group)
	visit = func(g *Group) {
		t.ordered = append(t.ordered, g)
		for _, c := range children[g.ID] {
			visit(c)
		}
	}
	visit(root)

	return t, nil
}

// path returns the root-first path ending with the group itself,
// validating the parent chain on first computation.
func (t *GroupTree) path(id int64) ([]*Group, error) {
	if p, ok := t.paths[id]; ok {
		return p, nil
	}

	g, ok := t.groups[id]
	if !ok {
		return nil, &NotFoundError{Kind: "group", ID: id}
	}

	// Collect the chain leaf-first, bounded by the group count to catch cycles.
	chain := []*Group{g}
	cur := g
	for !cur.IsRoot() {
		parent, ok := t.groups[cur.ParentID]
		if !ok {
			return nil, &TreeIntegrityError{Kind: "group", Detail: "unknown parent group"}
		}
		if len(chain) > len(t.groups) {
			return nil, &TreeIntegrityError{Kind: "group", Detail: "cycle in parent chain"}
		}
		chain = append(chain, parent)
		cur = parent
	}

	// Reverse to root-first and verify depth matches the chain position.
	path := make([]*Group, len(chain))
	for i, pg := range chain {
		path[len(chain)-1-i] = pg
	}
	for i, pg := range path {
		if pg.Depth != i {
			return nil, &TreeIntegrityError{Kind: "group", Detail: "depth inconsistent with parent chain"}
		}
	}

	t.paths[id] = path
	return path, nil
}

// PathOf returns the root-first path of a group, including the group itself.
// The returned slice is shared and must not be mutated by the caller.
func (t *GroupTree) PathOf(id int64) ([]*Group, error) {
	return t.path(id)
}

// AncestorsOf returns the ancestors of a group, root first, excluding the
// group itself. Returns NotFoundError for an unknown group id.
func (t *GroupTree) AncestorsOf(id int64) ([]*Group, error) {
	path, err := t.path(id)
	if err != nil {
		return nil, err
	}
	return path[:len(path)-1], nil
}

// DepthOf returns the number of ancestors of a group
func (t *GroupTree) DepthOf(id int64) (int, error) {
	g, ok := t.groups[id]
	if !ok {
		return 0, &NotFoundError{Kind: "group", ID: id}
	}
	return g.Depth, nil
}

// Get returns the group with the given id
func (t *GroupTree) Get(id int64) (*Group, error) {
	g, ok := t.groups[id]
	if !ok {
		return nil, &NotFoundError{Kind: "group", ID: id}
	}
	return g, nil
}

// AllGroups returns all groups in tree order (parents before children)
func (t *GroupTree) AllGroups() []*Group {
	return t.ordered
}

// Len returns the number of groups in the tree
func (t *GroupTree) Len() int {
	return len(t.groups)
}
