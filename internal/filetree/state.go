package filetree

// VisualState is the ephemeral per-mounted-node UI state, distinct from
// the immutable node data. Open applies to directories, LastClick to
// files; Hovered is recomputed on every event pass.
type VisualState struct {
	Open      bool
	Hovered   bool
	LastClick *ClickRecord
}

// StateTree mirrors the node hierarchy with one entry per mounted node.
// Identity is positional: a state survives reconciliation only while the
// child at its position keeps the same kind and path.
type StateTree struct {
	kind Kind
	path string

	State    VisualState
	Children []*StateTree
}

// NewStateTree allocates default state for a node.
func NewStateTree(n *Node) *StateTree {
	return &StateTree{kind: n.kind, path: n.path}
}

// Matches reports whether this state belongs to the given node under
// positional identity.
func (st *StateTree) Matches(n *Node) bool {
	return st.kind == n.kind && st.path == n.path
}

// Diff reconciles the tracked child states against a newly computed
// child list. A child at the same position with the same kind and path
// keeps its state object (and with it any open flags or click records
// nested arbitrarily deep); any other child gets fresh default state.
// States with no corresponding child are dropped. Runs before layout so
// layout can read each child's open flag.
func (st *StateTree) Diff(children []*Node) {
	next := make([]*StateTree, len(children))
	for i, c := range children {
		if i < len(st.Children) && st.Children[i].Matches(c) {
			next[i] = st.Children[i]
		} else {
			next[i] = NewStateTree(c)
		}
	}
	st.Children = next
}
