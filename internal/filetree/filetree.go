// Package filetree implements a lazy, collapsible view of a filesystem
// hierarchy. Directories enumerate their children once, on first
// expansion, and cache the result for the life of the tree; files emit
// application messages on single- and double-click; an entry that is
// neither a directory nor a regular file is shown as an inert error
// row. The package owns layout geometry, event routing and drawing; the
// host supplies a draw surface and feeds pointer events in tree
// coordinates.
//
// The tree is deliberately immutable data over a mutable disk: nothing
// is ever re-scanned, and picking up filesystem changes means building
// a fresh tree at the same root.
package filetree

// Tree is the root of one mounted file tree: the root directory node,
// the visual-state tree that shadows it, and the most recent geometry.
type Tree struct {
	cfg   Config
	root  *Node
	state *StateTree
	geom  *Geometry
}

// New builds a tree rooted at path. The configuration is copied once
// and shared read-only by every node. Returns nil when path cannot be
// enumerated as a directory; callers must check before mounting.
func New(path string, cfg Config) *Tree {
	if _, err := cfg.readDir(path); err != nil {
		return nil
	}
	t := &Tree{cfg: cfg}
	t.root = newDir(path, &t.cfg)
	t.state = NewStateTree(t.root)
	return t
}

// Root returns the root directory path.
func (t *Tree) Root() string { return t.root.path }

// Layout computes geometry for the whole visible tree under the given
// limits and retains it for event routing and drawing.
func (t *Tree) Layout(limits Limits) *Geometry {
	t.geom = layoutNode(t.root, t.state, limits)
	return t.geom
}

// Height reports the total height in rows of the last layout, or one
// row if layout has not run.
func (t *Tree) Height() int {
	if t.geom == nil {
		return RowHeight
	}
	return t.geom.Bounds.H
}

// Update routes one pointer event through the tree top-down and returns
// the shell of side effects: published messages, whether the event was
// captured, and whether the host owes a layout pass or a redraw.
// Events arriving before the first layout are ignored.
func (t *Tree) Update(ev Event) *Shell {
	shell := &Shell{}
	if t.geom == nil {
		return shell
	}
	updateNode(t.root, t.state, t.geom, ev, shell)
	return shell
}

// Draw paints the last layout onto the surface, skipping any subtree
// outside the viewport rectangle.
func (t *Tree) Draw(surf Surface, pal Palette, viewport Rect) {
	if t.geom == nil {
		return
	}
	drawNode(t.root, t.state, t.geom, surf, pal, viewport)
}
