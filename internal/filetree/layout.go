package filetree

// Geometry is computed on an integer cell grid. RowHeight is the height
// of one tree row; IndentWidth is the horizontal indent per nesting
// level. A terminal cell is roughly twice as tall as it is wide, so two
// columns stand in for one row height.
const (
	RowHeight   = 1
	IndentWidth = 2
)

// Point is a position in cells.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Limits is the constraint a parent passes down: the width to fill.
// Height is unconstrained; the tree reports whatever it needs and the
// host scrolls.
type Limits struct {
	MaxWidth int
}

// Geometry is the computed bounds of one node plus the geometry of its
// visible children, in the same coordinate space as the root.
type Geometry struct {
	Bounds   Rect
	Children []*Geometry
}

// Translate shifts the node and its whole subtree.
func (g *Geometry) Translate(dx, dy int) {
	g.Bounds.X += dx
	g.Bounds.Y += dy
	for _, c := range g.Children {
		c.Translate(dx, dy)
	}
}

// headerRect is the one-row strip at the top of a node's bounds holding
// its own (non-child) content.
func (g *Geometry) headerRect() Rect {
	return Rect{X: g.Bounds.X, Y: g.Bounds.Y, W: g.Bounds.W, H: RowHeight}
}

// layoutNode computes geometry for a node and every visible descendant.
// Files, error entries and closed directories are one row filling the
// offered width. An open directory is its header row plus its children
// stacked top to bottom with no gap, each indented by IndentWidth and
// laid out with the same limits. Reconciliation runs here, before any
// child geometry is read, so each child's own open flag is current.
func layoutNode(n *Node, st *StateTree, limits Limits) *Geometry {
	row := Rect{W: limits.MaxWidth, H: RowHeight}
	if n.kind != KindDir || !st.State.Open {
		return &Geometry{Bounds: row}
	}

	children := n.ChildrenForDisplay(true)
	st.Diff(children)

	y := RowHeight
	geoms := make([]*Geometry, len(children))
	for i, child := range children {
		g := layoutNode(child, st.Children[i], limits)
		g.Translate(IndentWidth, y)
		y += g.Bounds.H
		geoms[i] = g
	}

	return &Geometry{
		Bounds:   Rect{W: limits.MaxWidth, H: y},
		Children: geoms,
	}
}
