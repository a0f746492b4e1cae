package filetree

import "github.com/charmbracelet/lipgloss"

// Row glyphs. Terminals have no SVG rasterizer, so the icons are single
// cells drawn in front of the label.
const (
	iconDirClosed = '▸'
	iconDirOpen   = '▾'
	iconFile      = '•'
	iconError     = '✗'
	iconGuide     = '│'
)

// Surface is the draw target the tree paints one pass onto.
type Surface interface {
	// FillRect paints a background color over a rectangle.
	FillRect(r Rect, bg lipgloss.TerminalColor)
	// DrawIcon places one glyph at a cell.
	DrawIcon(p Point, icon rune, fg lipgloss.TerminalColor)
	// DrawText writes a left-aligned string starting at p, clipped to
	// the given rectangle.
	DrawText(p Point, text string, fg lipgloss.TerminalColor, clip Rect)
}

// Palette is the color set for tree rows, derived by the host from its
// active theme.
type Palette struct {
	RowBg   lipgloss.TerminalColor
	HoverBg lipgloss.TerminalColor
	Fg      lipgloss.TerminalColor
	GuideFg lipgloss.TerminalColor
	ErrorBg lipgloss.TerminalColor
	ErrorFg lipgloss.TerminalColor
}

// drawNode paints a node and its visible children. Subtrees whose
// bounds miss the viewport are skipped entirely; layout already gave
// them geometry, so scrolling and hit-testing stay consistent.
func drawNode(n *Node, st *StateTree, g *Geometry, surf Surface, pal Palette, viewport Rect) {
	if !g.Bounds.Intersects(viewport) {
		return
	}

	switch n.kind {
	case KindDir:
		drawDir(n, st, g, surf, pal, viewport)
	case KindFile:
		drawLeafRow(n.name, st.State.Hovered, iconFile, g, surf, pal)
	case KindError:
		drawErrorRow(n.name, g, surf, pal)
	}
}

func drawDir(n *Node, st *StateTree, g *Geometry, surf Surface, pal Palette, viewport Rect) {
	header := g.headerRect()

	bg := pal.RowBg
	if st.State.Hovered {
		bg = pal.HoverBg
	}
	surf.FillRect(header, bg)

	icon := iconDirClosed
	if st.State.Open {
		icon = iconDirOpen
	}
	surf.DrawIcon(Point{X: header.X, Y: header.Y}, icon, pal.Fg)
	surf.DrawText(Point{X: header.X + IndentWidth, Y: header.Y}, n.name, pal.Fg, header)

	if !st.State.Open || len(g.Children) == 0 {
		return
	}

	for i, child := range n.ChildrenForDisplay(true) {
		if i >= len(g.Children) || i >= len(st.Children) {
			break
		}
		drawNode(child, st.Children[i], g.Children[i], surf, pal, viewport)
	}

	// Guide line connecting the header to its children.
	for y := g.Bounds.Y + RowHeight; y < g.Bounds.Y+g.Bounds.H; y++ {
		if (Rect{X: g.Bounds.X, Y: y, W: 1, H: 1}).Intersects(viewport) {
			surf.DrawIcon(Point{X: g.Bounds.X, Y: y}, iconGuide, pal.GuideFg)
		}
	}
}

func drawLeafRow(name string, hovered bool, icon rune, g *Geometry, surf Surface, pal Palette) {
	bg := pal.RowBg
	if hovered {
		bg = pal.HoverBg
	}
	surf.FillRect(g.Bounds, bg)
	surf.DrawIcon(Point{X: g.Bounds.X, Y: g.Bounds.Y}, icon, pal.Fg)
	surf.DrawText(Point{X: g.Bounds.X + IndentWidth, Y: g.Bounds.Y}, name, pal.Fg, g.Bounds)
}

// drawErrorRow uses the danger palette and ignores hover: the entry is
// inert and should only signal "this exists but could not be read".
func drawErrorRow(name string, g *Geometry, surf Surface, pal Palette) {
	surf.FillRect(g.Bounds, pal.ErrorBg)
	surf.DrawIcon(Point{X: g.Bounds.X, Y: g.Bounds.Y}, iconError, pal.ErrorFg)
	surf.DrawText(Point{X: g.Bounds.X + IndentWidth, Y: g.Bounds.Y}, name, pal.ErrorFg, g.Bounds)
}
