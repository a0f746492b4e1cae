package filetree

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EventKind discriminates the pointer events the tree reacts to.
type EventKind int

const (
	// EventMouseMove is cursor motion; it only recomputes hover.
	EventMouseMove EventKind = iota
	// EventMousePress is a left-button press.
	EventMousePress
)

// Event is one pointer event in the tree's own coordinate space (the
// same space the layout geometry uses, after the host has removed pane
// offsets and added scroll).
type Event struct {
	Kind EventKind
	Pos  Point
	Time time.Time
}

// Shell collects the side effects of one event pass: published
// application messages, the capture flag, and the two independent
// host signals ("recompute layout" and "redraw").
type Shell struct {
	msgs          []tea.Msg
	captured      bool
	layoutInvalid bool
	redrawNeeded  bool
}

// Publish queues an application message for the host.
func (s *Shell) Publish(msg tea.Msg) {
	if msg != nil {
		s.msgs = append(s.msgs, msg)
	}
}

// Capture marks the event as consumed.
func (s *Shell) Capture() { s.captured = true }

// Captured reports whether some node consumed the event.
func (s *Shell) Captured() bool { return s.captured }

// InvalidateLayout asks the host for a layout pass before the next draw.
func (s *Shell) InvalidateLayout() { s.layoutInvalid = true }

// LayoutInvalid reports whether geometry must be recomputed.
func (s *Shell) LayoutInvalid() bool { return s.layoutInvalid }

// RequestRedraw asks the host for a redraw.
func (s *Shell) RequestRedraw() { s.redrawNeeded = true }

// RedrawNeeded reports whether a redraw was requested.
func (s *Shell) RedrawNeeded() bool { return s.redrawNeeded }

// Messages returns the application messages published during the pass.
func (s *Shell) Messages() []tea.Msg { return s.msgs }

// updateNode routes one event through a node and, in document order,
// its visible children. The node inspects its own header region first;
// a toggle there captures the event so descendants never see it, but
// later siblings at the same level are still offered the event by the
// shared parent loop.
func updateNode(n *Node, st *StateTree, g *Geometry, ev Event, shell *Shell) {
	switch n.kind {
	case KindDir:
		updateDir(n, st, g, ev, shell)
	case KindFile:
		updateFile(n, st, g, ev, shell)
	case KindError:
		// Inert: never hovers, never captures, never publishes.
	}
}

func updateDir(n *Node, st *StateTree, g *Geometry, ev Event, shell *Shell) {
	wasHovered := st.State.Hovered

	if shell.Captured() {
		st.State.Hovered = false
		if wasHovered {
			shell.RequestRedraw()
		}
		return
	}

	if g.headerRect().Contains(ev.Pos) {
		st.State.Hovered = true
		if ev.Kind == EventMousePress {
			st.State.Open = !st.State.Open
			shell.InvalidateLayout()
			shell.RequestRedraw()
			shell.Capture()
		}
	} else {
		st.State.Hovered = false
	}

	if wasHovered != st.State.Hovered {
		shell.RequestRedraw()
	}

	if !st.State.Open {
		return
	}

	children := n.ChildrenForDisplay(true)
	st.Diff(children)
	for i, child := range children {
		// A toggle can leave geometry one pass behind the child list;
		// children without bounds wait for the next layout.
		if i >= len(g.Children) {
			break
		}
		updateNode(child, st.Children[i], g.Children[i], ev, shell)
	}
}

func updateFile(n *Node, st *StateTree, g *Geometry, ev Event, shell *Shell) {
	if shell.Captured() {
		if st.State.Hovered {
			st.State.Hovered = false
			shell.RequestRedraw()
		}
		return
	}

	hovered := g.Bounds.Contains(ev.Pos)
	if hovered != st.State.Hovered {
		st.State.Hovered = hovered
		shell.RequestRedraw()
	}

	if ev.Kind != EventMousePress || !hovered {
		return
	}

	// Single-click fires on every accepted press; the double-click
	// detector runs independently and the record updates regardless of
	// its outcome.
	if n.cfg.OnSingleClick != nil {
		shell.Publish(n.cfg.OnSingleClick(n.path))
	}
	click := NewClick(ev.Pos, ev.Time, st.State.LastClick)
	if click.Kind == ClickDouble && n.cfg.OnDoubleClick != nil {
		shell.Publish(n.cfg.OnDoubleClick(n.path))
	}
	st.State.LastClick = &click

	shell.Capture()
}
