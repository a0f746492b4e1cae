package filetree

import "time"

// DoubleClickInterval is the longest gap between two presses that still
// counts as a double-click. Terminals expose no platform metric, so the
// conventional 500ms applies.
const DoubleClickInterval = 500 * time.Millisecond

// DoubleClickRadius is how far (in cells, chebyshev) the second press
// may land from the first and still pair with it.
const DoubleClickRadius = 1

// ClickKind classifies a press in a click sequence.
type ClickKind int

const (
	ClickSingle ClickKind = iota
	ClickDouble
	ClickTriple
)

// ClickRecord is the position, time and kind of one accepted press.
type ClickRecord struct {
	Pos  Point
	Time time.Time
	Kind ClickKind
}

// NewClick builds the record for a fresh press, chaining it onto the
// previous one: a press close enough in space and time to its
// predecessor advances the kind (single, double, triple, then back to
// double as platforms do); anything else starts over at single.
func NewClick(pos Point, t time.Time, prev *ClickRecord) ClickRecord {
	kind := ClickSingle
	if prev != nil && prev.pairsWith(pos, t) {
		switch prev.Kind {
		case ClickSingle:
			kind = ClickDouble
		case ClickDouble:
			kind = ClickTriple
		case ClickTriple:
			kind = ClickDouble
		}
	}
	return ClickRecord{Pos: pos, Time: t, Kind: kind}
}

func (c *ClickRecord) pairsWith(pos Point, t time.Time) bool {
	if t.Sub(c.Time) >= DoubleClickInterval {
		return false
	}
	dx, dy := pos.X-c.Pos.X, pos.Y-c.Pos.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= DoubleClickRadius && dy <= DoubleClickRadius
}
