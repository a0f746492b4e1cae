package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treeline/tui/internal/filetree"
)

// cell is one character of the canvas with its colors.
type cell struct {
	r  rune
	fg lipgloss.TerminalColor
	bg lipgloss.TerminalColor
}

// Canvas is a styled cell buffer the tree draws onto. It implements
// filetree.Surface and renders to a string the viewport can display.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas allocates a blank canvas filled with the background color.
func NewCanvas(width, height int, bg lipgloss.TerminalColor) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' ', fg: lipgloss.NoColor{}, bg: bg}
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) set(x, y int, r rune, fg, bg lipgloss.TerminalColor) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	cl := &c.cells[y][x]
	cl.r = r
	if fg != nil {
		cl.fg = fg
	}
	if bg != nil {
		cl.bg = bg
	}
}

// FillRect paints a background color over a rectangle.
func (c *Canvas) FillRect(r filetree.Rect, bg lipgloss.TerminalColor) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ' ', nil, bg)
		}
	}
}

// DrawIcon places one glyph at a cell, keeping the background.
func (c *Canvas) DrawIcon(p filetree.Point, icon rune, fg lipgloss.TerminalColor) {
	c.set(p.X, p.Y, icon, fg, nil)
}

// DrawText writes a left-aligned string clipped to a rectangle.
func (c *Canvas) DrawText(p filetree.Point, text string, fg lipgloss.TerminalColor, clip filetree.Rect) {
	if p.Y < clip.Y || p.Y >= clip.Y+clip.H {
		return
	}
	x := p.X
	for _, r := range text {
		if x >= clip.X+clip.W {
			break
		}
		if x >= clip.X {
			c.set(x, p.Y, r, fg, nil)
		}
		x++
	}
}

// Render converts the canvas to terminal text, one styled line per row.
// Runs of identically colored cells share one lipgloss render call.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var runFg, runBg lipgloss.TerminalColor
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(runFg).Background(runBg)
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.fg != runFg || cl.bg != runBg {
				flush()
				runFg, runBg = cl.fg, cl.bg
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}
