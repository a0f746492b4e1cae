package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/treeline/tui/internal/commands"
	"github.com/treeline/tui/internal/filetree"
)

// Pane represents the different panes in the UI
type Pane int

const (
	TreePane Pane = iota
	PreviewPane
)

// sidebarContentWidth is the tree pane's inner width in cells.
const sidebarContentWidth = 32

// Model represents the application state
type Model struct {
	width  int
	height int

	activePane Pane

	config *Config
	themes *ThemeManager
	logger zerolog.Logger

	// Tree state
	tree   *filetree.Tree
	treeVP viewport.Model

	// Preview pane state
	preview      viewport.Model
	previewTitle string

	// Command line state
	registry *commands.Registry
	router   *commands.Router
	cmdInput textinput.Model
	cmdMode  bool

	statusBar string
}

// NewModel creates the application model rooted at the given path.
// Returns an error when the root cannot be read as a directory.
func NewModel(root string, config *Config, logger zerolog.Logger) (*Model, error) {
	if config == nil {
		config = DefaultConfig()
	}

	themes := NewThemeManager()
	if config.Theme != "" {
		themes.SetTheme(config.Theme)
	}

	cmdInput := textinput.New()
	cmdInput.Prompt = ":"
	cmdInput.CharLimit = 256

	m := &Model{
		width:        80,
		height:       24,
		activePane:   TreePane,
		config:       config,
		themes:       themes,
		logger:       logger,
		treeVP:       viewport.New(sidebarContentWidth, 20),
		preview:      viewport.New(40, 20),
		previewTitle: "help",
		cmdInput:     cmdInput,
		statusBar:    "ready",
	}
	m.registry = m.buildRegistry()
	m.router = commands.NewRouter(m.registry)
	m.preview.SetContent(helpText())

	if err := m.mountTree(root); err != nil {
		return nil, err
	}
	return m, nil
}

// Init starts the program
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// GetTheme returns the active theme
func (m *Model) GetTheme() *Theme {
	return m.themes.GetTheme()
}

// treeConfig builds the tree-wide configuration from the app config.
// Built fully here, before any node exists; the tree copies it once.
func (m *Model) treeConfig() filetree.Config {
	return filetree.Config{
		ShowHidden:     m.config.ShowHidden,
		ShowExtensions: m.config.ShowExtensions,
		OnSingleClick: func(path string) tea.Msg {
			return FileSelectedMsg{Path: path}
		},
		OnDoubleClick: func(path string) tea.Msg {
			return FileOpenedMsg{Path: path}
		},
	}
}

// mountTree builds a fresh tree at root. Rebuilding is the only way any
// setting or disk change takes effect; a mounted tree never re-scans.
func (m *Model) mountTree(root string) error {
	tree := filetree.New(root, m.treeConfig())
	if tree == nil {
		return fmt.Errorf("cannot read directory: %s", root)
	}
	m.tree = tree
	m.treeVP.GotoTop()
	m.layoutTree()
	m.renderTree()
	m.logger.Debug().Str("root", root).Msg("tree mounted")
	return nil
}

// layoutTree recomputes tree geometry for the current pane width.
func (m *Model) layoutTree() {
	m.tree.Layout(filetree.Limits{MaxWidth: m.treeVP.Width})
}

// renderTree paints the tree into the sidebar viewport. Only rows
// inside the scrolled-to window are drawn; the canvas still spans the
// full layout height so the scroll range stays correct.
func (m *Model) renderTree() {
	canvas := NewCanvas(m.treeVP.Width, m.tree.Height(), m.GetTheme().TreeRowBg)
	m.tree.Draw(canvas, m.GetTheme().Palette(), m.visibleTreeRect())
	m.treeVP.SetContent(canvas.Render())
}

// visibleTreeRect is the tree-coordinate window the sidebar shows.
func (m *Model) visibleTreeRect() filetree.Rect {
	return filetree.Rect{
		Y: m.treeVP.YOffset,
		W: m.treeVP.Width,
		H: m.treeVP.Height,
	}
}

// treeLocalPos translates terminal coordinates into tree coordinates,
// reporting whether the position is inside the tree pane's content.
func (m *Model) treeLocalPos(x, y int) (filetree.Point, bool) {
	// One border cell on each side of the pane content.
	localX := x - 1
	localY := y - 1
	inside := localX >= 0 && localX < m.treeVP.Width &&
		localY >= 0 && localY < m.treeVP.Height
	return filetree.Point{X: localX, Y: localY + m.treeVP.YOffset}, inside
}

// updateComponentSizes recomputes pane dimensions after a resize.
func (m *Model) updateComponentSizes() {
	contentHeight := m.height - 3 // borders + status bar
	if contentHeight < 1 {
		contentHeight = 1
	}

	treeWidth := sidebarContentWidth
	if treeWidth > m.width-4 {
		treeWidth = m.width - 4
	}
	if treeWidth < 10 {
		treeWidth = 10
	}

	previewWidth := m.width - treeWidth - 4 // both panes' borders
	if previewWidth < 10 {
		previewWidth = 10
	}

	m.treeVP.Width = treeWidth
	m.treeVP.Height = contentHeight
	m.preview.Width = previewWidth
	// The preview pane spends one row on its title line.
	m.preview.Height = contentHeight - 1
	if m.preview.Height < 1 {
		m.preview.Height = 1
	}
	m.cmdInput.Width = m.width - 2
}

func (m *Model) buildRegistry() *commands.Registry {
	registry := commands.NewRegistry()

	registry.Register(commands.Command{
		Name:        "hidden",
		Usage:       "hidden on|off",
		Description: "Show or hide dotfiles",
		MinArgs:     1,
		MaxArgs:     1,
		Handler: func(args []string) tea.Msg {
			show, err := parseOnOff(args[0])
			if err != nil {
				return StatusMsg{Text: "usage: hidden on|off"}
			}
			return SetHiddenMsg{Show: show}
		},
	})
	registry.Register(commands.Command{
		Name:        "ext",
		Usage:       "ext on|off",
		Description: "Show or hide file extensions",
		MinArgs:     1,
		MaxArgs:     1,
		Handler: func(args []string) tea.Msg {
			show, err := parseOnOff(args[0])
			if err != nil {
				return StatusMsg{Text: "usage: ext on|off"}
			}
			return SetExtensionsMsg{Show: show}
		},
	})
	registry.Register(commands.Command{
		Name:        "theme",
		Usage:       "theme NAME",
		Description: "Switch color theme",
		MinArgs:     1,
		MaxArgs:     1,
		Handler: func(args []string) tea.Msg {
			return SetThemeMsg{Name: args[0]}
		},
	})
	registry.Register(commands.Command{
		Name:        "root",
		Usage:       "root PATH",
		Description: "Browse a different directory",
		MinArgs:     1,
		MaxArgs:     -1,
		Handler: func(args []string) tea.Msg {
			return SetRootMsg{Path: strings.Join(args, " ")}
		},
	})
	registry.Register(commands.Command{
		Name:        "reload",
		Usage:       "reload",
		Description: "Rebuild the tree to pick up disk changes",
		Handler: func(args []string) tea.Msg {
			return ReloadMsg{}
		},
	})
	registry.Register(commands.Command{
		Name:        "help",
		Usage:       "help",
		Description: "Show help in the preview pane",
		Handler: func(args []string) tea.Msg {
			return ShowHelpMsg{}
		},
	})
	registry.Register(commands.Command{
		Name:        "quit",
		Usage:       "quit",
		Description: "Quit treeline",
		Handler: func(args []string) tea.Msg {
			return QuitMsg{}
		},
	})

	return registry
}

func parseOnOff(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}
