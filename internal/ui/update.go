package ui

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treeline/tui/internal/filetree"
)

// Update handles all state transitions
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateComponentSizes()
		m.layoutTree()
		m.renderTree()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FileSelectedMsg:
		m.logger.Debug().Str("path", msg.Path).Msg("file selected")
		m.statusBar = msg.Path
		return m, loadPreview(msg.Path, m.preview.Width)

	case FileOpenedMsg:
		m.logger.Debug().Str("path", msg.Path).Msg("file opened")
		return m, m.openInEditor(msg.Path)

	case EditorFinishedMsg:
		if msg.Err != nil {
			m.statusBar = fmt.Sprintf("editor: %v", msg.Err)
		}
		return m, nil

	case PreviewLoadedMsg:
		if msg.Err != nil {
			m.statusBar = msg.Err.Error()
			return m, nil
		}
		m.previewTitle = filepath.Base(msg.Path)
		m.preview.SetContent(msg.Content)
		m.preview.GotoTop()
		return m, nil

	case SetHiddenMsg:
		m.config.ShowHidden = msg.Show
		return m, m.applyConfig(fmt.Sprintf("hidden files: %s", onOff(msg.Show)))

	case SetExtensionsMsg:
		m.config.ShowExtensions = msg.Show
		return m, m.applyConfig(fmt.Sprintf("extensions: %s", onOff(msg.Show)))

	case SetThemeMsg:
		if !m.themes.SetTheme(msg.Name) {
			m.statusBar = fmt.Sprintf("unknown theme: %s", msg.Name)
			return m, nil
		}
		m.config.Theme = msg.Name
		m.renderTree()
		m.statusBar = fmt.Sprintf("theme: %s", msg.Name)
		return m, saveConfig(m.config)

	case SetRootMsg:
		if err := m.mountTree(msg.Path); err != nil {
			m.statusBar = err.Error()
			return m, nil
		}
		m.config.Root = m.tree.Root()
		m.statusBar = fmt.Sprintf("root: %s", m.tree.Root())
		return m, saveConfig(m.config)

	case ReloadMsg:
		root := m.tree.Root()
		if err := m.mountTree(root); err != nil {
			m.statusBar = err.Error()
			return m, nil
		}
		m.statusBar = fmt.Sprintf("reloaded %s", root)
		return m, nil

	case ShowHelpMsg:
		m.previewTitle = "help"
		m.preview.SetContent(helpText())
		m.preview.GotoTop()
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case StatusMsg:
		m.statusBar = msg.Text
		return m, nil

	case TreeRebuiltMsg:
		m.statusBar = fmt.Sprintf("root: %s", msg.Root)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cmdMode {
		switch msg.String() {
		case "esc":
			m.leaveCmdMode()
			return m, nil
		case "enter":
			input := m.cmdInput.Value()
			m.leaveCmdMode()
			cmd, err := m.router.Dispatch(input)
			if err != nil {
				m.statusBar = err.Error()
				return m, nil
			}
			return m, cmd
		}
		var cmd tea.Cmd
		m.cmdInput, cmd = m.cmdInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case ":":
		m.cmdMode = true
		m.cmdInput.SetValue("")
		return m, m.cmdInput.Focus()
	case "tab":
		if m.activePane == TreePane {
			m.activePane = PreviewPane
		} else {
			m.activePane = TreePane
		}
		return m, nil
	case "?":
		return m, func() tea.Msg { return ShowHelpMsg{} }
	}

	// Remaining keys scroll the focused pane.
	var cmd tea.Cmd
	switch m.activePane {
	case TreePane:
		before := m.treeVP.YOffset
		m.treeVP, cmd = m.treeVP.Update(msg)
		if m.treeVP.YOffset != before {
			m.renderTree()
		}
	case PreviewPane:
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return m.handleWheel(msg)
	}

	pos, inside := m.treeLocalPos(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if !inside {
			// Clear hover when the cursor leaves the pane.
			pos = filetree.Point{X: -1, Y: -1}
		}
		return m, m.routeTreeEvent(filetree.Event{
			Kind: filetree.EventMouseMove,
			Pos:  pos,
		})

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m, nil
		}
		if m.activePane != TreePane {
			m.activePane = TreePane
		}
		return m, m.routeTreeEvent(filetree.Event{
			Kind: filetree.EventMousePress,
			Pos:  pos,
			Time: time.Now(),
		})
	}

	return m, nil
}

func (m *Model) handleWheel(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	_, overTree := m.treeLocalPos(msg.X, msg.Y)
	lines := 3

	if overTree {
		if msg.Button == tea.MouseButtonWheelUp {
			m.treeVP.LineUp(lines)
		} else {
			m.treeVP.LineDown(lines)
		}
		// The draw-time clipping window moved.
		m.renderTree()
		return m, nil
	}

	if msg.Button == tea.MouseButtonWheelUp {
		m.preview.LineUp(lines)
	} else {
		m.preview.LineDown(lines)
	}
	return m, nil
}

// routeTreeEvent feeds one pointer event through the tree and turns the
// resulting shell into bubbletea commands.
func (m *Model) routeTreeEvent(ev filetree.Event) tea.Cmd {
	shell := m.tree.Update(ev)

	if shell.LayoutInvalid() {
		m.layoutTree()
	}
	if shell.LayoutInvalid() || shell.RedrawNeeded() {
		m.renderTree()
	}

	msgs := shell.Messages()
	if len(msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(msgs))
	for i, msg := range msgs {
		msg := msg
		cmds[i] = func() tea.Msg { return msg }
	}
	return tea.Batch(cmds...)
}

func (m *Model) leaveCmdMode() {
	m.cmdMode = false
	m.cmdInput.Blur()
	m.cmdInput.SetValue("")
}

// applyConfig persists the configuration and rebuilds the tree so the
// new settings take effect (settings are fixed per tree instance).
func (m *Model) applyConfig(status string) tea.Cmd {
	root := m.tree.Root()
	if err := m.mountTree(root); err != nil {
		m.statusBar = err.Error()
		return nil
	}
	m.statusBar = status
	return saveConfig(m.config)
}

func (m *Model) openInEditor(path string) tea.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		m.statusBar = "EDITOR is not set"
		return nil
	}
	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return EditorFinishedMsg{Err: err}
	})
}

func saveConfig(config *Config) tea.Cmd {
	cfg := *config
	return func() tea.Msg {
		if err := SaveConfig(&cfg); err != nil {
			return StatusMsg{Text: fmt.Sprintf("config: %v", err)}
		}
		return nil
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
