package ui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// previewLimit caps how much of a file the preview pane loads.
const previewLimit = 256 * 1024

// loadPreview reads a file and prepares it for the preview pane.
// Markdown renders through glamour; other text shows raw; binary
// content is refused.
func loadPreview(path string, width int) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return PreviewLoadedMsg{Path: path, Err: err}
		}
		if len(data) > previewLimit {
			data = data[:previewLimit]
		}
		if bytes.ContainsRune(data, 0) {
			return PreviewLoadedMsg{
				Path: path,
				Err:  fmt.Errorf("%s: binary file", filepath.Base(path)),
			}
		}

		content := string(data)
		if isMarkdown(path) {
			rendered, err := renderMarkdown(content, width)
			if err == nil {
				content = rendered
			}
			// On a render failure the raw markdown is still worth showing.
		}
		return PreviewLoadedMsg{Path: path, Content: content}
	}
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func renderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}

// helpText is what the preview pane shows for :help and at startup.
func helpText() string {
	return strings.TrimSpace(`
treeline

Mouse
  click a directory row   toggle open/closed
  click a file row        preview it here
  double-click a file     open it in $EDITOR
  wheel                   scroll the tree

Keys
  tab        switch pane
  j/k/↑/↓    scroll the focused pane
  :          command line
  q, ctrl+c  quit

Commands
  :hidden on|off   show or hide dotfiles (rebuilds the tree)
  :ext on|off      show or hide file extensions (rebuilds the tree)
  :theme NAME      switch theme (dark, light, solarized-dark, dracula)
  :root PATH       browse a different directory
  :reload          rebuild the tree to pick up disk changes
  :help            show this help
  :quit            quit
`)
}
