package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ThemedStyles contains all UI styles based on the current theme
type ThemedStyles struct {
	activeStyle   lipgloss.Style
	inactiveStyle lipgloss.Style
	statusStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	commandStyle  lipgloss.Style
}

// getThemedStyles returns styles based on current theme
func (m *Model) getThemedStyles() ThemedStyles {
	theme := m.GetTheme()

	return ThemedStyles{
		activeStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Selection),

		inactiveStyle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		statusStyle: lipgloss.NewStyle().
			Foreground(theme.StatusBarText).
			Background(theme.StatusBar),

		titleStyle: lipgloss.NewStyle().
			Foreground(theme.PreviewTitle).
			Bold(true),

		commandStyle: lipgloss.NewStyle().
			Foreground(theme.CommandText),
	}
}

// View renders the entire UI
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	styles := m.getThemedStyles()

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTreePane(styles),
		m.renderPreviewPane(styles),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderBottomBar(styles),
	)
}

// renderTreePane renders the file tree sidebar
func (m *Model) renderTreePane(styles ThemedStyles) string {
	style := styles.inactiveStyle
	if m.activePane == TreePane {
		style = styles.activeStyle
	}

	return style.
		Width(m.treeVP.Width).
		Height(m.treeVP.Height).
		Render(m.treeVP.View())
}

// renderPreviewPane renders the preview pane with its title
func (m *Model) renderPreviewPane(styles ThemedStyles) string {
	style := styles.inactiveStyle
	if m.activePane == PreviewPane {
		style = styles.activeStyle
	}

	title := styles.titleStyle.Render(m.previewTitle)
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.preview.View())

	return style.
		Width(m.preview.Width).
		Height(m.preview.Height).
		Render(content)
}

// renderBottomBar renders the status bar, or the command input when the
// command line is active
func (m *Model) renderBottomBar(styles ThemedStyles) string {
	if m.cmdMode {
		return styles.commandStyle.Width(m.width).Render(m.cmdInput.View())
	}

	status := fmt.Sprintf(" %s · %s", m.tree.Root(), m.statusBar)
	return styles.statusStyle.Width(m.width).Render(status)
}
