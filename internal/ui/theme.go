package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/treeline/tui/internal/filetree"
)

// Theme represents a color scheme for the TUI
type Theme struct {
	Name        string
	Description string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Selection  lipgloss.Color

	// UI element colors
	StatusBar     lipgloss.Color
	StatusBarText lipgloss.Color
	CommandText   lipgloss.Color

	// Tree colors
	TreeRowBg   lipgloss.Color
	TreeHoverBg lipgloss.Color
	TreeFg      lipgloss.Color
	TreeGuide   lipgloss.Color
	TreeErrorBg lipgloss.Color
	TreeErrorFg lipgloss.Color

	// Preview pane colors
	PreviewFg    lipgloss.Color
	PreviewTitle lipgloss.Color
}

// Palette derives the tree widget's color set from the theme.
func (t *Theme) Palette() filetree.Palette {
	return filetree.Palette{
		RowBg:   t.TreeRowBg,
		HoverBg: t.TreeHoverBg,
		Fg:      t.TreeFg,
		GuideFg: t.TreeGuide,
		ErrorBg: t.TreeErrorBg,
		ErrorFg: t.TreeErrorFg,
	}
}

// ThemeManager manages available themes and theme switching
type ThemeManager struct {
	themes       map[string]*Theme
	currentTheme string
}

// NewThemeManager creates a new theme manager with default themes
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes:       make(map[string]*Theme),
		currentTheme: "dark",
	}

	tm.RegisterTheme(DefaultDarkTheme())
	tm.RegisterTheme(DefaultLightTheme())
	tm.RegisterTheme(SolarizedDarkTheme())
	tm.RegisterTheme(DraculaTheme())

	return tm
}

// RegisterTheme adds a new theme to the manager
func (tm *ThemeManager) RegisterTheme(theme *Theme) {
	tm.themes[theme.Name] = theme
}

// SetTheme changes the current theme
func (tm *ThemeManager) SetTheme(name string) bool {
	if _, exists := tm.themes[name]; exists {
		tm.currentTheme = name
		return true
	}
	return false
}

// GetTheme returns the current theme
func (tm *ThemeManager) GetTheme() *Theme {
	if theme, exists := tm.themes[tm.currentTheme]; exists {
		return theme
	}
	return DefaultDarkTheme()
}

// GetThemeNames returns all available theme names
func (tm *ThemeManager) GetThemeNames() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	return names
}

// GetCurrentThemeName returns the name of the current theme
func (tm *ThemeManager) GetCurrentThemeName() string {
	return tm.currentTheme
}

// DefaultDarkTheme returns the default dark theme
func DefaultDarkTheme() *Theme {
	return &Theme{
		Name:        "dark",
		Description: "Default dark theme",

		Background: lipgloss.Color("235"),
		Foreground: lipgloss.Color("252"),
		Border:     lipgloss.Color("240"),
		Selection:  lipgloss.Color("212"),

		StatusBar:     lipgloss.Color("237"),
		StatusBarText: lipgloss.Color("250"),
		CommandText:   lipgloss.Color("255"),

		TreeRowBg:   lipgloss.Color("235"),
		TreeHoverBg: lipgloss.Color("240"),
		TreeFg:      lipgloss.Color("252"),
		TreeGuide:   lipgloss.Color("238"),
		TreeErrorBg: lipgloss.Color("52"),
		TreeErrorFg: lipgloss.Color("203"),

		PreviewFg:    lipgloss.Color("252"),
		PreviewTitle: lipgloss.Color("110"),
	}
}

// DefaultLightTheme returns the default light theme
func DefaultLightTheme() *Theme {
	return &Theme{
		Name:        "light",
		Description: "Default light theme",

		Background: lipgloss.Color("255"),
		Foreground: lipgloss.Color("235"),
		Border:     lipgloss.Color("250"),
		Selection:  lipgloss.Color("33"),

		StatusBar:     lipgloss.Color("253"),
		StatusBarText: lipgloss.Color("238"),
		CommandText:   lipgloss.Color("235"),

		TreeRowBg:   lipgloss.Color("255"),
		TreeHoverBg: lipgloss.Color("252"),
		TreeFg:      lipgloss.Color("235"),
		TreeGuide:   lipgloss.Color("250"),
		TreeErrorBg: lipgloss.Color("224"),
		TreeErrorFg: lipgloss.Color("124"),

		PreviewFg:    lipgloss.Color("235"),
		PreviewTitle: lipgloss.Color("25"),
	}
}

// SolarizedDarkTheme returns a solarized dark theme
func SolarizedDarkTheme() *Theme {
	return &Theme{
		Name:        "solarized-dark",
		Description: "Solarized dark theme",

		Background: lipgloss.Color("#002b36"),
		Foreground: lipgloss.Color("#839496"),
		Border:     lipgloss.Color("#586e75"),
		Selection:  lipgloss.Color("#268bd2"),

		StatusBar:     lipgloss.Color("#073642"),
		StatusBarText: lipgloss.Color("#93a1a1"),
		CommandText:   lipgloss.Color("#fdf6e3"),

		TreeRowBg:   lipgloss.Color("#002b36"),
		TreeHoverBg: lipgloss.Color("#073642"),
		TreeFg:      lipgloss.Color("#839496"),
		TreeGuide:   lipgloss.Color("#586e75"),
		TreeErrorBg: lipgloss.Color("#3c1f1e"),
		TreeErrorFg: lipgloss.Color("#dc322f"),

		PreviewFg:    lipgloss.Color("#839496"),
		PreviewTitle: lipgloss.Color("#b58900"),
	}
}

// DraculaTheme returns a dracula theme
func DraculaTheme() *Theme {
	return &Theme{
		Name:        "dracula",
		Description: "Dracula theme",

		Background: lipgloss.Color("#282a36"),
		Foreground: lipgloss.Color("#f8f8f2"),
		Border:     lipgloss.Color("#6272a4"),
		Selection:  lipgloss.Color("#bd93f9"),

		StatusBar:     lipgloss.Color("#44475a"),
		StatusBarText: lipgloss.Color("#f8f8f2"),
		CommandText:   lipgloss.Color("#f8f8f2"),

		TreeRowBg:   lipgloss.Color("#282a36"),
		TreeHoverBg: lipgloss.Color("#44475a"),
		TreeFg:      lipgloss.Color("#f8f8f2"),
		TreeGuide:   lipgloss.Color("#6272a4"),
		TreeErrorBg: lipgloss.Color("#3d2129"),
		TreeErrorFg: lipgloss.Color("#ff5555"),

		PreviewFg:    lipgloss.Color("#f8f8f2"),
		PreviewTitle: lipgloss.Color("#8be9fd"),
	}
}
