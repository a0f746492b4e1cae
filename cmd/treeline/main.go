package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/treeline/tui/internal/ui"
)

func main() {
	logger := newLogger()

	config, err := ui.LoadConfig()
	if err != nil {
		logger.Warn().Err(err).Msg("config unreadable, using defaults")
		config = ui.DefaultConfig()
	}

	root := config.Root
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "treeline: %v\n", err)
			os.Exit(1)
		}
	}

	model, err := ui.NewModel(root, config, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "treeline: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion events
	)

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program failed")
		fmt.Fprintf(os.Stderr, "treeline: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes debug logs to the file named by TREELINE_LOG. A
// fullscreen TUI owns the terminal, so without the variable logging is
// disabled entirely.
func newLogger() zerolog.Logger {
	path := os.Getenv("TREELINE_LOG")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
