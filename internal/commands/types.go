// Package commands implements the colon-command surface of the
// application: a registry of named commands and a router that parses
// command-line input and dispatches it.
package commands

import tea "github.com/charmbracelet/bubbletea"

// Command is one registered colon command
type Command struct {
	Name        string
	Usage       string
	Description string
	// MinArgs and MaxArgs bound the argument count; MaxArgs < 0 means
	// unbounded.
	MinArgs int
	MaxArgs int
	// Handler produces the application message for a parsed invocation
	Handler func(args []string) tea.Msg
}

// Invocation is a parsed command line before dispatch
type Invocation struct {
	Name string
	Args []string
}
