package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Router parses command-line input and dispatches it through a registry
type Router struct {
	registry *Registry
}

// NewRouter creates a router over a registry
func NewRouter(registry *Registry) *Router {
	return &Router{registry: registry}
}

// Parse splits raw input (with or without the leading colon) into an
// invocation. Empty input returns nil.
func Parse(input string) *Invocation {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	if input == "" {
		return nil
	}
	fields := strings.Fields(input)
	return &Invocation{Name: fields[0], Args: fields[1:]}
}

// Dispatch parses input, validates it against the registered command
// and returns the command's message producer. Unknown names and bad
// argument counts come back as errors for the status bar.
func (r *Router) Dispatch(input string) (tea.Cmd, error) {
	inv := Parse(input)
	if inv == nil {
		return nil, nil
	}

	cmd := r.registry.Get(inv.Name)
	if cmd == nil {
		return nil, fmt.Errorf("unknown command: %s", inv.Name)
	}

	if len(inv.Args) < cmd.MinArgs {
		return nil, fmt.Errorf("usage: %s", cmd.Usage)
	}
	if cmd.MaxArgs >= 0 && len(inv.Args) > cmd.MaxArgs {
		return nil, fmt.Errorf("usage: %s", cmd.Usage)
	}

	args := inv.Args
	handler := cmd.Handler
	return func() tea.Msg {
		return handler(args)
	}, nil
}
