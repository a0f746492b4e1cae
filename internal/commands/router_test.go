package commands

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		name  string
		args  int
	}{
		{":reload", "reload", 0},
		{"reload", "reload", 0},
		{":theme dracula", "theme", 1},
		{"  :root  /tmp  ", "root", 1},
	}
	for _, c := range cases {
		inv := Parse(c.input)
		if inv == nil {
			t.Fatalf("Parse(%q) returned nil", c.input)
		}
		if inv.Name != c.name || len(inv.Args) != c.args {
			t.Errorf("Parse(%q) = %+v, expected name %q with %d args", c.input, inv, c.name, c.args)
		}
	}

	if Parse(":") != nil || Parse("   ") != nil {
		t.Error("expected nil invocation for empty input")
	}
}

func TestDispatch(t *testing.T) {
	r := NewRegistry()
	r.Register(Command{
		Name:    "theme",
		Usage:   "theme NAME",
		MinArgs: 1,
		MaxArgs: 1,
		Handler: func(args []string) tea.Msg { return dummyMsg{args} },
	})
	router := NewRouter(r)

	cmd, err := router.Dispatch(":theme dracula")
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	msg, ok := cmd().(dummyMsg)
	if !ok || len(msg.args) != 1 || msg.args[0] != "dracula" {
		t.Errorf("handler received %v", msg)
	}
}

func TestDispatchErrors(t *testing.T) {
	r := NewRegistry()
	r.Register(Command{
		Name:    "reload",
		Usage:   "reload",
		MaxArgs: 0,
		Handler: func(args []string) tea.Msg { return dummyMsg{args} },
	})
	router := NewRouter(r)

	if _, err := router.Dispatch(":missing"); err == nil {
		t.Error("expected an error for an unknown command")
	}
	if _, err := router.Dispatch(":reload now"); err == nil {
		t.Error("expected an error for too many arguments")
	}
	if cmd, err := router.Dispatch("  "); cmd != nil || err != nil {
		t.Error("expected empty input to dispatch nothing")
	}
}
