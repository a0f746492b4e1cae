package filetree

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewRejectsUnreadablePaths(t *testing.T) {
	if tr := New(filepath.Join(t.TempDir(), "missing"), Config{}); tr != nil {
		t.Error("expected nil tree for a nonexistent path")
	}

	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if tr := New(file, Config{}); tr != nil {
		t.Error("expected nil tree for a file path")
	}
}

func TestNewAcceptsReadableDirectory(t *testing.T) {
	root := t.TempDir()
	tr := New(root, Config{ShowExtensions: true})
	if tr == nil {
		t.Fatal("expected a tree for a readable directory")
	}
	if tr.Root() != root {
		t.Errorf("root path = %q, expected %q", tr.Root(), root)
	}
}

func TestHeightBeforeAndAfterLayout(t *testing.T) {
	tr := New(t.TempDir(), Config{})
	if tr.Height() != RowHeight {
		t.Errorf("height before layout = %d, expected %d", tr.Height(), RowHeight)
	}

	tr.Layout(Limits{MaxWidth: 20})
	if tr.Height() != RowHeight {
		t.Errorf("closed root height = %d, expected %d", tr.Height(), RowHeight)
	}
}

func TestUpdateBeforeLayoutIsIgnored(t *testing.T) {
	tr := New(t.TempDir(), Config{})
	shell := tr.Update(Event{Kind: EventMousePress, Pos: Point{}, Time: time.Now()})
	if shell.Captured() || len(shell.Messages()) != 0 {
		t.Error("expected events before layout to be ignored")
	}
}

func TestTreeClickThrough(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "note.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var single []string
	tr := New(root, Config{
		ShowExtensions: true,
		OnSingleClick: func(path string) tea.Msg {
			single = append(single, path)
			return singleClicked{path}
		},
	})
	if tr == nil {
		t.Fatal("expected a tree")
	}

	tr.Layout(Limits{MaxWidth: 30})

	// Open the root via its header row.
	shell := tr.Update(Event{Kind: EventMousePress, Pos: Point{X: 1, Y: 0}, Time: time.Now()})
	if !shell.LayoutInvalid() {
		t.Fatal("expected the toggle to demand a layout pass")
	}
	tr.Layout(Limits{MaxWidth: 30})

	if want := 2 * RowHeight; tr.Height() != want {
		t.Fatalf("open tree height = %d, expected %d", tr.Height(), want)
	}

	// Click the file row underneath.
	shell = tr.Update(Event{Kind: EventMousePress, Pos: Point{X: 3, Y: 1}, Time: time.Now()})
	if !shell.Captured() {
		t.Fatal("expected the file row to capture the press")
	}
	if len(single) != 1 || single[0] != filepath.Join(root, "note.md") {
		t.Errorf("single-click fired with %v", single)
	}
}

func TestReopenYieldsIdenticalChildren(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &Config{ShowExtensions: true}
	dir := newDir(root, cfg)

	first := append([]*Node(nil), dir.ChildrenForDisplay(true)...)
	dir.ChildrenForDisplay(false)

	// Disk changes after the first scan are invisible to this node.
	if err := os.WriteFile(filepath.Join(root, "c.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	second := dir.ChildrenForDisplay(true)
	if len(second) != len(first) {
		t.Fatalf("reopen changed the child count: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d: reopen produced a different node", i)
		}
	}

	// A fresh tree at the same path does see the new file.
	fresh := newDir(root, cfg)
	if got := len(fresh.ChildrenForDisplay(true)); got != 3 {
		t.Errorf("fresh tree expected 3 children, got %d", got)
	}
}
