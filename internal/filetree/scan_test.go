package filetree

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// fakeDir builds a ReadDirFunc serving a fixed listing for every path.
func fakeDir(entries []Entry) ReadDirFunc {
	return func(path string) ([]Entry, error) {
		return entries, nil
	}
}

// countingDir wraps a reader and counts enumeration calls per path.
func countingDir(inner ReadDirFunc, calls map[string]int) ReadDirFunc {
	return func(path string) ([]Entry, error) {
		calls[path]++
		return inner(path)
	}
}

var sampleEntries = []Entry{
	{Name: ".hidden_b", Mode: 0},
	{Name: "Z.txt", Mode: 0},
	{Name: "a_dir", Mode: fs.ModeDir},
	{Name: "m.txt", Mode: 0},
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

func TestSortOrderHiddenExcluded(t *testing.T) {
	cfg := &Config{ShowExtensions: true, ReadDir: fakeDir(sampleEntries)}
	dir := newDir("/root", cfg)

	got := names(dir.ChildrenForDisplay(true))
	want := []string{"a_dir", "m.txt", "Z.txt"}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSortOrderHiddenIncluded(t *testing.T) {
	cfg := &Config{ShowHidden: true, ShowExtensions: true, ReadDir: fakeDir(sampleEntries)}
	dir := newDir("/root", cfg)

	got := names(dir.ChildrenForDisplay(true))
	want := []string{"a_dir", ".hidden_b", "m.txt", "Z.txt"}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestClosedDirectoryPresentsNoChildren(t *testing.T) {
	cfg := &Config{ShowExtensions: true, ReadDir: fakeDir(sampleEntries)}
	dir := newDir("/root", cfg)

	if got := dir.ChildrenForDisplay(false); len(got) != 0 {
		t.Errorf("closed directory should present no children, got %d", len(got))
	}

	// Expand, then close again: still nothing presented.
	dir.ChildrenForDisplay(true)
	if got := dir.ChildrenForDisplay(false); len(got) != 0 {
		t.Errorf("re-closed directory should present no children, got %d", len(got))
	}
}

func TestEnumerationHappensAtMostOnce(t *testing.T) {
	calls := make(map[string]int)
	cfg := &Config{ShowExtensions: true, ReadDir: countingDir(fakeDir(sampleEntries), calls)}
	dir := newDir("/root", cfg)

	first := dir.ChildrenForDisplay(true)
	dir.ChildrenForDisplay(false)
	second := dir.ChildrenForDisplay(true)

	if calls["/root"] != 1 {
		t.Errorf("expected exactly 1 enumeration, got %d", calls["/root"])
	}
	if len(first) != len(second) {
		t.Fatalf("cache changed size: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d: cache returned a different node", i)
		}
	}
}

func TestUnreadableDirectoryBehavesAsEmpty(t *testing.T) {
	calls := make(map[string]int)
	failing := func(path string) ([]Entry, error) {
		return nil, os.ErrPermission
	}
	cfg := &Config{ReadDir: countingDir(failing, calls)}
	dir := newDir("/denied", cfg)

	if got := dir.ChildrenForDisplay(true); len(got) != 0 {
		t.Errorf("unreadable directory should be empty, got %d children", len(got))
	}

	// The failure is final: no retry on the next open.
	dir.ChildrenForDisplay(true)
	if calls["/denied"] != 1 {
		t.Errorf("expected no retry after failure, got %d calls", calls["/denied"])
	}
}

func TestUnclassifiableEntryBecomesErrorEntry(t *testing.T) {
	entries := []Entry{
		{Name: "regular.txt", Mode: 0},
		{Name: "null", Mode: fs.ModeDevice},
		{Name: "sub", Mode: fs.ModeDir},
	}
	cfg := &Config{ShowExtensions: true, ReadDir: fakeDir(entries)}
	dir := newDir("/dev-ish", cfg)

	children := dir.ChildrenForDisplay(true)
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}

	// Directory first, then the non-directory group by name.
	if children[0].Kind() != KindDir || children[0].Name() != "sub" {
		t.Errorf("expected dir 'sub' first, got %v %q", children[0].Kind(), children[0].Name())
	}
	if children[1].Kind() != KindError || children[1].Name() != "null" {
		t.Errorf("expected error entry 'null', got %v %q", children[1].Kind(), children[1].Name())
	}
	if children[2].Kind() != KindFile {
		t.Errorf("expected file last, got %v", children[2].Kind())
	}
}

func TestSymlinkBecomesErrorEntry(t *testing.T) {
	entries := []Entry{{Name: "link", Mode: fs.ModeSymlink}}
	cfg := &Config{ReadDir: fakeDir(entries)}
	dir := newDir("/links", cfg)

	children := dir.ChildrenForDisplay(true)
	if len(children) != 1 || children[0].Kind() != KindError {
		t.Fatalf("expected a single error entry, got %v", children)
	}
}

func TestNamelessEntrySkipped(t *testing.T) {
	entries := []Entry{{Name: "", Mode: 0}, {Name: "kept.txt", Mode: 0}}
	cfg := &Config{ShowExtensions: true, ReadDir: fakeDir(entries)}
	dir := newDir("/odd", cfg)

	children := dir.ChildrenForDisplay(true)
	if len(children) != 1 || children[0].Name() != "kept.txt" {
		t.Fatalf("expected only kept.txt, got %v", names(children))
	}
}

func TestFilesOnlyLeaves(t *testing.T) {
	cfg := &Config{ShowExtensions: true, ReadDir: fakeDir(sampleEntries)}
	file := newFile("/root/m.txt", cfg)

	if got := file.ChildrenForDisplay(true); got != nil {
		t.Errorf("files should never present children, got %v", got)
	}
}

func TestOSReadDir(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "a_dir"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Z.txt", "m.txt", ".hidden_b"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &Config{ShowExtensions: true}
	dir := newDir(root, cfg)
	got := names(dir.ChildrenForDisplay(true))
	want := []string{"a_dir", "m.txt", "Z.txt"}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFileDisplayName(t *testing.T) {
	cases := []struct {
		base           string
		showExtensions bool
		want           string
	}{
		{"report.txt", true, "report.txt"},
		{"report.txt", false, "report"},
		{"archive.tar.gz", false, "archive.tar"},
		{".bashrc", false, ".bashrc"},
		{"README", false, "README"},
	}
	for _, c := range cases {
		if got := fileDisplayName(c.base, c.showExtensions); got != c.want {
			t.Errorf("fileDisplayName(%q, %v) = %q, expected %q", c.base, c.showExtensions, got, c.want)
		}
	}
}
