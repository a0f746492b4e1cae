package filetree

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies what a tree node stands for on disk.
type Kind int

const (
	// KindDir is a directory that can expand into children.
	KindDir Kind = iota
	// KindFile is a regular file leaf.
	KindFile
	// KindError is a placeholder for an entry that exists on disk but
	// could not be classified as a directory or a regular file.
	KindError
)

// String returns a short name for the kind, used in logs and tests.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Config is the tree-wide configuration shared by every node. It is
// built completely before the root node exists and is read-only from
// then on; nodes hold it by pointer and never copy or mutate it.
type Config struct {
	// ShowHidden includes entries whose name starts with a dot.
	ShowHidden bool
	// ShowExtensions displays the full filename instead of the stem.
	ShowExtensions bool

	// OnSingleClick, if non-nil, produces a message for every accepted
	// left press on a file row.
	OnSingleClick func(path string) tea.Msg
	// OnDoubleClick, if non-nil, produces a message when a press
	// qualifies as the second half of a double-click.
	OnDoubleClick func(path string) tea.Msg

	// ReadDir enumerates a directory. Nil means os.ReadDir.
	ReadDir ReadDirFunc
}

func (c *Config) readDir(path string) ([]Entry, error) {
	if c.ReadDir != nil {
		return c.ReadDir(path)
	}
	return osReadDir(path)
}

// Node is one entry in the displayed hierarchy: a directory, a file, or
// an unclassifiable placeholder. The on-disk identity (path) and the
// display name are fixed at construction; only the lazily materialized
// child list is filled in later, exactly once.
type Node struct {
	kind Kind
	path string
	name string
	cfg  *Config

	// children is valid only after scanned is set. Once set it is never
	// replaced; the filesystem is not re-read for this node's lifetime.
	children []*Node
	scanned  bool
}

// Kind reports the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Path returns the node's absolute filesystem path.
func (n *Node) Path() string { return n.path }

// Name returns the display name derived from the path's final component.
func (n *Node) Name() string { return n.name }

func newDir(path string, cfg *Config) *Node {
	return &Node{
		kind: KindDir,
		path: path,
		name: filepath.Base(path),
		cfg:  cfg,
	}
}

func newFile(path string, cfg *Config) *Node {
	return &Node{
		kind: KindFile,
		path: path,
		name: fileDisplayName(filepath.Base(path), cfg.ShowExtensions),
		cfg:  cfg,
	}
}

func newErrorEntry(path string, cfg *Config) *Node {
	return &Node{
		kind: KindError,
		path: path,
		name: filepath.Base(path),
		cfg:  cfg,
	}
}

// fileDisplayName strips the extension when extensions are hidden. A
// name that is nothing but an extension (".bashrc") keeps its full form.
func fileDisplayName(base string, showExtensions bool) string {
	if showExtensions {
		return base
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}
