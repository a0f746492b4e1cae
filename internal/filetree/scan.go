package filetree

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one (name, type) pair produced by directory enumeration.
// Only the type bits of Mode are meaningful.
type Entry struct {
	Name string
	Mode fs.FileMode
}

// ReadDirFunc is the synchronous directory-enumeration primitive the
// tree consumes from its host. It returns the entries of the directory
// at path, or an error if the directory cannot be read.
type ReadDirFunc func(path string) ([]Entry, error)

func osReadDir(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{Name: d.Name(), Mode: d.Type()})
	}
	return entries, nil
}

// ChildrenForDisplay returns the ordered children this node presents to
// the layout, event and draw passes. A closed directory presents none,
// whether or not it was expanded before. The first open call enumerates
// the directory and memoizes the result; every later call returns the
// same slice without touching the filesystem, and an enumeration
// failure memoizes an empty list rather than propagating.
func (n *Node) ChildrenForDisplay(open bool) []*Node {
	if n.kind != KindDir || !open {
		return nil
	}
	if !n.scanned {
		n.children = n.scan()
		n.scanned = true
	}
	return n.children
}

// scan enumerates the directory once and classifies each entry.
// Directories sort before everything else; within each group the order
// is ascending by lowercased name, ties broken by the raw name. An
// entry that is neither a directory nor a regular file becomes an
// ErrorEntry so it stays visible instead of silently vanishing.
func (n *Node) scan() []*Node {
	entries, err := n.cfg.readDir(n.path)
	if err != nil {
		// Unreadable directories behave as empty.
		return nil
	}

	var dirs, rest []*Node
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if !n.cfg.ShowHidden && strings.HasPrefix(e.Name, ".") {
			continue
		}
		path := filepath.Join(n.path, e.Name)
		switch {
		case e.Mode.IsDir():
			dirs = append(dirs, newDir(path, n.cfg))
		case e.Mode.IsRegular():
			rest = append(rest, newFile(path, n.cfg))
		default:
			rest = append(rest, newErrorEntry(path, n.cfg))
		}
	}

	sortNodes(dirs)
	sortNodes(rest)
	return append(dirs, rest...)
}

// sortNodes orders by the on-disk entry name, not the display name, so
// hiding extensions never changes the ordering.
func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		ni, nj := filepath.Base(nodes[i].path), filepath.Base(nodes[j].path)
		a, b := strings.ToLower(ni), strings.ToLower(nj)
		if a != b {
			return a < b
		}
		return ni < nj
	})
}
