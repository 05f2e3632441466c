// Package refdata loads reference-data fixtures for derivation tests.
//
// Fixtures are JSON trees whose inner nodes are objects and whose leaves
// are rendered expression strings. Keys are strings but frequently hold
// numbers (perturbation orders, block sizes); Keys() orders those
// numerically. Large fixture sets may be stored compressed; files ending
// in .json.zst and .json.lz4 are decompressed transparently.
package refdata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Node is one node of a fixture tree: either a leaf carrying a string or
// an inner node carrying named children.
type Node struct {
	value    string
	children map[string]*Node
	leaf     bool
}

// UnmarshalJSON accepts either a JSON string (leaf) or an object of
// nodes (inner node). Any other shape is an error.
func (n *Node) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		n.leaf = true
		return json.Unmarshal(data, &n.value)
	}
	if len(data) > 0 && data[0] == '{' {
		n.leaf = false
		return json.Unmarshal(data, &n.children)
	}
	return fmt.Errorf("refdata: node must be a string or an object, got %s", snippet(data))
}

func snippet(data []byte) string {
	const max = 24
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}

// IsLeaf reports whether the node carries a value.
func (n *Node) IsLeaf() bool { return n.leaf }

// Value returns the leaf string, or "" for inner nodes.
func (n *Node) Value() string { return n.value }

// Child returns the named child of an inner node.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.children[key]
	return c, ok
}

// Get walks a key path and returns the node it ends at.
func (n *Node) Get(path ...string) (*Node, bool) {
	cur := n
	for _, key := range path {
		next, ok := cur.children[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Keys returns the child keys of an inner node, numerically ordered
// where possible: all-numeric keys sort by value ahead of the remaining
// keys, which sort lexicographically.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// Load reads every fixture in dir, keyed by file name with the .json and
// compression extensions stripped.
func Load(dir string) (map[string]*Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("refdata: %w", err)
	}
	fixtures := make(map[string]*Node)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := fixtureName(entry.Name())
		if !ok {
			continue
		}
		node, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		fixtures[name] = node
	}
	return fixtures, nil
}

func fixtureName(file string) (string, bool) {
	for _, ext := range []string{".json", ".json.zst", ".json.lz4"} {
		if strings.HasSuffix(file, ext) {
			return strings.TrimSuffix(file, ext), true
		}
	}
	return "", false
}

// LoadFile reads one fixture file, decompressing by extension.
func LoadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: %w", err)
	}
	defer f.Close()

	var r io.Reader
	switch {
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("refdata: open zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".lz4"):
		r = lz4.NewReader(f)
	default:
		r = f
	}

	node := new(Node)
	if err := json.NewDecoder(r).Decode(node); err != nil {
		return nil, fmt.Errorf("refdata: decode %s: %w", path, err)
	}
	return node, nil
}
