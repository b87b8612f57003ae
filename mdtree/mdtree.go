// Package mdtree defines the read-only output of a decomposition: a rooted
// tree whose leaves are the input graph's vertices and whose internal nodes
// are labelled SERIES, PARALLEL or PRIME.
package mdtree

import "github.com/tedderlab/moddecomp/internal/forest"

// Label is a node's module type.
type Label int

const (
	Series Label = iota
	Parallel
	Prime
)

func (l Label) String() string {
	switch l {
	case Series:
		return "SERIES"
	case Parallel:
		return "PARALLEL"
	default:
		return "PRIME"
	}
}

func fromForestLabel(l forest.Label) Label {
	switch l {
	case forest.Series:
		return Series
	case forest.Parallel:
		return Parallel
	default:
		return Prime
	}
}

// Node is one node of an MDTree: either a leaf wrapping a vertex id, or an
// internal node with a Label and an ordered list of children.
type Node struct {
	n *forest.Node
}

// IsLeaf reports whether n wraps a single vertex rather than a module.
func (n *Node) IsLeaf() bool { return n.n.Kind() == forest.Leaf }

// Vertex returns the wrapped vertex id. Calling it on an internal node is a
// programmer error; it returns -1.
func (n *Node) Vertex() int { return n.n.Vertex() }

// Label returns the node's module type. Calling it on a leaf is a programmer
// error; it returns Prime.
func (n *Node) Label() Label {
	if n.IsLeaf() {
		return Prime
	}
	return fromForestLabel(n.n.Label())
}

// Children returns n's children in left-to-right order. A leaf has none.
func (n *Node) Children() []*Node {
	raw := n.n.Children()
	out := make([]*Node, len(raw))
	for i, c := range raw {
		out[i] = &Node{n: c}
	}
	return out
}

// MDTree is the modular decomposition tree of one graph.Graph. The zero
// value represents the tree of a 0-vertex graph (Root returns nil).
type MDTree struct {
	root *forest.Node
	n    int
}

// New wraps a completed forest root (nil for the empty graph) as an MDTree.
func New(root *forest.Node, n int) *MDTree {
	return &MDTree{root: root, n: n}
}

// Root returns the tree's root node, or nil if the underlying graph had no
// vertices.
func (t *MDTree) Root() *Node {
	if t.root == nil {
		return nil
	}
	return &Node{n: t.root}
}

// N returns the number of vertices (leaves) in the tree.
func (t *MDTree) N() int { return t.n }

// Leaves returns the tree's leaves in left-to-right order, i.e. the vertex
// ids in the canonical order the decomposition settled on.
func (t *MDTree) Leaves() []int {
	out := make([]int, 0, t.n)
	if t.root == nil {
		return out
	}
	var walk func(*forest.Node)
	walk = func(n *forest.Node) {
		if n.Kind() == forest.Leaf {
			out = append(out, n.Vertex())
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(t.root)
	return out
}
