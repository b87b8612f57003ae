package decompose

import (
	"sort"

	"github.com/tedderlab/moddecomp/internal/forest"
)

// collapse restores the shape invariants a strong module tree must satisfy
// after assembly: no node has exactly one child, no SERIES or PARALLEL node
// has an internal child with its own label (PRIME children of a PRIME node
// are kept), and SERIES/PARALLEL children are ordered deterministically.
func collapse(root *forest.Node) {
	if root == nil || root.Kind() == forest.Leaf {
		return
	}
	for _, c := range root.Children() {
		collapse(c)
	}
	unwrapSingletons(root)
	mergeDegenerate(root)
	canonicalizeOrder(root)
}

// unwrapSingletons replaces any child of root that is an internal node with
// exactly one child by that grandchild, repeatedly. A one-child module
// carries no information beyond its content; it cannot arise from a well
// formed modular decomposition, but assembly's recursion base case (a
// singleton side) can otherwise leave one behind transiently.
func unwrapSingletons(root *forest.Node) {
	for _, c := range root.Children() {
		for c.Kind() == forest.Internal && c.NumChildren() == 1 {
			only := c.Children()[0]
			only.Detach()
			forest.ReplaceWithSiblings(c, []*forest.Node{only})
			c = only
		}
	}
}

// mergeDegenerate absorbs any SERIES child of a SERIES node, or PARALLEL
// child of a PARALLEL node, into root directly: two nested modules of the
// same degenerate type are really one flat module.
func mergeDegenerate(root *forest.Node) {
	if root.Label() != forest.Series && root.Label() != forest.Parallel {
		return
	}
	for _, c := range root.Children() {
		if c.Kind() == forest.Internal && c.Label() == root.Label() {
			forest.Promote(c)
		}
	}
}

// canonicalizeOrder sorts a SERIES or PARALLEL node's children by minimum
// leaf id ascending, for deterministic output regardless of assembly's
// discovery order. PRIME nodes keep the order assembly produced.
func canonicalizeOrder(root *forest.Node) {
	if root.Label() != forest.Series && root.Label() != forest.Parallel {
		return
	}
	children := root.Children()
	sort.Slice(children, func(i, j int) bool {
		return minLeaf(children[i]) < minLeaf(children[j])
	})
	for _, c := range children {
		c.Detach()
	}
	for _, c := range children {
		root.AppendChild(c)
	}
}

// minLeaf returns the smallest vertex id among n's leaf descendants.
func minLeaf(n *forest.Node) int {
	if n.Kind() == forest.Leaf {
		return n.Vertex()
	}
	m := -1
	for _, c := range n.Children() {
		if v := minLeaf(c); m == -1 || v < m {
			m = v
		}
	}
	return m
}
