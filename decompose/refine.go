package decompose

import (
	"github.com/tedderlab/moddecomp/internal/bitset"
	"github.com/tedderlab/moddecomp/internal/forest"
)

// refine runs the mark/split/promote refinement pass over every active edge
// between the neighbour side (leftRoots, rooted at the forest built from n)
// and the non-neighbour side (rightRoots, built from nbar): an edge (x,y)
// with x ∈ n, y ∈ nbar pulls on both y's ancestor chain in rightRoots and
// x's ancestor chain in leftRoots. leafOf must map every vertex in n and
// nbar to its current leaf node. Both root slices are mutated in place.
func (e *engine) refine(leftRoots, rightRoots *[]*forest.Node, leafOf map[int]*forest.Node, n, nbar []int) {
	inNbar := bitset.New(e.g.N())
	for _, v := range nbar {
		inNbar.Add(v)
	}

	touched := map[*forest.Node]bool{}
	for _, x := range n {
		neighbors := bitset.New(e.g.N())
		for _, y := range e.g.Neighbors(x) {
			neighbors.Add(y)
		}
		neighbors.Intersect(inNbar).Each(func(y int) {
			refineUp(e.f, rightRoots, touched, leafOf[y], forest.LeftSplit)
			refineUp(e.f, leftRoots, touched, leafOf[x], forest.RightSplit)
		})
	}

	for _, r := range *leftRoots {
		promoteBelow(r)
	}
	for _, r := range *rightRoots {
		promoteBelow(r)
	}
}

// refineUp climbs y's ancestor path, marking and splitting as it goes, as
// triggered by a single active edge whose puller sits on side. roots is the
// managed top-level root list of y's own side forest: a split or a
// fully-marked continuation that reaches the top of that side is spliced
// into roots directly, since top-level roots are plain detached nodes, not
// registered with the forest's own root bookkeeping.
func refineUp(f *forest.Forest, roots *[]*forest.Node, touched map[*forest.Node]bool, y *forest.Node, side forest.Split) {
	cur := y
	for {
		parent := cur.Parent()
		if parent == nil {
			// cur is already a top-level fragment on its own: there is no
			// parent to mark/split, but the active edge still distinguishes
			// cur from its sibling fragments, so cur itself carries the tag.
			cur.Tag(side)
			return
		}
		if touched[cur] {
			parent.Tag(side)
			return
		}
		touched[cur] = true
		parent.Mark++
		if !parent.FullyMarked() {
			parent.Tag(side)
			split(f, roots, touched, parent, side)
			return
		}
		parent.Mark = 0
		cur = parent
	}
}

// split breaks node into two new sibling fragments, A holding the children
// already touched this pass and B the rest, preserving relative order
// within each, and spliced into node's former position: among node's real
// siblings if node has a parent, or in roots if node was itself a top-level
// root. side has already been tagged on node by the caller before node's
// children are known, so it is applied to the fragments here too.
func split(f *forest.Forest, roots *[]*forest.Node, touched map[*forest.Node]bool, node *forest.Node, side forest.Split) {
	children := node.Children()
	var marked, unmarked []*forest.Node
	for _, c := range children {
		if touched[c] {
			marked = append(marked, c)
		} else {
			unmarked = append(unmarked, c)
		}
	}
	for _, c := range children {
		c.Detach()
	}

	a := f.NewInternal(forest.Unknown)
	for _, c := range marked {
		a.AppendChild(c)
	}
	b := f.NewInternal(forest.Unknown)
	for _, c := range unmarked {
		b.AppendChild(c)
	}
	a.Tag(side)
	b.Tag(side)

	spliceReplace(roots, node, []*forest.Node{a, b})
}

// spliceReplace puts replacements where old used to sit: as children of
// old's real parent, via the shared forest primitive, or directly in roots
// if old had none.
func spliceReplace(roots *[]*forest.Node, old *forest.Node, replacements []*forest.Node) {
	if old.Parent() != nil {
		forest.ReplaceWithSiblings(old, replacements)
		return
	}
	idx := -1
	for i, r := range *roots {
		if r == old {
			idx = i
			break
		}
	}
	next := make([]*forest.Node, 0, len(*roots)-1+len(replacements))
	next = append(next, (*roots)[:idx]...)
	next = append(next, replacements...)
	next = append(next, (*roots)[idx+1:]...)
	*roots = next
}

// promoteBelow applies the refinement engine's promotion rule to every
// strict descendant of n, post-order: any internal node whose Split tag is
// not NoSplit has its children take its place among its own siblings,
// bottom-up, so a grandchild's promotion is resolved before its former
// parent is considered. n itself is left untouched — assembly reads the
// split tags of the top-level roots, so those must survive this pass.
func promoteBelow(n *forest.Node) {
	if n.Kind() == forest.Leaf {
		return
	}
	for _, c := range n.Children() {
		promoteBelow(c)
		if c.Kind() == forest.Internal && c.Split != forest.NoSplit {
			forest.Promote(c)
		}
	}
}

// collectLeaves walks roots and records, for every leaf found, a mapping
// from its vertex id to the leaf node itself.
func collectLeaves(roots []*forest.Node, out map[int]*forest.Node) {
	for _, r := range roots {
		collectLeavesBelow(r, out)
	}
}

func collectLeavesBelow(n *forest.Node, out map[int]*forest.Node) {
	if n.Kind() == forest.Leaf {
		out[n.Vertex()] = n
		return
	}
	for _, c := range n.Children() {
		collectLeavesBelow(c, out)
	}
}
