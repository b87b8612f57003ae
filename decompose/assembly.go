package decompose

import (
	"github.com/tedderlab/moddecomp/graph"
	"github.com/tedderlab/moddecomp/internal/forest"
)

// assemble walks outward from the pivot leaf, alternating between the
// refined neighbour-side roots (leftRoots) and non-neighbour-side roots
// (rightRoots), wrapping the module built so far with the next block from
// whichever side the split tags and the tie-breaking rule select, until
// both sides are exhausted. It returns the root of the combined subtree.
func assemble(f *forest.Forest, g *graph.Graph, pivotLeaf *forest.Node, leftRoots, rightRoots []*forest.Node) *forest.Node {
	li, ri := len(leftRoots), 0
	tree := pivotLeaf

	for li > 0 || ri < len(rightRoots) {
		var leftLen, rightLen int
		var leftForced, rightForced bool
		if li > 0 {
			leftLen, leftForced = peekBlock(leftRoots, li, -1)
		}
		if ri < len(rightRoots) {
			rightLen, rightForced = peekBlock(rightRoots, ri, 1)
		}

		switch {
		case li == 0:
			var block []*forest.Node
			block, ri = takeBlock(rightRoots, ri, 1)
			tree = wrap(f, g, tree, nil, block)
		case ri == len(rightRoots):
			var block []*forest.Node
			block, li = takeBlock(leftRoots, li, -1)
			tree = wrap(f, g, tree, block, nil)
		case leftForced || rightForced:
			// A tagged root on either side demands both sides extend
			// together this round: the tag records that some vertex on the
			// far side distinguished this fragment from its sibling fragment.
			var lb, rb []*forest.Node
			lb, li = takeBlock(leftRoots, li, -1)
			rb, ri = takeBlock(rightRoots, ri, 1)
			tree = wrap(f, g, tree, lb, rb)
		case leftLen <= rightLen:
			var block []*forest.Node
			block, li = takeBlock(leftRoots, li, -1)
			tree = wrap(f, g, tree, block, nil)
		default:
			var block []*forest.Node
			block, ri = takeBlock(rightRoots, ri, 1)
			tree = wrap(f, g, tree, nil, block)
		}
	}
	return tree
}

// peekBlock reports the length of the next block that would be taken from
// roots starting just past idx in the given direction (-1: toward
// decreasing indices, +1: toward increasing indices), and whether that
// block contains a tagged root. A block is a maximal run of consecutive
// tagged roots — siblings produced by the same split carry the same tag and
// must move together — followed by the one untagged root that closes it
// off, or running to the end of roots if no untagged root remains.
func peekBlock(roots []*forest.Node, idx, dir int) (length int, forced bool) {
	i := idx
	for {
		if dir < 0 {
			if i <= 0 {
				return
			}
			i--
		} else {
			if i >= len(roots) {
				return
			}
		}
		length++
		tagged := roots[i].Split != forest.NoSplit
		forced = forced || tagged
		if dir > 0 {
			i++
		}
		if !tagged {
			return
		}
	}
}

// takeBlock consumes the same block peekBlock would measure and returns it
// in left-to-right order, together with the updated index.
func takeBlock(roots []*forest.Node, idx, dir int) ([]*forest.Node, int) {
	n, _ := peekBlock(roots, idx, dir)
	if dir < 0 {
		block := make([]*forest.Node, n)
		for i := 0; i < n; i++ {
			block[n-1-i] = roots[idx-1-i]
		}
		return block, idx - n
	}
	return roots[idx : idx+n], idx + n
}

// wrap creates the next outward module around the pivot: leftBlock's roots,
// the previously-assembled module, and rightBlock's roots, in that
// left-to-right order. The combined list is not flattened blindly: a block
// taken in one round can hold several fragments that split off from the
// same ancestor, and tree itself arrives from a different side than
// leftBlock/rightBlock and was never compared against them at all — any of
// these may need to nest against each other before they're ready to compare
// against the rest. regroup resolves that nesting; classifyLabel then
// labels what regroup leaves at the top.
func wrap(f *forest.Forest, g *graph.Graph, tree *forest.Node, leftBlock, rightBlock []*forest.Node) *forest.Node {
	combined := make([]*forest.Node, 0, len(leftBlock)+1+len(rightBlock))
	combined = append(combined, leftBlock...)
	combined = append(combined, tree)
	combined = append(combined, rightBlock...)

	u := f.NewInternal(forest.Unknown)
	for _, c := range regroup(f, g, combined) {
		u.AppendChild(c)
	}
	u.SetLabel(classifyLabel(g, u))
	return u
}

// regroup partitions children by the connectivity of their own
// representative-leaf adjacency, recursively, the same way the modular
// decomposition of any graph starts by checking whether it is disconnected:
// if the representative-adjacency graph over children splits into more than
// one connected component, those components are a PARALLEL's parts; failing
// that (the adjacency graph is connected), checking the non-adjacency
// graph's components the same way finds a SERIES's parts instead. A part that is connected both ways cannot be split further by
// this check — it is genuinely PRIME among its own members — and is
// returned flat. Children already uniform (fewer than three, or already one
// component either way) pass through unchanged, so this is a no-op on the
// common case.
func regroup(f *forest.Forest, g *graph.Graph, children []*forest.Node) []*forest.Node {
	if len(children) < 3 {
		return children
	}
	reps := make([]int, len(children))
	for i, c := range children {
		reps[i] = firstLeaf(c)
	}

	adjacent := func(i, j int) bool { return g.HasEdge(reps[i], reps[j]) }
	if parts := components(len(children), adjacent); len(parts) > 1 {
		return buildParts(f, g, children, parts)
	}
	nonAdjacent := func(i, j int) bool { return !adjacent(i, j) }
	if parts := components(len(children), nonAdjacent); len(parts) > 1 {
		return buildParts(f, g, children, parts)
	}
	return children
}

// buildParts turns each part (a group of indices into children) into a
// single node — the lone member if the part has one, otherwise a fresh node
// wrapping the part's own regrouping — and returns the results in the
// parts' original relative order.
func buildParts(f *forest.Forest, g *graph.Graph, children []*forest.Node, parts [][]int) []*forest.Node {
	partOf := make([]int, len(children))
	for pi, part := range parts {
		for _, idx := range part {
			partOf[idx] = pi
		}
	}

	built := make([]*forest.Node, len(parts))
	for pi, part := range parts {
		members := make([]*forest.Node, len(part))
		for i, idx := range part {
			members[i] = children[idx]
		}
		built[pi] = buildGroup(f, g, members)
	}

	out := make([]*forest.Node, 0, len(parts))
	seen := make([]bool, len(parts))
	for i := range children {
		if pi := partOf[i]; !seen[pi] {
			seen[pi] = true
			out = append(out, built[pi])
		}
	}
	return out
}

// buildGroup returns a single node standing in for members: members itself
// if there is only one, the sole survivor of regrouping members if that
// collapses back to one, or otherwise a fresh labeled node wrapping
// members's own regrouping.
func buildGroup(f *forest.Forest, g *graph.Graph, members []*forest.Node) *forest.Node {
	if len(members) == 1 {
		return members[0]
	}
	grouped := regroup(f, g, members)
	if len(grouped) == 1 {
		return grouped[0]
	}
	u := f.NewInternal(forest.Unknown)
	for _, c := range grouped {
		u.AppendChild(c)
	}
	u.SetLabel(classifyLabel(g, u))
	return u
}

// components returns the connected components of the graph on [0,n) defined
// by edge(i,j), in ascending order of first member. Each component lists its
// smallest index first and the rest in breadth-first discovery order. n is small enough at every call site (the children of one
// assembly wrap) that a plain BFS over an edge predicate, rather than any
// adjacency-list precomputation, is the right amount of machinery.
func components(n int, edge func(i, j int) bool) [][]int {
	visited := make([]bool, n)
	var comps [][]int
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		comp := []int{i}
		visited[i] = true
		for k := 0; k < len(comp); k++ {
			for j := 0; j < n; j++ {
				if !visited[j] && edge(comp[k], j) {
					visited[j] = true
					comp = append(comp, j)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// classifyLabel decides u's label from the adjacency between its children's
// leaf sets: pick one representative leaf per child, then check every pair
// of representatives. If all are adjacent, u is SERIES; if none are, u is
// PARALLEL; any disagreement between pairs makes it PRIME. Checking every
// pair, rather than each child against only the first, matters here:
// children assembled in the same round are not always mutually uniform
// yet, so a disagreement between two non-first children would otherwise go
// unnoticed. By the time this runs, regroup has already pulled out any
// sub-structure it could find, so a PRIME verdict here reflects the
// children's own irreducible relationship, not a missed nesting opportunity.
func classifyLabel(g *graph.Graph, u *forest.Node) forest.Label {
	children := u.Children()
	if len(children) < 2 {
		return forest.Unknown
	}
	reps := make([]int, len(children))
	for i, c := range children {
		reps[i] = firstLeaf(c)
	}
	verdict := g.HasEdge(reps[0], reps[1])
	for i := 0; i < len(reps); i++ {
		for j := i + 1; j < len(reps); j++ {
			if g.HasEdge(reps[i], reps[j]) != verdict {
				return forest.Prime
			}
		}
	}
	if verdict {
		return forest.Series
	}
	return forest.Parallel
}

// firstLeaf returns the vertex id of n's leftmost leaf descendant.
func firstLeaf(n *forest.Node) int {
	for n.Kind() != forest.Leaf {
		n = n.Children()[0]
	}
	return n.Vertex()
}
