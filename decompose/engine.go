package decompose

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/tedderlab/moddecomp/graph"
	"github.com/tedderlab/moddecomp/internal/forest"
	"github.com/tedderlab/moddecomp/mdtree"
)

// engine holds the state shared across one top-level Decompose call: the
// input graph and the arena every produced node is allocated from.
type engine struct {
	g *graph.Graph
	f *forest.Forest
}

// extractGroups reads the standard theorem linking (co-)components to a
// subtree's top label: if root's label is wantLabel, its direct children
// are the (co-)components; otherwise root itself is the sole
// (co-)component. Matching children are detached from root so they can be
// re-parented by refinement and assembly.
func extractGroups(root *forest.Node, wantLabel forest.Label) []*forest.Node {
	if root == nil {
		return nil
	}
	if root.Kind() == forest.Internal && root.Label() == wantLabel {
		children := root.Children()
		for _, c := range children {
			c.Detach()
		}
		return children
	}
	return []*forest.Node{root}
}

// decomposeSet computes the modular decomposition tree of G[vertices],
// vertices given in ascending order. It picks vertices[0] as the pivot,
// fully recurses on its neighbourhood and non-neighbourhood, then assembles
// the strong modules containing the pivot.
func (e *engine) decomposeSet(vertices []int) (*forest.Node, error) {
	switch len(vertices) {
	case 0:
		return nil, nil
	case 1:
		return e.f.NewLeaf(vertices[0]), nil
	}

	pivot := vertices[0]
	var n, nbar []int
	for _, v := range vertices[1:] {
		if e.g.HasEdge(pivot, v) {
			n = append(n, v)
		} else {
			nbar = append(nbar, v)
		}
	}

	lRoot, err := e.decomposeSet(n)
	if err != nil {
		return nil, err
	}
	rRoot, err := e.decomposeSet(nbar)
	if err != nil {
		return nil, err
	}

	// Co-components of G[N(pivot)] are the children of a SERIES root, or
	// the whole side otherwise; components of G[V\N[pivot]] are the
	// children of a PARALLEL root, or the whole side otherwise.
	leftRoots := extractGroups(lRoot, forest.Series)
	rightRoots := extractGroups(rRoot, forest.Parallel)

	leaves := map[int]*forest.Node{}
	collectLeaves(leftRoots, leaves)
	collectLeaves(rightRoots, leaves)
	e.refine(&leftRoots, &rightRoots, leaves, n, nbar)

	pivotLeaf := e.f.NewLeaf(pivot)
	return assemble(e.f, e.g, pivotLeaf, leftRoots, rightRoots), nil
}

// Decompose computes the modular decomposition tree of g.
func Decompose(g *graph.Graph) (result *mdtree.MDTree, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok && strings.Contains(re.Error(), "out of memory") {
				err = fmt.Errorf("decompose: %v: %w", re, ErrOutOfMemory)
				return
			}
			err = fmt.Errorf("decompose: panic during decomposition: %v: %w", r, ErrInternalInvariant)
		}
	}()

	n := g.N()
	if n == 0 {
		return mdtree.New(nil, 0), nil
	}

	e := &engine{g: g, f: forest.New()}
	vertices := make([]int, n)
	for i := range vertices {
		vertices[i] = i
	}
	root, err := e.decomposeSet(vertices)
	if err != nil {
		return nil, err
	}
	collapse(root)
	return mdtree.New(root, n), nil
}
