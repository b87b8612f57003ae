package mdtree_test

import (
	"fmt"

	"github.com/tedderlab/moddecomp/decompose"
	"github.com/tedderlab/moddecomp/graph"
	"github.com/tedderlab/moddecomp/mdtree"
)

// ExampleMDTree decomposes two disjoint edges and inspects the resulting
// tree through the mdtree API: a PARALLEL root over two SERIES pairs.
func ExampleMDTree() {
	g, err := graph.New(4, []graph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var tree *mdtree.MDTree
	tree, err = decompose.Decompose(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", tree.N())
	fmt.Println("leaves:", tree.Leaves())
	fmt.Println("root label:", tree.Root().Label())
	fmt.Println("root children:", len(tree.Root().Children()))

	// Output:
	// vertices: 4
	// leaves: [0 1 2 3]
	// root label: PARALLEL
	// root children: 2
}
