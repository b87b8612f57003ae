package graph_test

import (
	"fmt"

	"github.com/tedderlab/moddecomp/graph"
)

// ExampleNew builds a small triangle-plus-pendant graph and queries it.
func ExampleNew() {
	// 0-1-2 form a triangle, 3 hangs off vertex 0.
	g, err := graph.New(4, []graph.Edge{
		{U: 0, V: 1},
		{U: 1, V: 2},
		{U: 2, V: 0},
		{U: 0, V: 3},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.N())
	fmt.Println("degree(0):", g.Degree(0))
	fmt.Println("neighbors(0):", g.Neighbors(0))
	fmt.Println("edge(1,3):", g.HasEdge(1, 3))

	// Output:
	// vertices: 4
	// degree(0): 3
	// neighbors(0): [1 2 3]
	// edge(1,3): false
}
