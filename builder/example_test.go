package builder_test

import (
	"fmt"

	"github.com/tedderlab/moddecomp/builder"
)

// ExampleBuildGraph assembles a 4-vertex path P4 from a single topology
// constructor.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(4, nil, builder.Path(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.N())
	fmt.Println("edge(0,1):", g.HasEdge(0, 1))
	fmt.Println("edge(0,2):", g.HasEdge(0, 2))
	fmt.Println("degree(1):", g.Degree(1))

	// Output:
	// vertices: 4
	// edge(0,1): true
	// edge(0,2): false
	// degree(1): 2
}
