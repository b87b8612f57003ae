package dotio_test

import (
	"fmt"

	"github.com/tedderlab/moddecomp/dotio"
)

// ExampleReadString parses a three-vertex chain and reports the resulting
// graph and vertex labels.
func ExampleReadString() {
	g, labels, err := dotio.ReadString("graph { a--b--c; }")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.N())
	fmt.Println("labels:", labels)
	fmt.Println("edge(0,1):", g.HasEdge(0, 1))
	fmt.Println("edge(0,2):", g.HasEdge(0, 2))

	// Output:
	// vertices: 3
	// labels: [a b c]
	// edge(0,1): true
	// edge(0,2): false
}
