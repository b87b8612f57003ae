// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Emits each unordered pair {i,j}, i<j, exactly once, in lexicographic
//     order.

package builder

import (
	"fmt"

	"github.com/tedderlab/moddecomp/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		edges := make([]graph.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, graph.Edge{U: i, V: j})
			}
		}
		return edges, nil
	}
}
