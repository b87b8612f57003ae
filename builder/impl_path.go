// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// impl_path.go — implementation of Path(n).
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i=1..n-1 in stable increasing order.

package builder

import (
	"fmt"

	"github.com/tedderlab/moddecomp/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		edges := make([]graph.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, graph.Edge{U: i - 1, V: i})
		}
		return edges, nil
	}
}
