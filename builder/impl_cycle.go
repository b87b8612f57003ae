// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// impl_cycle.go — implementation of Cycle(n).
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Emits edges i -> (i+1)%n for i=0..n-1 in stable increasing order.

package builder

import (
	"fmt"

	"github.com/tedderlab/moddecomp/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		edges := make([]graph.Edge, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, graph.Edge{U: i, V: (i + 1) % n})
		}
		return edges, nil
	}
}
