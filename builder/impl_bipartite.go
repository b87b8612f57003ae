// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1, n2 >= 1 (else ErrTooFewVertices).
//   - Left side is vertices 0..n1-1, right side n1..n1+n2-1.
//   - Emits every left-right pair, left-major order.

package builder

import (
	"fmt"

	"github.com/tedderlab/moddecomp/graph"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minBipartiteSide        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if n1 < minBipartiteSide {
			return nil, fmt.Errorf("%s: n1=%d < min=%d: %w", methodCompleteBipartite, n1, minBipartiteSide, ErrTooFewVertices)
		}
		if n2 < minBipartiteSide {
			return nil, fmt.Errorf("%s: n2=%d < min=%d: %w", methodCompleteBipartite, n2, minBipartiteSide, ErrTooFewVertices)
		}

		edges := make([]graph.Edge, 0, n1*n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				edges = append(edges, graph.Edge{U: i, V: n1 + j})
			}
		}
		return edges, nil
	}
}
