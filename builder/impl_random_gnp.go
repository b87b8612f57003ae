// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// impl_random_gnp.go — implementation of RandomGNP(n, p).
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - Requires cfg.rng != nil (else ErrNeedRandSource), even for p in {0,1}:
//     determinism is always explicit, never incidental to which branch p
//     happens to take.
//   - Each unordered pair {i,j}, i<j, is sampled independently in
//     lexicographic order, consuming exactly one cfg.rng.Float64() draw per
//     pair regardless of outcome, so the draw sequence is stable across runs
//     for a fixed seed.

package builder

import (
	"fmt"

	"github.com/tedderlab/moddecomp/graph"
)

const methodRandomGNP = "RandomGNP"

// RandomGNP returns a Constructor that builds an Erdos-Renyi G(n,p) graph.
func RandomGNP(n int, p float64) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandomGNP, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomGNP, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomGNP, ErrNeedRandSource)
		}

		var edges []graph.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, graph.Edge{U: i, V: j})
				}
			}
		}
		return edges, nil
	}
}
