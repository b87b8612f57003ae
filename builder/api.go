// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Resolves cfg, runs
//     each constructor to collect edges over the common n vertices, then
//     assembles a single graph.Graph via graph.New.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Determinism: same (n, opts, seed) and constructor order => identical
//     edge sets.
//   - Safety: constructors never panic; they return sentinel errors.
package builder

import (
	"fmt"

	"github.com/tedderlab/moddecomp/graph"
)

// Constructor emits the edges of one topology over a fixed vertex count,
// using the resolved builderConfig for anything stochastic (RandomGNP).
// Constructors validate parameters early and return sentinel errors; they
// never panic.
type Constructor func(cfg builderConfig) ([]graph.Edge, error)

// BuildGraph creates a graph.Graph with n vertices, resolves the builder
// configuration from bopts, runs every constructor in order, and unions
// their edges into one final graph. Constructor error is wrapped with
// "BuildGraph: %w" and returned immediately; no partial result is built.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	var edges []graph.Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		es, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		edges = append(edges, es...)
	}

	g, err := graph.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n >= 3) over vertices 0..n-1.
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n >= 2) over vertices 0..n-1.
//func Path(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1) over vertices 0..n-1.
//func Complete(n int) Constructor

// CompleteBipartite builds K_{n1,n2} (n1,n2 >= 1): vertices 0..n1-1 form the
// left side, n1..n1+n2-1 the right side.
//func CompleteBipartite(n1, n2 int) Constructor

// RandomGNP builds an Erdos-Renyi G(n,p) graph: each of the n*(n-1)/2
// unordered pairs is an edge independently with probability p. Requires a
// resolved RNG (WithSeed/WithRand) even for p in {0,1}, so the edge set's
// determinism is always explicit rather than incidental.
//func RandomGNP(n int, p float64) Constructor
