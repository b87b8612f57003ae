package graph

import (
	"fmt"
	"sort"
)

// Edge is an unordered pair of vertex ids, u != v.
type Edge struct {
	U, V int
}

// Option configures a Graph at construction time.
//
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

type config struct {
	degreeHint int
}

// WithDegreeHint pre-sizes each vertex's adjacency set to the given
// capacity, avoiding reallocation for callers who know the expected degree.
// Purely an allocation hint; it never changes observable behavior.
func WithDegreeHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.degreeHint = n
		}
	}
}

// Graph is an immutable, finite, simple, undirected graph: vertex ids are
// 0..N-1 with their natural total order, no self-loops, no multi-edges.
//
// Once constructed by New, a Graph is never mutated; this is the
// re-entrancy guarantee the decomposition core depends on.
type Graph struct {
	n    int
	adj  []map[int]struct{} // adj[v] = neighbours of v
	deg  []int              // cached len(adj[v])
	nbrs [][]int            // adj[v] materialized in ascending order, cached lazily
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// HasEdge reports whether u and v are adjacent. u and v must be valid
// vertex ids; behavior is undefined otherwise (internal callers only pass
// validated ids).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int { return g.deg[v] }

// Neighbors returns the neighbours of v in ascending order. The returned
// slice is owned by the Graph and must not be mutated by the caller.
func (g *Graph) Neighbors(v int) []int {
	if g.nbrs[v] == nil {
		out := make([]int, 0, len(g.adj[v]))
		for u := range g.adj[v] {
			out = append(out, u)
		}
		sort.Ints(out)
		g.nbrs[v] = out
	}
	return g.nbrs[v]
}

// New builds a Graph from n vertices (ids 0..n-1) and a list of unordered
// edges. Duplicate edges are coalesced silently. Returns ErrInvalidGraph if
// n < 0, any endpoint is out of [0, n), or an edge is a self-loop.
//
// Complexity: O(n + len(edges)) time and space.
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("graph: n=%d < 0: %w", n, ErrInvalidGraph)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		n:    n,
		adj:  make([]map[int]struct{}, n),
		deg:  make([]int, n),
		nbrs: make([][]int, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = make(map[int]struct{}, cfg.degreeHint)
	}

	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("graph: edge (%d,%d) out of range [0,%d): %w", e.U, e.V, n, ErrInvalidGraph)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("graph: self-loop at %d: %w", e.U, ErrInvalidGraph)
		}
		if _, ok := g.adj[e.U][e.V]; ok {
			continue // duplicate edge, coalesced
		}
		g.adj[e.U][e.V] = struct{}{}
		g.adj[e.V][e.U] = struct{}{}
	}
	for v := 0; v < n; v++ {
		g.deg[v] = len(g.adj[v])
	}

	return g, nil
}
