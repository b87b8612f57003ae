package dotio

import (
	"fmt"
	"strings"

	"github.com/tedderlab/moddecomp/graph"
)

// ReadOption configures ReadString.
type ReadOption func(*readConfig)

type readConfig struct{}

// WriteOption configures WriteString.
type WriteOption func(*writeConfig)

type writeConfig struct {
	name string
}

// WithGraphName sets the `graph NAME { ... }` header emitted by WriteString.
// The default is the empty name (just `graph { ... }`).
func WithGraphName(name string) WriteOption {
	return func(c *writeConfig) { c.name = name }
}

// ReadString parses src as the DOT subset this package supports and returns
// the resulting graph together with the vertex labels in declaration order:
// labels[i] is the DOT identifier assigned to vertex i. A bare identifier
// statement declares an isolated vertex; a chain "a--b--c;" declares the
// edges (a,b) and (b,c). Every statement must be semicolon-terminated.
// Re-using an identifier across statements refers to the same vertex.
func ReadString(src string, _ ...ReadOption) (*graph.Graph, []string, error) {
	parsed, err := parseDotFile.ParseString("", src)
	if err != nil {
		return nil, nil, fmt.Errorf("dotio: %v: %w", err, ErrInvalidDot)
	}

	ids := map[string]int{}
	var labels []string
	idOf := func(name string) int {
		if v, ok := ids[name]; ok {
			return v
		}
		v := len(labels)
		ids[name] = v
		labels = append(labels, name)
		return v
	}

	var edges []graph.Edge
	for _, s := range parsed.Stmts {
		if len(s.IDs) == 0 {
			continue
		}
		prev := idOf(s.IDs[0])
		for _, name := range s.IDs[1:] {
			cur := idOf(name)
			edges = append(edges, graph.Edge{U: prev, V: cur})
			prev = cur
		}
	}

	g, err := graph.New(len(labels), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("dotio: %w", err)
	}
	return g, labels, nil
}

// WriteString renders g as the DOT subset ReadString accepts. labels
// supplies the vertex identifiers to emit; if nil, decimal ids "0".."N-1"
// are used. Each edge (u,v) is emitted exactly once, from the
// lower-indexed endpoint.
func WriteString(g *graph.Graph, labels []string, opts ...WriteOption) (string, error) {
	cfg := writeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.N()
	if labels != nil && len(labels) != n {
		return "", fmt.Errorf("dotio: len(labels)=%d != N()=%d: %w", len(labels), n, ErrInvalidDot)
	}
	label := func(v int) string {
		if labels != nil {
			return labels[v]
		}
		return fmt.Sprintf("%d", v)
	}

	var b strings.Builder
	b.WriteString("graph")
	if cfg.name != "" {
		b.WriteString(" ")
		b.WriteString(cfg.name)
	}
	b.WriteString("\n{\n")
	for v := 0; v < n; v++ {
		fmt.Fprintf(&b, "%s;\n", label(v))
		for _, u := range g.Neighbors(v) {
			if u > v {
				fmt.Fprintf(&b, "%s--%s;\n", label(v), label(u))
			}
		}
	}
	b.WriteString("}")
	return b.String(), nil
}
