package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tedderlab/moddecomp/builder"
)

func TestPathShape(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Path(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(3, 4))
	require.False(t, g.HasEdge(0, 2))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 2, g.Degree(2))
}

func TestPathTooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycleShape(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Cycle(4))
	require.NoError(t, err)
	for v := 0; v < 4; v++ {
		require.Equal(t, 2, g.Degree(v))
	}
	require.True(t, g.HasEdge(3, 0))
}

func TestCycleTooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(2, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCompleteShape(t *testing.T) {
	n := 6
	g, err := builder.BuildGraph(n, nil, builder.Complete(n))
	require.NoError(t, err)
	for v := 0; v < n; v++ {
		require.Equal(t, n-1, g.Degree(v))
	}
}

func TestCompleteBipartiteShape(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.CompleteBipartite(2, 3))
	require.NoError(t, err)
	require.Equal(t, 3, g.Degree(0))
	require.Equal(t, 3, g.Degree(1))
	require.Equal(t, 2, g.Degree(2))
	require.False(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(2, 3))
	require.True(t, g.HasEdge(0, 2))
}

func TestCompleteBipartiteTooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, builder.CompleteBipartite(0, 1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomGNPRequiresRNG(t *testing.T) {
	_, err := builder.BuildGraph(5, nil, builder.RandomGNP(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomGNPInvalidProbability(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(1)}
	_, err := builder.BuildGraph(5, opts, builder.RandomGNP(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomGNPDeterministicForFixedSeed(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	g1, err := builder.BuildGraph(10, opts, builder.RandomGNP(10, 0.4))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(10, opts, builder.RandomGNP(10, 0.4))
	require.NoError(t, err)

	for u := 0; u < 10; u++ {
		for v := u + 1; v < 10; v++ {
			require.Equal(t, g1.HasEdge(u, v), g2.HasEdge(u, v))
		}
	}
}

func TestRandomGNPExtremes(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(7)))}

	empty, err := builder.BuildGraph(6, opts, builder.RandomGNP(6, 0))
	require.NoError(t, err)
	for v := 0; v < 6; v++ {
		require.Equal(t, 0, empty.Degree(v))
	}

	opts2 := []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(7)))}
	complete, err := builder.BuildGraph(6, opts2, builder.RandomGNP(6, 1))
	require.NoError(t, err)
	for v := 0; v < 6; v++ {
		require.Equal(t, 5, complete.Degree(v))
	}
}

func TestBuildGraphComposesConstructors(t *testing.T) {
	// Compose two constructors over the same vertex count. Every Path(5)
	// edge is also a Cycle(5) edge, so the duplicates are coalesced.
	g, err := builder.BuildGraph(5, nil, builder.Cycle(5), builder.Path(5))
	require.NoError(t, err)
	require.True(t, g.HasEdge(4, 0)) // from Cycle
	require.True(t, g.HasEdge(0, 1)) // shared by both
}

func TestBuildGraphNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(3, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
