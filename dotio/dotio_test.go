package dotio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tedderlab/moddecomp/dotio"
	"github.com/tedderlab/moddecomp/graph"
)

func TestReadStringChain(t *testing.T) {
	src := `graph { a--b--c; d; }`
	g, labels, err := dotio.ReadString(src)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, labels)
	require.Equal(t, 4, g.N())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(0, 2))
	require.Equal(t, 0, g.Degree(3))
}

func TestReadStringRepeatedIdentifierSharesVertex(t *testing.T) {
	src := `graph { a--b; a--c; }`
	g, labels, err := dotio.ReadString(src)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, labels)
	require.Equal(t, 2, g.Degree(0))
}

func TestReadStringMissingBraces(t *testing.T) {
	_, _, err := dotio.ReadString("a--b")
	require.ErrorIs(t, err, dotio.ErrInvalidDot)
}

func TestWriteStringRoundTrip(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	out, err := dotio.WriteString(g, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	g2, labels2, err := dotio.ReadString(out)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, labels2)
	require.Equal(t, g.N(), g2.N())
	for u := 0; u < g.N(); u++ {
		for v := u + 1; v < g.N(); v++ {
			require.Equal(t, g.HasEdge(u, v), g2.HasEdge(u, v))
		}
	}
}

func TestWriteStringDefaultLabels(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{0, 1}})
	require.NoError(t, err)

	out, err := dotio.WriteString(g, nil)
	require.NoError(t, err)
	require.Contains(t, out, "0--1;")
}

func TestWriteStringLabelMismatch(t *testing.T) {
	g, err := graph.New(3, nil)
	require.NoError(t, err)

	_, err = dotio.WriteString(g, []string{"a", "b"})
	require.ErrorIs(t, err, dotio.ErrInvalidDot)
}
