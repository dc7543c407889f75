package linear_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/linear"
)

// strand interns n nodes named v0..v(n-1) in order, so vertex IDs match the
// numeric suffix.
func strand(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < n; i++ {
		_, err := g.InternNode(nodeName(i))
		require.NoError(t, err)
	}

	return g
}

func nodeName(i int) string {
	return "v" + string(rune('0'+i))
}

// TestFind_K3Trivial covers boundary scenario 1: a 6-node strand with three
// jump edges admits at least one linear K_3 minor whose single chosen edge
// connects two non-adjacent segments.
func TestFind_K3Trivial(t *testing.T) {
	g := strand(t, 6)
	_, err := g.AddEdge("v0", "v3", 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("v1", "v4", 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("v2", "v5", 1, 1)
	require.NoError(t, err)

	res, err := linear.Find(g, linear.WithCliqueSize(3))
	require.NoError(t, err)
	require.NotEmpty(t, res.Minors)

	for _, m := range res.Minors {
		require.Len(t, m.Segments, 3)
		require.Len(t, m.Edges, 1)

		require.Equal(t, 0, m.Segments[0].Start)
		for i := 1; i < len(m.Segments); i++ {
			require.Equal(t, m.Segments[i-1].End+1, m.Segments[i].Start, "segments must partition a strand prefix")
		}

		ce := m.Edges[0]
		from, to := ce.FromSegment, ce.ToSegment
		if from > to {
			from, to = to, from
		}
		require.NotEqual(t, 1, to-from, "chosen edge must not connect adjacent segments")
	}
}

// TestFind_BadTriangleRejected covers boundary scenario 2: three jump edges
// forming a triangle with a common left endpoint must never all be chosen
// together, even with common endpoints explicitly allowed (which defeats
// the separate shared-endpoint rule, isolating the triangle rule itself).
func TestFind_BadTriangleRejected(t *testing.T) {
	g := strand(t, 8)
	e0, err := g.AddEdge("v0", "v3", 1, 1)
	require.NoError(t, err)
	e1, err := g.AddEdge("v0", "v5", 1, 1)
	require.NoError(t, err)
	e2, err := g.AddEdge("v3", "v5", 1, 1)
	require.NoError(t, err)

	res, err := linear.Find(g, linear.WithCliqueSize(4), linear.WithAllowCommonEndpoints(true))
	require.NoError(t, err)

	for _, m := range res.Minors {
		has := map[int]bool{}
		for _, ce := range m.Edges {
			has[ce.EdgeID] = true
		}
		require.False(t, has[e0] && has[e1] && has[e2],
			"triangle {(v0,v3),(v0,v5),(v3,v5)} must not all be chosen together")
	}
}

// TestFind_RejectsCliqueSizeOutOfRange verifies the [3, 8] bound on k.
func TestFind_RejectsCliqueSizeOutOfRange(t *testing.T) {
	g := strand(t, 3)

	_, err := linear.Find(g, linear.WithCliqueSize(2))
	require.ErrorIs(t, err, linear.ErrParameterRange)

	_, err = linear.Find(g, linear.WithCliqueSize(9))
	require.ErrorIs(t, err, linear.ErrParameterRange)
}

// TestFind_NoMinorsOnSparseStrand verifies the search terminates cleanly
// with zero results rather than failing when no K_k model exists.
func TestFind_NoMinorsOnSparseStrand(t *testing.T) {
	g := strand(t, 6)
	_, err := g.AddEdge("v0", "v5", 1, 1)
	require.NoError(t, err)

	res, err := linear.Find(g, linear.WithCliqueSize(4))
	require.NoError(t, err)
	require.Empty(t, res.Minors)
}
