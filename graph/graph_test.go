package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/graph"
)

// TestGraph_InternNode verifies interning assigns dense, strand-ordered IDs
// and is idempotent on repeat names.
func TestGraph_InternNode(t *testing.T) {
	g := graph.New()

	id0, err := g.InternNode("v0")
	require.NoError(t, err)
	require.Equal(t, 0, id0)

	id1, err := g.InternNode("v1")
	require.NoError(t, err)
	require.Equal(t, 1, id1)

	// Re-interning returns the same ID, does not grow Size.
	again, err := g.InternNode("v0")
	require.NoError(t, err)
	require.Equal(t, id0, again)
	require.Equal(t, 2, g.Size())

	_, err = g.InternNode("")
	require.ErrorIs(t, err, graph.ErrEmptyName)
}

// TestGraph_AddEdge verifies edge IDs are insertion-ordered and both
// endpoints' incidence lists record the new edge.
func TestGraph_AddEdge(t *testing.T) {
	g := graph.New()

	eid, err := g.AddEdge("v0", "v3", 5, 0)
	require.NoError(t, err)
	require.Equal(t, 0, eid)

	e, err := g.Edge(eid)
	require.NoError(t, err)
	require.Equal(t, 0, e.U)
	require.Equal(t, 1, e.V) // v3 is the second interned name -> ID 1
	require.False(t, e.Solid())

	require.Contains(t, g.Incident(0), eid)
	require.Contains(t, g.Incident(1), eid)

	_, err = g.Edge(999)
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

// TestEdge_SolidFirstSecond verifies the solid predicate and ordered
// endpoint accessors used throughout the engines.
func TestEdge_SolidFirstSecond(t *testing.T) {
	e := graph.Edge{U: 5, V: 2, P: 1, Q: 1}
	require.True(t, e.Solid())
	require.Equal(t, 2, e.First())
	require.Equal(t, 5, e.Second())

	jump := graph.Edge{U: 1, V: 9, P: 3, Q: 0}
	require.False(t, jump.Solid())
}
