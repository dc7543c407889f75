package minor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/minor"
	"github.com/chromatyna/minorfind/pathdecomp"
)

// TestFind_NoStepsYieldsNoMinors verifies an empty decomposition sweeps to
// completion with nothing found: the initial empty state never reaches a
// ForgetNode step, so it can never be emitted.
func TestFind_NoStepsYieldsNoMinors(t *testing.T) {
	g := graph.New()
	pd := &pathdecomp.PathDecomp{}

	res, err := minor.Find(g, pd)
	require.NoError(t, err)
	require.Empty(t, res.Minors)
}

// TestFind_RejectsNegativeBounds verifies option validation surfaces
// ErrParameterRange for a negative bound rather than panicking or silently
// clamping.
func TestFind_RejectsNegativeBounds(t *testing.T) {
	g := graph.New()
	pd := &pathdecomp.PathDecomp{}

	_, err := minor.Find(g, pd, minor.WithMaxCost(-1))
	require.ErrorIs(t, err, minor.ErrParameterRange)
}

// TestFind_SingleNodeMinor covers the smallest nontrivial case: one node
// introduced then forgotten, with no lower bound on branch count. The
// single-branch state is disconnected from the (now empty) bag, satisfies
// min_n, and so is emitted as a one-branch, edgeless minor.
func TestFind_SingleNodeMinor(t *testing.T) {
	g := graph.New()
	pd := &pathdecomp.PathDecomp{Steps: []pathdecomp.Node{
		{Kind: pathdecomp.IntroduceNode, Name: "a"},
		{Kind: pathdecomp.ForgetNode, Name: "a"},
	}}

	res, err := minor.Find(g, pd, minor.WithMinN(0), minor.WithMaxN(5))
	require.NoError(t, err)
	require.Len(t, res.Minors, 1)

	m := res.Minors[0]
	require.Empty(t, m.Edges)
	require.Len(t, m.Branches, 1)
	require.Len(t, m.Branches[0], 1)
}

// TestFind_TwoNodesConnected exercises IntroduceEdge's connect/merge fork
// end to end: every minor returned for a two-node, one-edge decomposition
// must respect the configured branch-count bounds.
func TestFind_TwoNodesConnected(t *testing.T) {
	g := graph.New()
	pd := &pathdecomp.PathDecomp{Steps: []pathdecomp.Node{
		{Kind: pathdecomp.IntroduceNode, Name: "a"},
		{Kind: pathdecomp.IntroduceNode, Name: "b"},
		{Kind: pathdecomp.IntroduceEdge, U: 0, V: 1, P: 1, Q: 1},
		{Kind: pathdecomp.ForgetNode, Name: "a"},
		{Kind: pathdecomp.ForgetNode, Name: "b"},
	}}

	res, err := minor.Find(g, pd, minor.WithMinN(1), minor.WithMaxN(2))
	require.NoError(t, err)

	for _, m := range res.Minors {
		require.GreaterOrEqual(t, len(m.Branches), 1)
		require.LessOrEqual(t, len(m.Branches), 2)
		require.GreaterOrEqual(t, m.ArcsEdges, 0)
	}
}
