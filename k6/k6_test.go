package k6_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/k6"
	"github.com/chromatyna/minorfind/pathdecomp"
)

func completeK6Decomp() *pathdecomp.PathDecomp {
	names := make([]string, 6)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}

	var steps []pathdecomp.Node
	for _, n := range names {
		steps = append(steps, pathdecomp.Node{Kind: pathdecomp.IntroduceNode, Name: n})
	}
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			steps = append(steps, pathdecomp.Node{Kind: pathdecomp.IntroduceEdge, U: i, V: j, P: 1, Q: 1})
		}
	}
	for _, n := range names {
		steps = append(steps, pathdecomp.Node{Kind: pathdecomp.ForgetNode, Name: n})
	}

	return &pathdecomp.PathDecomp{Steps: steps}
}

// TestFind_K6IsItsOwnWitness covers boundary scenario 5: the complete graph
// K_6 is its own smallest witness. With every vertex introduced up front,
// all 15 edges introduced while both endpoints are live, then every vertex
// forgotten, the engine should find exactly one minor: six singleton
// branches joined by all 15 solid bridge edges.
func TestFind_K6IsItsOwnWitness(t *testing.T) {
	g := graph.New()
	pd := completeK6Decomp()

	res, err := k6.Find(g, pd)
	require.NoError(t, err)
	require.Len(t, res.Minors, 1)

	m := res.Minors[0]
	require.Len(t, m.Branches, 6)
	for _, br := range m.Branches {
		require.Len(t, br, 1)
	}
	require.Len(t, m.Edges, 15)
	for _, e := range m.Edges {
		require.True(t, e.Solid)
		require.GreaterOrEqual(t, e.EdgeID, 0)
	}
	require.Equal(t, 15, m.ArcsEdges)

	require.NoError(t, k6.Validate(m))

	// The 15 bridge edges must cover every branch pair exactly once,
	// regardless of the order Find happened to emit them in.
	var gotPairs [][2]int
	for _, e := range m.Edges {
		gotPairs = append(gotPairs, [2]int{e.BrU, e.BrV})
	}
	sort.Slice(gotPairs, func(i, j int) bool {
		if gotPairs[i][0] != gotPairs[j][0] {
			return gotPairs[i][0] < gotPairs[j][0]
		}
		return gotPairs[i][1] < gotPairs[j][1]
	})

	var wantPairs [][2]int
	for a := 0; a < 5; a++ {
		for b := a + 1; b < 6; b++ {
			wantPairs = append(wantPairs, [2]int{a, b})
		}
	}

	if diff := cmp.Diff(wantPairs, gotPairs); diff != "" {
		t.Errorf("bridge edge branch pairs mismatch (-want +got):\n%s", diff)
	}
}

// multiVertexBranchDecomp builds a 7-node decomposition of a K_6 model
// where branch 0 is split across two bag positions, a1 and a2, joined by
// an internal edge. Branch 0's five bridge edges are split between the
// two: a1 carries the bridges to branches 1 and 2, a2 carries the bridges
// to branches 3, 4, and 5. All other branches stay singletons, bridged to
// each other exactly as in the complete graph. This exercises the
// introduceEdge same-branch merge path (k6.go's tryMergePaths fork) that
// a branch with only one vertex per branch never reaches.
func multiVertexBranchDecomp() *pathdecomp.PathDecomp {
	names := []string{"a1", "a2", "b", "c", "d", "e", "f"}
	idx := map[string]int{}
	for i, n := range names {
		idx[n] = i
	}

	edge := func(u, v string) pathdecomp.Node {
		return pathdecomp.Node{Kind: pathdecomp.IntroduceEdge, U: idx[u], V: idx[v], P: 1, Q: 1}
	}

	var steps []pathdecomp.Node
	for _, n := range names {
		steps = append(steps, pathdecomp.Node{Kind: pathdecomp.IntroduceNode, Name: n})
	}

	// branch 0's bridges, landing on a1 (toward 1,2) and a2 (toward 3,4,5).
	steps = append(steps,
		edge("a1", "b"), edge("a1", "c"),
		edge("a2", "d"), edge("a2", "e"), edge("a2", "f"),
	)
	// bridges among the five singleton branches.
	steps = append(steps,
		edge("b", "c"), edge("b", "d"), edge("b", "e"), edge("b", "f"),
		edge("c", "d"), edge("c", "e"), edge("c", "f"),
		edge("d", "e"), edge("d", "f"),
		edge("e", "f"),
	)
	// branch 0's internal edge, joining the two halves of its branch-path
	// bookkeeping last, once both bridge sides are already anchored.
	steps = append(steps, edge("a1", "a2"))

	for _, n := range names {
		steps = append(steps, pathdecomp.Node{Kind: pathdecomp.ForgetNode, Name: n})
	}

	return &pathdecomp.PathDecomp{Steps: steps}
}

// TestFind_MultiVertexBranchRequiresInternalMerge covers a K_6 model whose
// branches aren't all singletons: branch 0 spans two bag positions joined
// by an internal edge, with its bridge endpoints split across them. Unless
// introduceNode's branch-path seed carries a branch's previously-seeded
// paths forward into a later vertex of the same branch, the internal edge
// can never finish any of branch 0's ten branch-paths and this decomp
// yields nothing.
func TestFind_MultiVertexBranchRequiresInternalMerge(t *testing.T) {
	g := graph.New()
	pd := multiVertexBranchDecomp()

	res, err := k6.Find(g, pd)
	require.NoError(t, err)
	require.NotEmpty(t, res.Minors)

	var sawMultiVertexBranch bool
	for _, m := range res.Minors {
		require.Len(t, m.Branches, 6)
		for _, br := range m.Branches {
			if len(br) > 1 {
				sawMultiVertexBranch = true
			}
		}
		require.NoError(t, k6.Validate(m))
	}
	require.True(t, sawMultiVertexBranch, "expected at least one minor with a multi-vertex branch")
}

// TestFind_SparseGraphYieldsNoK6 verifies a graph with too few edges to
// ever contain a K_6 minor produces no results and no error.
func TestFind_SparseGraphYieldsNoK6(t *testing.T) {
	g := graph.New()
	pd := &pathdecomp.PathDecomp{Steps: []pathdecomp.Node{
		{Kind: pathdecomp.IntroduceNode, Name: "a"},
		{Kind: pathdecomp.IntroduceNode, Name: "b"},
		{Kind: pathdecomp.IntroduceEdge, U: 0, V: 1, P: 1, Q: 1},
		{Kind: pathdecomp.ForgetNode, Name: "a"},
		{Kind: pathdecomp.ForgetNode, Name: "b"},
	}}

	res, err := k6.Find(g, pd)
	require.NoError(t, err)
	require.Empty(t, res.Minors)
}

// TestFind_RejectsNegativeMaxFrontier verifies option validation surfaces
// ErrOptionViolation for a negative bound.
func TestFind_RejectsNegativeMaxFrontier(t *testing.T) {
	g := graph.New()
	pd := &pathdecomp.PathDecomp{}

	_, err := k6.Find(g, pd, k6.WithMaxFrontier(-1))
	require.ErrorIs(t, err, k6.ErrOptionViolation)
}
