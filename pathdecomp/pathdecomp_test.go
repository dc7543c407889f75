package pathdecomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/pathdecomp"
)

// TestBag_IntroduceForget verifies the bag append/remove/no-op contract for
// each of the three step kinds.
func TestBag_IntroduceForget(t *testing.T) {
	b := pathdecomp.NewBag()

	require.NoError(t, b.Step(pathdecomp.Node{Kind: pathdecomp.IntroduceNode, Name: "a"}))
	require.NoError(t, b.Step(pathdecomp.Node{Kind: pathdecomp.IntroduceNode, Name: "b"}))
	require.Equal(t, 2, b.Size())

	pos, err := b.Find("b")
	require.NoError(t, err)
	require.Equal(t, 1, pos)

	// IntroduceEdge is a no-op for the bag.
	require.NoError(t, b.Step(pathdecomp.Node{Kind: pathdecomp.IntroduceEdge, U: 0, V: 1, P: 1, Q: 1}))
	require.Equal(t, 2, b.Size())

	require.NoError(t, b.Step(pathdecomp.Node{Kind: pathdecomp.ForgetNode, Name: "a"}))
	require.Equal(t, 1, b.Size())
	require.Equal(t, "b", b.At(0))

	err = b.Step(pathdecomp.Node{Kind: pathdecomp.ForgetNode, Name: "missing"})
	require.ErrorIs(t, err, pathdecomp.ErrNameNotInBag)
}

// TestPathDecomp_Width verifies width tracks the largest bag size observed
// and that a non-empty final bag is rejected.
func TestPathDecomp_Width(t *testing.T) {
	pd := &pathdecomp.PathDecomp{Steps: []pathdecomp.Node{
		{Kind: pathdecomp.IntroduceNode, Name: "a"},
		{Kind: pathdecomp.IntroduceNode, Name: "b"},
		{Kind: pathdecomp.IntroduceEdge, U: 0, V: 1, P: 1, Q: 1},
		{Kind: pathdecomp.ForgetNode, Name: "a"},
		{Kind: pathdecomp.ForgetNode, Name: "b"},
	}}
	width, err := pd.Width()
	require.NoError(t, err)
	require.Equal(t, 2, width)

	bad := &pathdecomp.PathDecomp{Steps: []pathdecomp.Node{
		{Kind: pathdecomp.IntroduceNode, Name: "a"},
	}}
	_, err = bad.Width()
	require.ErrorIs(t, err, pathdecomp.ErrBagNotEmpty)
}
