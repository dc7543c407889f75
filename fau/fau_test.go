package fau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/fau"
)

// TestFAU_JoinFind verifies that Join merges components and Find reports a
// stable, shared representative for all joined indices.
func TestFAU_JoinFind(t *testing.T) {
	f := fau.Make(5)

	for i := 0; i < 5; i++ {
		require.Equal(t, i, f.Find(i))
	}

	require.True(t, f.Join(0, 1))
	require.Equal(t, f.Find(0), f.Find(1))

	require.True(t, f.Join(1, 2))
	require.Equal(t, f.Find(0), f.Find(2))

	// Joining already-connected indices is a no-op and reports false.
	require.False(t, f.Join(0, 2))

	// 3 and 4 remain in their own singleton components.
	require.NotEqual(t, f.Find(0), f.Find(3))
	require.NotEqual(t, f.Find(3), f.Find(4))
}
