package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/ioformat"
	"github.com/chromatyna/minorfind/linear"
)

func TestWriteLinearMinor(t *testing.T) {
	g := graph.New()
	_, err := g.InternNode("v0")
	require.NoError(t, err)
	_, err = g.InternNode("v1")
	require.NoError(t, err)
	_, err = g.InternNode("v2")
	require.NoError(t, err)
	_, err = g.InternNode("v3")
	require.NoError(t, err)
	eid, err := g.AddEdge("v0", "v2", 3, 0)
	require.NoError(t, err)

	m := linear.Minor{
		Segments: []linear.Segment{{Start: 0, End: 1}, {Start: 2, End: 3}},
		Edges:    []linear.ChosenEdge{{EdgeID: eid, FromSegment: 0, ToSegment: 1}},
	}

	var sb strings.Builder
	require.NoError(t, ioformat.WriteLinearMinor(&sb, g, m))

	out := sb.String()
	require.Contains(t, out, "MINOR {")
	require.Contains(t, out, "segment=0 start=(0=v0) end=(1=v1)")
	require.Contains(t, out, "segment=1 start=(2=v2) end=(3=v3)")
	require.Contains(t, out, "from 0 to 1")
	require.Contains(t, out, "left=(0=v0)")
	require.Contains(t, out, "right=(2=v2)")
}
