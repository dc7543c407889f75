package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/ioformat"
)

func TestReadGraph_Valid(t *testing.T) {
	src := `
NODE v0
NODE v1
NODE v2
EDGE v0 v1 1 1
EDGE v1 v2 1 1
EDGE v0 v2 3 0
`
	g, err := ioformat.ReadGraph(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
	require.Equal(t, 3, g.EdgeCount())
}

func TestReadGraph_MalformedToken(t *testing.T) {
	src := "NODE v0\nBOGUS v1\n"
	_, err := ioformat.ReadGraph(strings.NewReader(src))
	require.Error(t, err)

	var fe *ioformat.FormatError
	require.ErrorAs(t, err, &fe)
}

func TestReadGraph_EdgeReferencesUnknownNode(t *testing.T) {
	src := "NODE v0\nEDGE v0 v1 1 1\n"
	_, err := ioformat.ReadGraph(strings.NewReader(src))
	require.Error(t, err)

	var fe *ioformat.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 2, fe.Line)
	require.Contains(t, fe.Error(), "v1")
}
