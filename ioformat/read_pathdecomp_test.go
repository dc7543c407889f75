package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromatyna/minorfind/ioformat"
)

func TestReadPathDecomp_Valid(t *testing.T) {
	src := `
INTRODUCE_NODE v0
INTRODUCE_NODE v1
INTRODUCE_EDGE 0 1 1 1
FORGET_NODE v0
FORGET_NODE v1
`
	pd, err := ioformat.ReadPathDecomp(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, pd.Steps, 5)
}

func TestReadPathDecomp_ForgetAbsentName(t *testing.T) {
	src := "INTRODUCE_NODE v0\nFORGET_NODE v1\n"
	_, err := ioformat.ReadPathDecomp(strings.NewReader(src))
	require.Error(t, err)

	var fe *ioformat.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 2, fe.Line)
}

func TestReadPathDecomp_BagNotEmptyAtEnd(t *testing.T) {
	src := "INTRODUCE_NODE v0\nINTRODUCE_NODE v1\nFORGET_NODE v0\n"
	_, err := ioformat.ReadPathDecomp(strings.NewReader(src))
	require.Error(t, err)

	var fe *ioformat.FormatError
	require.ErrorAs(t, err, &fe)
}

func TestReadPathDecomp_EdgePositionOutOfRange(t *testing.T) {
	src := "INTRODUCE_NODE v0\nINTRODUCE_EDGE 0 1 1 1\n"
	_, err := ioformat.ReadPathDecomp(strings.NewReader(src))
	require.Error(t, err)

	var fe *ioformat.FormatError
	require.ErrorAs(t, err, &fe)
}
