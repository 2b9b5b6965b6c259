package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText(t *testing.T) {
	in := `
0 0
10 0
10 10
0 10

  2 2
2 4
4 4
`
	rings, err := FromText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][][]float64{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{2, 2}, {2, 4}, {4, 4}},
	}, rings)
}

func TestFromText_3D(t *testing.T) {
	rings, err := FromText(strings.NewReader("0 0 1\n1 0 2\n0 1 3"))
	require.NoError(t, err)
	assert.Equal(t, [][][]float64{{{0, 0, 1}, {1, 0, 2}, {0, 1, 3}}}, rings)
}

func TestFromText_Errors(t *testing.T) {
	_, err := FromText(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, "line 2: want 2 or 3 coordinates, got 1")

	_, err = FromText(strings.NewReader("0 zero\n"))
	assert.Error(t, err)
}

func TestFromText_Empty(t *testing.T) {
	rings, err := FromText(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, [][][]float64{}, rings)
}
