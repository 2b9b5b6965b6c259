package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviation(t *testing.T) {
	square := []float64{0, 0, 4, 0, 4, 4, 0, 4}

	t.Run("exact", func(t *testing.T) {
		assert.Zero(t, Deviation(square, nil, []int{0, 1, 2, 0, 2, 3}, 2))
	})

	t.Run("half missing", func(t *testing.T) {
		assert.InDelta(t, 0.5, Deviation(square, nil, []int{0, 1, 2}, 2), 1e-12)
	})

	t.Run("no triangles", func(t *testing.T) {
		assert.Equal(t, 1.0, Deviation(square, nil, []int{}, 2))
	})

	t.Run("holes are subtracted", func(t *testing.T) {
		// The hole takes a quarter of the square; covering all of it
		// overshoots by a third.
		data := append(append([]float64{}, square...), 0, 0, 2, 0, 2, 2, 0, 2)
		assert.InDelta(t, 1.0/3, Deviation(data, []int{4}, []int{0, 1, 2, 0, 2, 3}, 2), 1e-12)
	})

	t.Run("3D ignores z", func(t *testing.T) {
		data := []float64{0, 0, 5, 4, 0, 6, 4, 4, 7, 0, 4, 8}
		assert.Zero(t, Deviation(data, nil, []int{0, 1, 2, 0, 2, 3}, 3))
	})

	t.Run("zero area", func(t *testing.T) {
		line := []float64{0, 0, 1, 1, 2, 2}
		assert.Zero(t, Deviation(line, nil, []int{0, 1, 2}, 2))
	})
}

func TestDeviation_Validation(t *testing.T) {
	square := []float64{0, 0, 4, 0, 4, 4, 0, 4}
	assert.EqualError(t, catch(func() { Deviation(square, nil, []int{0, 1, 9}, 2) }),
		"index 9 at position 2 is outside the 4 vertices")
	assert.EqualError(t, catch(func() { Deviation(square, nil, nil, 5) }),
		"unsupported dimension 5, want 2 or 3")
}
