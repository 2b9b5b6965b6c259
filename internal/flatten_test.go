package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type xy struct{ x, y float64 }

func (p xy) X() float64 { return p.x }
func (p xy) Y() float64 { return p.y }

type xyz struct{ x, y, z float64 }

func (p xyz) X() float64 { return p.x }
func (p xyz) Y() float64 { return p.y }
func (p xyz) Z() float64 { return p.z }

func TestFlatten(t *testing.T) {
	vertices, holes, dim := Flatten([][][]float64{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{2, 2}, {4, 2}, {4, 4}},
		{{6, 6}, {8, 6}, {8, 8}},
	})
	assert.Equal(t, []float64{0, 0, 10, 0, 10, 10, 0, 10, 2, 2, 4, 2, 4, 4, 6, 6, 8, 6, 8, 8}, vertices)
	assert.Equal(t, []int{4, 7}, holes)
	assert.Equal(t, 2, dim)
}

func TestFlatten_3D(t *testing.T) {
	vertices, holes, dim := Flatten([][][]float64{{{0, 0, 1}, {1, 0, 2}, {0, 1, 3}}})
	assert.Equal(t, []float64{0, 0, 1, 1, 0, 2, 0, 1, 3}, vertices)
	assert.Empty(t, holes)
	assert.Equal(t, 3, dim)
}

func TestFlatten_DropsExtraComponents(t *testing.T) {
	vertices, _, dim := Flatten([][][]float64{{{0, 0}, {1, 0, 5}, {0, 1, 5, 6}}})
	assert.Equal(t, 2, dim)
	assert.Equal(t, []float64{0, 0, 1, 0, 0, 1}, vertices)
}

func TestFlatten_Empty(t *testing.T) {
	for name, rings := range map[string][][][]float64{
		"no rings":         nil,
		"empty outer ring": {{}},
		"holes only":       {{}, {{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}},
	} {
		t.Run(name, func(t *testing.T) {
			vertices, holes, dim := Flatten(rings)
			assert.Equal(t, []float64{}, vertices)
			assert.Equal(t, []int{}, holes)
			assert.Equal(t, 2, dim)
		})
	}
}

func TestFlatten_ShortPoint(t *testing.T) {
	err := catch(func() { Flatten([][][]float64{{{0, 0, 0}, {1, 0}}}) })
	assert.EqualError(t, err, "point 1 of ring 0 has 2 coordinates, want 3")
}

func TestFlattenPoints(t *testing.T) {
	vertices, holes, dim := FlattenPoints([][]Point2D{
		{xy{0, 0}, xy{4, 0}, xy{4, 4}},
		{xy{1, 1}, xy{2, 1}, xy{2, 2}},
	})
	assert.Equal(t, []float64{0, 0, 4, 0, 4, 4, 1, 1, 2, 1, 2, 2}, vertices)
	assert.Equal(t, []int{3}, holes)
	assert.Equal(t, 2, dim)
}

func TestFlattenPoints_3D(t *testing.T) {
	vertices, _, dim := FlattenPoints([][]Point2D{{xyz{0, 0, 7}, xyz{4, 0, 8}, xyz{4, 4, 9}}})
	assert.Equal(t, 3, dim)
	assert.Equal(t, []float64{0, 0, 7, 4, 0, 8, 4, 4, 9}, vertices)

	err := catch(func() { FlattenPoints([][]Point2D{{xyz{0, 0, 7}, xy{4, 0}}}) })
	assert.EqualError(t, err, "point 1 of ring 0 has no z coordinate")
}

func TestFlattenPoints_Empty(t *testing.T) {
	for name, rings := range map[string][][]Point2D{
		"no rings":   nil,
		"holes only": {{}, {xyz{0, 0, 1}, xyz{1, 0, 1}, xyz{0, 1, 1}}},
	} {
		t.Run(name, func(t *testing.T) {
			vertices, holes, dim := FlattenPoints(rings)
			assert.Equal(t, []float64{}, vertices)
			assert.Equal(t, []int{}, holes)
			assert.Equal(t, 2, dim)
		})
	}
}
