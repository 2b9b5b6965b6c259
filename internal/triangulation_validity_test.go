package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every index refers to a vertex of the buffer.
// 2. The sum of the areas of all triangles is equal to the area of the polygon.
// 3. Sample points are covered by a triangle exactly when they are inside the
// polygon by the even-odd rule.
func AssertValidTriangulation(t *testing.T, f *fixture, triangles []int) {
	t.Helper()
	require.Zero(t, len(triangles)%3, "index count must be a multiple of 3")
	count := len(f.data) / f.dim
	for _, index := range triangles {
		require.True(t, index >= 0 && index < count, "index %d outside the %d vertices", index, count)
	}

	assert.InDelta(t, 0, Deviation(f.data, f.holes, triangles, f.dim), 1e-9, "triangle area must equal polygon area")
	validateBySampling(t, f, triangles)
}

func validateBySampling(t *testing.T, f *fixture, triangles []int) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, ring := range f.rings {
		for _, p := range ring {
			minX = math.Min(minX, p[0])
			minY = math.Min(minY, p[1])
			maxX = math.Max(maxX, p[0])
			maxY = math.Max(maxY, p[1])
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	// Offset the grid by an irrational fraction so samples don't land on edges
	jitter := step * (math.Sqrt2 - 1) / 3

	for y := minY + jitter; y <= maxY; y += step {
		for x := minX + jitter; x <= maxX; x += step {
			expected := containsByEvenOdd(f.rings, x, y)
			actual := trianglesContain(f, triangles, x, y)
			if expected {
				assert.True(t, actual, "point (%v, %v) should be covered", x, y)
			} else {
				assert.False(t, actual, "point (%v, %v) should not be covered", x, y)
			}
		}
	}
}

func containsByEvenOdd(rings [][][]float64, x, y float64) bool {
	inside := false
	for _, ring := range rings {
		for i := range ring {
			a, b := ring[i], ring[(i+1)%len(ring)]
			if (a[1] > y) != (b[1] > y) && x < (b[0]-a[0])*(y-a[1])/(b[1]-a[1])+a[0] {
				inside = !inside
			}
		}
	}
	return inside
}

func trianglesContain(f *fixture, triangles []int, x, y float64) bool {
	at := func(i int) (float64, float64) {
		return f.data[i*f.dim], f.data[i*f.dim+1]
	}
	for i := 0; i < len(triangles); i += 3 {
		ax, ay := at(triangles[i])
		bx, by := at(triangles[i+1])
		cx, cy := at(triangles[i+2])
		d1 := (x-bx)*(ay-by) - (ax-bx)*(y-by)
		d2 := (x-cx)*(by-cy) - (bx-cx)*(y-cy)
		d3 := (x-ax)*(cy-ay) - (cx-ax)*(y-ay)
		hasNeg := d1 < 0 || d2 < 0 || d3 < 0
		hasPos := d1 > 0 || d2 > 0 || d3 > 0
		if !(hasNeg && hasPos) {
			return true
		}
	}
	return false
}
