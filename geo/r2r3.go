package geo

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Rings of planar points.
func FromR2(rings [][]r2.Point) [][][]float64 {
	result := make([][][]float64, len(rings))
	for i, ring := range rings {
		result[i] = make([][]float64, len(ring))
		for j, p := range ring {
			result[i][j] = []float64{p.X, p.Y}
		}
	}
	return result
}

// Rings of 3D points. Triangulation happens in the xy plane; z is carried
// along.
func FromR3(rings [][]r3.Vector) [][][]float64 {
	result := make([][][]float64, len(rings))
	for i, ring := range rings {
		result[i] = make([][]float64, len(ring))
		for j, p := range ring {
			result[i][j] = []float64{p.X, p.Y, p.Z}
		}
	}
	return result
}

// Vertices of a 2D mesh buffer as r2 points.
func ToR2(vertices []float64) []r2.Point {
	points := make([]r2.Point, 0, len(vertices)/2)
	for i := 0; i+1 < len(vertices); i += 2 {
		points = append(points, r2.Point{X: vertices[i], Y: vertices[i+1]})
	}
	return points
}

// Vertices of a 3D mesh buffer as r3 vectors.
func ToR3(vertices []float64) []r3.Vector {
	points := make([]r3.Vector, 0, len(vertices)/3)
	for i := 0; i+2 < len(vertices); i += 3 {
		points = append(points, r3.Vector{X: vertices[i], Y: vertices[i+1], Z: vertices[i+2]})
	}
	return points
}
