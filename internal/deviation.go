package internal

import "math"

// Deviation measures how far a triangulation is from covering the polygon it
// came from: |area(triangles) - area(polygon)| / area(polygon), where the
// polygon area is the outer ring minus its holes. Zero is a perfect fit. A
// polygon of zero area with zero-area triangles also gives zero.
func Deviation(data []float64, holeIndices []int, triangles []int, dim int) float64 {
	checkBuffer(data, holeIndices, dim)
	checkIndices(triangles, len(data)/dim)

	outerLen := len(data)
	if len(holeIndices) > 0 {
		outerLen = holeIndices[0] * dim
	}

	polygonArea := math.Abs(SignedArea(data, 0, outerLen, dim))
	for i, hole := range holeIndices {
		start := hole * dim
		end := len(data)
		if i < len(holeIndices)-1 {
			end = holeIndices[i+1] * dim
		}
		polygonArea -= math.Abs(SignedArea(data, start, end, dim))
	}

	var trianglesArea float64
	for i := 0; i < len(triangles); i += 3 {
		a := triangles[i] * dim
		b := triangles[i+1] * dim
		c := triangles[i+2] * dim
		trianglesArea += math.Abs(
			(data[a]-data[c])*(data[b+1]-data[a+1]) -
				(data[a]-data[b])*(data[c+1]-data[a+1]))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	return math.Abs((trianglesArea - polygonArea) / polygonArea)
}
