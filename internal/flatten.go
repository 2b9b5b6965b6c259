package internal

// Point2D is any point with planar coordinates.
type Point2D interface {
	X() float64
	Y() float64
}

// Point3D is a point that also carries a third coordinate.
type Point3D interface {
	Point2D
	Z() float64
}

// Flatten converts rings of coordinate arrays into a flat vertex buffer. The
// first ring is the outer boundary and the rest are holes. The dimension is
// taken from the first point (3 if it has a third component, 2 otherwise) and
// applied to every point; extra components are dropped. An empty outer ring
// gives an empty polygon, whatever its holes hold.
func Flatten(rings [][][]float64) (vertices []float64, holeIndices []int, dim int) {
	if len(rings) == 0 || len(rings[0]) == 0 {
		return []float64{}, []int{}, 2
	}
	dim = 2
	if len(rings[0][0]) > 2 {
		dim = 3
	}

	vertices = make([]float64, 0, countPoints(rings)*dim)
	holeIndices = make([]int, 0, len(rings))
	count := 0
	for r, ring := range rings {
		if r > 0 {
			holeIndices = append(holeIndices, count)
		}
		for p, point := range ring {
			if len(point) < dim {
				fatalf("point %d of ring %d has %d coordinates, want %d", p, r, len(point), dim)
			}
			vertices = append(vertices, point[:dim]...)
		}
		count += len(ring)
	}
	return vertices, holeIndices, dim
}

// FlattenPoints is Flatten for rings of point values. The rings are 3D if the
// first point implements Point3D, in which case every point must.
func FlattenPoints(rings [][]Point2D) (vertices []float64, holeIndices []int, dim int) {
	if len(rings) == 0 || len(rings[0]) == 0 {
		return []float64{}, []int{}, 2
	}
	dim = 2
	if _, ok := rings[0][0].(Point3D); ok {
		dim = 3
	}

	n := 0
	for _, ring := range rings {
		n += len(ring)
	}
	vertices = make([]float64, 0, n*dim)
	holeIndices = make([]int, 0, len(rings))
	count := 0
	for r, ring := range rings {
		if r > 0 {
			holeIndices = append(holeIndices, count)
		}
		for p, point := range ring {
			vertices = append(vertices, point.X(), point.Y())
			if dim == 3 {
				p3, ok := point.(Point3D)
				if !ok {
					fatalf("point %d of ring %d has no z coordinate", p, r)
				}
				vertices = append(vertices, p3.Z())
			}
		}
		count += len(ring)
	}
	return vertices, holeIndices, dim
}

func countPoints(rings [][][]float64) int {
	n := 0
	for _, ring := range rings {
		n += len(ring)
	}
	return n
}
