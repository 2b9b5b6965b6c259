package internal

import "math"

// Tessellate re-cuts a triangle mesh so that no triangle crosses a multiple of
// modulo along any of the dim axes. New vertices are appended to vertices and
// new triangles to indices; triangles that need splitting are rewritten in
// place. Both grown slices are returned.
//
// A modulo of +Inf leaves the mesh as it is.
func Tessellate(vertices []float64, indices []int, modulo float64, dim int) ([]float64, []int) {
	checkBuffer(vertices, nil, dim)
	checkIndices(indices, len(vertices)/dim)
	if math.IsInf(modulo, 1) {
		return vertices, indices
	}
	checkModulo(modulo)

	g := &grid{vertices: vertices, indices: indices, dim: dim, modulo: modulo}
	for axis := 0; axis < dim; axis++ {
		g.axis = axis
		for i := 0; i < len(g.indices); i += 3 {
			a, b, c := g.indices[i], g.indices[i+1], g.indices[i+2]
			if tri, ok := g.splitIfNecessary(a, b, c); ok {
				g.indices[i], g.indices[i+1], g.indices[i+2] = tri[0], tri[1], tri[2]
				// Look at the rewritten slot again
				i -= 3
			}
		}
		if traceEnabled() {
			tracef("grid axis %d at %v: %d vertices, %d triangles", axis, modulo, len(g.vertices)/dim, len(g.indices)/3)
		}
	}
	return g.vertices, g.indices
}

type grid struct {
	vertices []float64
	indices  []int
	dim      int
	axis     int
	modulo   float64
}

func (g *grid) value(i int) float64 {
	return g.vertices[i*g.dim+g.axis]
}

// If one corner of the triangle (i1, i2, i3) is strictly below or above the
// other two and a grid line passes between it and them, cut the triangle at
// that line. The fan of emitted triangles is appended to the index list and
// the leftover triangle on the far side is returned.
func (g *grid) splitIfNecessary(i1, i2, i3 int) ([3]int, bool) {
	v1, v2, v3 := g.value(i1), g.value(i2), g.value(i3)

	if v1 < v2 && v1 < v3 {
		modPoint := g.lineAbove(v1)
		if modPoint <= v2 && modPoint <= v3 && v2 != modPoint {
			return g.splitRight(modPoint, i1, i2, i3, v1, v2, v3), true
		}
	} else if v1 > v2 && v1 > v3 {
		modPoint := g.lineBelow(v1)
		if modPoint >= v2 && modPoint >= v3 && v2 != modPoint {
			return g.splitLeft(modPoint, i1, i2, i3, v1, v2, v3), true
		}
	}

	if v2 < v1 && v2 < v3 {
		modPoint := g.lineAbove(v2)
		if modPoint <= v3 && modPoint <= v1 && (v1 != modPoint || v3 != modPoint) {
			return g.splitRight(modPoint, i2, i3, i1, v2, v3, v1), true
		}
	} else if v2 > v1 && v2 > v3 {
		modPoint := g.lineBelow(v2)
		if modPoint >= v3 && modPoint >= v1 && (v1 != modPoint || v3 != modPoint) {
			return g.splitLeft(modPoint, i2, i3, i1, v2, v3, v1), true
		}
	}

	if v3 < v1 && v3 < v2 {
		modPoint := g.lineAbove(v3)
		if modPoint <= v1 && modPoint <= v2 && (v1 != modPoint || v2 != modPoint) {
			return g.splitRight(modPoint, i3, i1, i2, v3, v1, v2), true
		}
	} else if v3 > v1 && v3 > v2 {
		modPoint := g.lineBelow(v3)
		if modPoint >= v1 && modPoint >= v2 && (v1 != modPoint || v2 != modPoint) {
			return g.splitLeft(modPoint, i3, i1, i2, v3, v1, v2), true
		}
	}

	return [3]int{}, false
}

// Grid lines are the values k*modulo for integer k, always computed by that
// one multiplication so that a line reached by stepping compares equal to the
// same line found from a vertex. Dividing first can land k one off, so it is
// nudged into place.

// The lowest grid line strictly above v.
func (g *grid) lineAbove(v float64) float64 {
	k := math.Floor(v/g.modulo) + 1
	for k*g.modulo <= v {
		k++
	}
	for (k-1)*g.modulo > v {
		k--
	}
	return k * g.modulo
}

// The highest grid line strictly below v.
func (g *grid) lineBelow(v float64) float64 {
	k := math.Ceil(v/g.modulo) - 1
	for k*g.modulo >= v {
		k--
	}
	for (k+1)*g.modulo < v {
		k++
	}
	return k * g.modulo
}

// Append a vertex on the edge (i1, i2) where the split axis equals split,
// interpolating every other axis along the edge. Returns its index.
func (g *grid) createVertex(split float64, i1, i2 int, v1, v2 float64) int {
	index := len(g.vertices) / g.dim
	travelDivisor := (v2 - v1) / (split - v1)
	for d := 0; d < g.dim; d++ {
		if d == g.axis {
			g.vertices = append(g.vertices, split)
			continue
		}
		va1 := g.vertices[i1*g.dim+d]
		va2 := g.vertices[i2*g.dim+d]
		g.vertices = append(g.vertices, va1+(va2-va1)/travelDivisor)
	}
	return index
}

// Cut upward from the low corner i1, one grid line at a time, until the lower
// of v2 and v3 is reached.
func (g *grid) splitRight(modPoint float64, i1, i2, i3 int, v1, v2, v3 float64) [3]int {
	i12 := g.createVertex(modPoint, i1, i2, v1, v2)
	i13 := g.createVertex(modPoint, i1, i3, v1, v3)
	g.indices = append(g.indices, i1, i12, i13)
	modPoint = g.lineAbove(modPoint)

	if v2 < v3 {
		for modPoint < v2 {
			i13, i12 = g.band(modPoint, i1, i2, i3, v1, v2, v3, i12, i13)
			modPoint = g.lineAbove(modPoint)
		}
		g.indices = append(g.indices, i13, i12, i2)
		return [3]int{i13, i2, i3}
	}

	for modPoint < v3 {
		i13, i12 = g.band(modPoint, i1, i2, i3, v1, v2, v3, i12, i13)
		modPoint = g.lineAbove(modPoint)
	}
	g.indices = append(g.indices, i13, i12, i3)
	return [3]int{i3, i12, i2}
}

// Cut downward from the high corner i1, one grid line at a time, until the
// higher of v2 and v3 is reached.
func (g *grid) splitLeft(modPoint float64, i1, i2, i3 int, v1, v2, v3 float64) [3]int {
	i12 := g.createVertex(modPoint, i1, i2, v1, v2)
	i13 := g.createVertex(modPoint, i1, i3, v1, v3)
	g.indices = append(g.indices, i1, i12, i13)
	modPoint = g.lineBelow(modPoint)

	if v2 > v3 {
		for modPoint > v2 {
			i13, i12 = g.band(modPoint, i1, i2, i3, v1, v2, v3, i12, i13)
			modPoint = g.lineBelow(modPoint)
		}
		g.indices = append(g.indices, i13, i12, i2)
		return [3]int{i13, i2, i3}
	}

	for modPoint > v3 {
		i13, i12 = g.band(modPoint, i1, i2, i3, v1, v2, v3, i12, i13)
		modPoint = g.lineBelow(modPoint)
	}
	g.indices = append(g.indices, i13, i12, i3)
	return [3]int{i3, i12, i2}
}

// Emit the two triangles of the band between the previous cut (i12, i13) and
// the next one at modPoint. Returns the new cut.
func (g *grid) band(modPoint float64, i1, i2, i3 int, v1, v2, v3 float64, i12, i13 int) (int, int) {
	g.indices = append(g.indices, i13, i12)
	next13 := g.createVertex(modPoint, i1, i3, v1, v3)
	g.indices = append(g.indices, next13, next13, i12)
	next12 := g.createVertex(modPoint, i1, i2, v1, v2)
	g.indices = append(g.indices, next12)
	return next13, next12
}
