package internal

import "math"

// Signed area of the triangle (p, q, r). With y pointing up, a negative value
// is a counterclockwise turn, which is what the clipper treats as convex.
func area(p, q, r *node) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

// Whether (px, py) is inside the triangle (a, b, c), boundary included.
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// For collinear p, q, r: whether q lies within the bounding box of segment pr.
func onSegment(p, q, r *node) bool {
	return q.x <= math.Max(p.x, r.x) && q.x >= math.Min(p.x, r.x) &&
		q.y <= math.Max(p.y, r.y) && q.y >= math.Min(p.y, r.y)
}

// Whether segments p1q1 and p2q2 intersect, collinear overlaps included.
func intersects(p1, q1, p2, q2 *node) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// Whether the diagonal ab intersects any edge of a's ring, ignoring edges that
// touch a or b by vertex index.
func (a *arena) intersectsPolygon(pa, pb handle) bool {
	na, nb := a.at(pa), a.at(pb)
	p := pa
	for {
		np := a.at(p)
		nn := a.at(np.next)
		if np.i != na.i && nn.i != na.i && np.i != nb.i && nn.i != nb.i &&
			intersects(np, nn, na, nb) {
			return true
		}
		p = np.next
		if p == pa {
			return false
		}
	}
}

// Whether the diagonal ab leaves a into the interior of the polygon.
func (a *arena) locallyInside(pa, pb handle) bool {
	na, nb := a.at(pa), a.at(pb)
	prev, next := a.at(na.prev), a.at(na.next)
	if area(prev, na, next) < 0 {
		return area(na, nb, next) >= 0 && area(na, prev, nb) >= 0
	}
	return area(na, nb, prev) < 0 || area(na, next, nb) < 0
}

// Whether the midpoint of ab is inside the polygon, by even-odd crossing.
func (a *arena) middleInside(pa, pb handle) bool {
	na, nb := a.at(pa), a.at(pb)
	px := (na.x + nb.x) / 2
	py := (na.y + nb.y) / 2
	inside := false
	p := pa
	for {
		np := a.at(p)
		nn := a.at(np.next)
		if (np.y > py) != (nn.y > py) && nn.y != np.y &&
			px < (nn.x-np.x)*(py-np.y)/(nn.y-np.y)+np.x {
			inside = !inside
		}
		p = np.next
		if p == pa {
			return inside
		}
	}
}

// Whether the sector at m contains the sector at p, used to break ties
// between bridge candidates at the same angle.
func (a *arena) sectorContainsSector(m, p handle) bool {
	nm, np := a.at(m), a.at(p)
	return area(a.at(nm.prev), nm, a.at(np.prev)) < 0 &&
		area(a.at(np.next), nm, a.at(nm.next)) < 0
}

// Whether ab is a usable diagonal: it does not touch the neighbors of a, does
// not cross the ring, and either lies inside without being degenerate, or is a
// zero-length link between two coincident reflex corners.
func (a *arena) isValidDiagonal(pa, pb handle) bool {
	na, nb := a.at(pa), a.at(pb)
	if a.at(na.next).i == nb.i || a.at(na.prev).i == nb.i || a.intersectsPolygon(pa, pb) {
		return false
	}
	if a.locallyInside(pa, pb) && a.locallyInside(pb, pa) && a.middleInside(pa, pb) &&
		(area(a.at(na.prev), na, a.at(nb.prev)) != 0 || area(na, a.at(nb.prev), nb) != 0) {
		return true
	}
	return a.equals(pa, pb) &&
		area(a.at(na.prev), na, a.at(na.next)) > 0 &&
		area(a.at(nb.prev), nb, a.at(nb.next)) > 0
}

// SignedArea returns the shoelace sum over the vertices in [start, end) of a
// flat buffer with the given stride. The sign gives the ring's winding; the
// magnitude is twice the enclosed area.
func SignedArea(data []float64, start, end, dim int) float64 {
	if end-start < dim {
		return 0
	}
	var sum float64
	j := end - dim
	for i := start; i < end; i += dim {
		sum += (data[j] - data[i]) * (data[i+1] + data[j+1])
		j = i
	}
	return sum
}
