package internal

import (
	"math"
	"sync/atomic"
)

// Rings above this many coordinates get a z-order index to speed up the ear
// test.
const hashThreshold = 80

// Escalation level of the clipper for one ring. Each pass is tried only once
// the previous one stops finding ears.
type pass int

const (
	// Clip ears
	passClip pass = iota
	// Filter out degenerate points, then clip again
	passFilter
	// Cure small self-intersections, then clip again
	passCure
	// Split the ring along a valid diagonal and start over on each half
	passSplit
)

// A ring waiting to be clipped at a given pass.
type task struct {
	ear  handle
	pass pass
}

// State for a single triangulation call. Nothing is shared between calls.
type earcut struct {
	*arena
	data []float64
	dim  int
	// Numbers the call for trace names
	call uint64

	minX, minY float64
	// Scale to the 15 bit z-order grid, or zero to skip hashing
	invSize float64

	triangles []int
}

// Earcut triangulates the polygon in data, a flat buffer of vertices with
// stride dim. holeIndices holds the starting vertex index of each hole ring;
// everything before the first one is the outer ring. The result is a flat list
// of vertex indices, three per triangle.
func Earcut(data []float64, holeIndices []int, dim int) []int {
	checkBuffer(data, holeIndices, dim)
	return newEarcut(data, dim).triangulate(holeIndices, true)
}

func newEarcut(data []float64, dim int) *earcut {
	return &earcut{
		arena: newArena(len(data) / dim * 3 / 2),
		data:  data,
		dim:   dim,
		call:  atomic.AddUint64(&calls, 1),
	}
}

func (e *earcut) triangulate(holeIndices []int, hashing bool) []int {
	if len(e.data) < 3 {
		return []int{}
	}
	e.triangles = make([]int, 0, len(e.data)/e.dim*3)

	outerLen := len(e.data)
	if len(holeIndices) > 0 {
		outerLen = holeIndices[0] * e.dim
	}

	outer := e.linkedList(0, outerLen, true)
	if outer == none || e.at(outer).next == e.at(outer).prev {
		return e.triangles
	}

	if len(holeIndices) > 0 {
		outer = e.eliminateHoles(holeIndices, outer)
	}

	if hashing && len(e.data) > hashThreshold*e.dim {
		e.computeBounds(outerLen)
	}

	e.run(outer)
	return e.triangles
}

// Bounding box of the outer ring, which scales all coordinates for the
// z-order hash.
func (e *earcut) computeBounds(outerLen int) {
	minX, minY := e.data[0], e.data[1]
	maxX, maxY := minX, minY
	for i := e.dim; i < outerLen; i += e.dim {
		x, y := e.data[i], e.data[i+1]
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	e.minX, e.minY = minX, minY

	size := math.Max(maxX-minX, maxY-minY)
	if size != 0 {
		e.invSize = 32767 / size
	} else {
		e.invSize = 0
	}
}

// Process rings until none are left. Follow up work for a ring is pushed on
// top of the stack, so each half of a split is finished before the next one
// starts, which keeps the output order stable.
func (e *earcut) run(start handle) {
	stack := []task{{ear: start, pass: passClip}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = e.step(t, stack)
	}
}

func (e *earcut) step(t task, stack []task) []task {
	switch t.pass {
	case passSplit:
		return e.splitEarcut(t.ear, stack)
	case passClip:
		if e.invSize != 0 {
			e.indexCurve(t.ear)
		}
	}

	ear, stalled := e.clipEars(t.ear)
	if !stalled {
		return stack
	}

	if traceEnabled() {
		tracef("ring %s stalled at pass %s with %d nodes", e.name(ear), passName(t.pass), e.ringLen(ear))
	}

	switch t.pass {
	case passClip:
		ear = e.filterPoints(ear, none)
		return append(stack, task{ear: ear, pass: passFilter})
	case passFilter:
		ear = e.cureLocalIntersections(e.filterPoints(ear, none))
		return append(stack, task{ear: ear, pass: passCure})
	default:
		return append(stack, task{ear: ear, pass: passSplit})
	}
}

// Cut ears off the ring starting at ear until only two nodes remain or a full
// loop finds no ear. In the second case, it returns stalled and the node it
// stopped at.
func (e *earcut) clipEars(ear handle) (handle, bool) {
	stop := ear
	for {
		n := e.at(ear)
		if n.prev == n.next {
			return ear, false
		}
		prev, next := n.prev, n.next

		var ok bool
		if e.invSize != 0 {
			ok = e.isEarHashed(ear)
		} else {
			ok = e.isEar(ear)
		}

		if ok {
			e.triangles = append(e.triangles, e.at(prev).i, n.i, e.at(next).i)
			e.removeNode(ear)

			// Skipping the next vertex leads to fewer sliver triangles
			ear = e.at(next).next
			stop = ear
			continue
		}

		ear = next
		if ear == stop {
			return ear, true
		}
	}
}

// Whether the node forms a convex corner with no other vertex inside it.
func (e *earcut) isEar(ear handle) bool {
	b := e.at(ear)
	a, c := e.at(b.prev), e.at(b.next)

	if area(a, b, c) >= 0 {
		// reflex
		return false
	}

	x0 := math.Min(a.x, math.Min(b.x, c.x))
	y0 := math.Min(a.y, math.Min(b.y, c.y))
	x1 := math.Max(a.x, math.Max(b.x, c.x))
	y1 := math.Max(a.y, math.Max(b.y, c.y))

	p := c.next
	for p != b.prev {
		np := e.at(p)
		if np.x >= x0 && np.x <= x1 && np.y >= y0 && np.y <= y1 &&
			pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, np.x, np.y) &&
			area(e.at(np.prev), np, e.at(np.next)) >= 0 {
			return false
		}
		p = np.next
	}
	return true
}

// Same as isEar, but only visits nodes whose z value falls within the
// triangle's bounding box, walking the z-order list in both directions.
func (e *earcut) isEarHashed(ear handle) bool {
	b := e.at(ear)
	a, c := e.at(b.prev), e.at(b.next)

	if area(a, b, c) >= 0 {
		return false
	}

	x0 := math.Min(a.x, math.Min(b.x, c.x))
	y0 := math.Min(a.y, math.Min(b.y, c.y))
	x1 := math.Max(a.x, math.Max(b.x, c.x))
	y1 := math.Max(a.y, math.Max(b.y, c.y))

	minZ := zOrder(x0, y0, e.minX, e.minY, e.invSize)
	maxZ := zOrder(x1, y1, e.minX, e.minY, e.invSize)

	blocks := func(p handle) bool {
		if p == b.prev || p == b.next {
			return false
		}
		np := e.at(p)
		return np.x >= x0 && np.x <= x1 && np.y >= y0 && np.y <= y1 &&
			pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, np.x, np.y) &&
			area(e.at(np.prev), np, e.at(np.next)) >= 0
	}

	p, n := b.prevZ, b.nextZ
	for p != none && e.at(p).z >= minZ && n != none && e.at(n).z <= maxZ {
		if blocks(p) {
			return false
		}
		p = e.at(p).prevZ

		if blocks(n) {
			return false
		}
		n = e.at(n).nextZ
	}

	for p != none && e.at(p).z >= minZ {
		if blocks(p) {
			return false
		}
		p = e.at(p).prevZ
	}

	for n != none && e.at(n).z <= maxZ {
		if blocks(n) {
			return false
		}
		n = e.at(n).nextZ
	}
	return true
}

// Walk the ring and clip the triangle around any pair of crossing edges a-p
// and p.next-b, removing p and p.next. Returns a node of what remains.
func (e *earcut) cureLocalIntersections(start handle) handle {
	p := start
	for {
		np := e.at(p)
		pNext := np.next
		a := np.prev
		b := e.at(pNext).next

		if !e.equals(a, b) && intersects(e.at(a), np, e.at(pNext), e.at(b)) &&
			e.locallyInside(a, b) && e.locallyInside(b, a) {
			e.triangles = append(e.triangles, e.at(a).i, np.i, e.at(b).i)

			e.removeNode(p)
			e.removeNode(pNext)

			p = e.at(b).next
			start = b
		} else {
			p = np.next
		}

		if p == start {
			return e.filterPoints(p, none)
		}
	}
}

// Look for a valid diagonal and split the ring in two along it. Both halves
// go back to the first pass. If there is no diagonal, the ring is dropped.
func (e *earcut) splitEarcut(start handle, stack []task) []task {
	a := start
	for {
		aPrev := e.at(a).prev
		b := e.at(e.at(a).next).next
		for b != aPrev {
			if e.at(a).i != e.at(b).i && e.isValidDiagonal(a, b) {
				c := e.splitPolygon(a, b)

				a = e.filterPoints(a, e.at(a).next)
				c = e.filterPoints(c, e.at(c).next)

				tracef("ring %s split into %s and %s", e.name(start), e.name(a), e.name(c))
				return append(stack, task{ear: c, pass: passClip}, task{ear: a, pass: passClip})
			}
			b = e.at(b).next
		}

		a = e.at(a).next
		if a == start {
			if traceEnabled() {
				tracef("ring %s has no valid diagonal, dropping %d nodes", e.name(start), e.ringLen(start))
			}
			return stack
		}
	}
}
