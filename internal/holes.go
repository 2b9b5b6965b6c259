package internal

import (
	"math"
	"sort"
)

// Link every hole into the outer ring, left to right by each hole's leftmost
// vertex. Returns a node of the merged ring.
func (e *earcut) eliminateHoles(holeIndices []int, outer handle) handle {
	queue := make([]handle, 0, len(holeIndices))
	for i, hole := range holeIndices {
		start := hole * e.dim
		end := len(e.data)
		if i < len(holeIndices)-1 {
			end = holeIndices[i+1] * e.dim
		}
		list := e.linkedList(start, end, false)
		if list == none {
			continue
		}
		if list == e.at(list).next {
			e.at(list).steiner = true
		}
		queue = append(queue, e.getLeftmost(list))
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return e.at(queue[i]).x < e.at(queue[j]).x
	})

	for _, hole := range queue {
		outer = e.eliminateHole(hole, outer)
	}
	return outer
}

// Bridge a single hole into the outer ring and clean up collinear points
// around both ends of the cut.
func (e *earcut) eliminateHole(hole, outer handle) handle {
	bridge := e.findHoleBridge(hole, outer)
	if bridge == none {
		tracef("hole %s has no bridge to %s, skipping", e.name(hole), e.name(outer))
		return outer
	}
	bridgeReverse := e.splitPolygon(bridge, hole)

	e.filterPoints(bridgeReverse, e.at(bridgeReverse).next)
	return e.filterPoints(bridge, e.at(bridge).next)
}

// Find a vertex of the outer ring that the hole's leftmost vertex can see,
// using David Eberly's ray casting method.
func (e *earcut) findHoleBridge(hole, outer handle) handle {
	h := *e.at(hole)
	hx, hy := h.x, h.y
	qx := math.Inf(-1)
	m := none

	// Cast a ray from the hole to the left and find the nearest outer edge it
	// crosses. The endpoint of that edge with lesser x is the candidate.
	p := outer
	for {
		np := e.at(p)
		nn := e.at(np.next)
		if hy <= np.y && hy >= nn.y && nn.y != np.y {
			x := np.x + (hy-np.y)*(nn.x-np.x)/(nn.y-np.y)
			if x <= hx && x > qx {
				qx = x
				if np.x < nn.x {
					m = p
				} else {
					m = np.next
				}
				if x == hx {
					// The hole touches the outer edge
					return m
				}
			}
		}
		p = np.next
		if p == outer {
			break
		}
	}

	if m == none {
		return none
	}

	// Points inside the triangle of the hole vertex, the ray intersection and
	// the candidate block the bridge. If any, take the one at the smallest
	// angle to the ray.
	stop := m
	mx, my := e.at(m).x, e.at(m).y
	tanMin := math.Inf(1)

	p = m
	for {
		np := e.at(p)
		if hx >= np.x && np.x >= mx && hx != np.x {
			var ax, cx float64
			if hy < my {
				ax, cx = hx, qx
			} else {
				ax, cx = qx, hx
			}
			if pointInTriangle(ax, hy, mx, my, cx, hy, np.x, np.y) {
				tan := math.Abs(hy-np.y) / (hx - np.x)
				if e.locallyInside(p, hole) &&
					(tan < tanMin ||
						(tan == tanMin && (np.x > e.at(m).x ||
							(np.x == e.at(m).x && e.sectorContainsSector(m, p))))) {
					m = p
					tanMin = tan
				}
			}
		}
		p = np.next
		if p == stop {
			return m
		}
	}
}
