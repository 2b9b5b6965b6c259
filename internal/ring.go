package internal

// Build a ring from the vertices in [start, end) of data, oriented so that it
// runs clockwise when clockwise is true and counterclockwise otherwise. A
// closing vertex equal to the first is dropped. Returns none for an empty
// range.
func (e *earcut) linkedList(start, end int, clockwise bool) handle {
	dim := e.dim
	if end-start < dim {
		return none
	}
	last := none
	if clockwise == (SignedArea(e.data, start, end, dim) > 0) {
		for i := start; i < end; i += dim {
			last = e.insertNode(i/dim, e.data[i], e.data[i+1], last)
		}
	} else {
		for i := end - dim; i >= start; i -= dim {
			last = e.insertNode(i/dim, e.data[i], e.data[i+1], last)
		}
	}

	if last != none && e.equals(last, e.at(last).next) {
		next := e.at(last).next
		e.removeNode(last)
		last = next
	}
	return last
}

// Remove duplicate and collinear non-steiner nodes from the ring between start
// and end. Returns a node still in the ring.
func (e *earcut) filterPoints(start, end handle) handle {
	if start == none {
		return start
	}
	if end == none {
		end = start
	}
	p := start
	for {
		again := false
		np := e.at(p)
		if !np.steiner && (e.equals(p, np.next) || area(e.at(np.prev), np, e.at(np.next)) == 0) {
			e.removeNode(p)
			p = np.prev
			end = p
			if p == e.at(p).next {
				break
			}
			again = true
		} else {
			p = np.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

// Find the leftmost node of a ring, breaking ties by lowest y.
func (e *earcut) getLeftmost(start handle) handle {
	p := start
	leftmost := start
	for {
		np, nl := e.at(p), e.at(leftmost)
		if np.x < nl.x || (np.x == nl.x && np.y < nl.y) {
			leftmost = p
		}
		p = np.next
		if p == start {
			return leftmost
		}
	}
}
