package internal

// Z-order (Morton) value of a point, with coordinates scaled to 15 bits
// relative to the outer ring's bounding box.
func zOrder(x, y, minX, minY, invSize float64) int32 {
	ix := int32(int64((x - minX) * invSize))
	iy := int32(int64((y - minY) * invSize))

	ix = (ix | (ix << 8)) & 0x00FF00FF
	ix = (ix | (ix << 4)) & 0x0F0F0F0F
	ix = (ix | (ix << 2)) & 0x33333333
	ix = (ix | (ix << 1)) & 0x55555555

	iy = (iy | (iy << 8)) & 0x00FF00FF
	iy = (iy | (iy << 4)) & 0x0F0F0F0F
	iy = (iy | (iy << 2)) & 0x33333333
	iy = (iy | (iy << 1)) & 0x55555555

	return ix | (iy << 1)
}

// Compute z values for the ring and thread its nodes onto a z-sorted list.
func (e *earcut) indexCurve(start handle) {
	p := start
	for {
		np := e.at(p)
		if np.z == 0 {
			np.z = zOrder(np.x, np.y, e.minX, e.minY, e.invSize)
		}
		np.prevZ = np.prev
		np.nextZ = np.next
		p = np.next
		if p == start {
			break
		}
	}

	e.at(e.at(p).prevZ).nextZ = none
	e.at(p).prevZ = none

	e.sortLinked(p)
}

// Bottom-up merge sort of the z-linked list starting at list. Returns the new
// head.
func (e *earcut) sortLinked(list handle) handle {
	inSize := 1
	for {
		p := list
		list = none
		tail := none
		numMerges := 0

		for p != none {
			numMerges++
			q := p
			pSize := 0
			for i := 0; i < inSize; i++ {
				pSize++
				q = e.at(q).nextZ
				if q == none {
					break
				}
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && q != none) {
				var n handle
				if pSize != 0 && (qSize == 0 || q == none || e.at(p).z <= e.at(q).z) {
					n = p
					p = e.at(p).nextZ
					pSize--
				} else {
					n = q
					q = e.at(q).nextZ
					qSize--
				}

				if tail != none {
					e.at(tail).nextZ = n
				} else {
					list = n
				}
				e.at(n).prevZ = tail
				tail = n
			}
			p = q
		}

		e.at(tail).nextZ = none
		if numMerges <= 1 {
			return list
		}
		inSize *= 2
	}
}
