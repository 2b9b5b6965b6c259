package internal

// A ring is a circular doubly linked list of nodes stored in a per-call arena.
// Nodes are addressed by handle rather than pointer so that a ring can be
// split, bridged and relinked without any shared ownership. Removed nodes keep
// their (stale) links, which some passes read right after removal, so slots
// are never reused within a call.

type handle int32

const none handle = -1

type node struct {
	// Vertex index into the input buffer (offset / dim)
	i    int
	x, y float64

	prev, next handle

	// Z-order curve value and links for the spatial index
	z            int32
	prevZ, nextZ handle

	// Steiner points are never filtered out
	steiner bool
}

type arena struct {
	nodes []node
}

func newArena(capacity int) *arena {
	return &arena{nodes: make([]node, 0, capacity)}
}

func (a *arena) newNode(i int, x, y float64) handle {
	a.nodes = append(a.nodes, node{
		i:     i,
		x:     x,
		y:     y,
		prev:  none,
		next:  none,
		prevZ: none,
		nextZ: none,
	})
	return handle(len(a.nodes) - 1)
}

func (a *arena) at(h handle) *node {
	return &a.nodes[h]
}

// Create a node and link it after last. If last is none, the node becomes a
// ring of one.
func (a *arena) insertNode(i int, x, y float64, last handle) handle {
	p := a.newNode(i, x, y)
	if last == none {
		a.nodes[p].prev = p
		a.nodes[p].next = p
		return p
	}
	next := a.nodes[last].next
	a.nodes[p].next = next
	a.nodes[p].prev = last
	a.nodes[next].prev = p
	a.nodes[last].next = p
	return p
}

// Unlink p from its ring and from the z-order list.
func (a *arena) removeNode(p handle) {
	n := &a.nodes[p]
	a.nodes[n.next].prev = n.prev
	a.nodes[n.prev].next = n.next
	if n.prevZ != none {
		a.nodes[n.prevZ].nextZ = n.nextZ
	}
	if n.nextZ != none {
		a.nodes[n.nextZ].prevZ = n.prevZ
	}
}

// Link two nodes with a bridge. If a and b are in the same ring, the ring is
// split into two. If they are in different rings, the rings are merged into
// one. Either way, a and b are duplicated so that each side of the bridge has
// its own copy, and the copy of b is returned.
func (a *arena) splitPolygon(pa, pb handle) handle {
	na, nb := a.nodes[pa], a.nodes[pb]
	a2 := a.newNode(na.i, na.x, na.y)
	b2 := a.newNode(nb.i, nb.x, nb.y)
	an := na.next
	bp := nb.prev

	a.nodes[pa].next = pb
	a.nodes[pb].prev = pa

	a.nodes[a2].next = an
	a.nodes[an].prev = a2

	a.nodes[b2].next = a2
	a.nodes[a2].prev = b2

	a.nodes[bp].next = b2
	a.nodes[b2].prev = bp

	return b2
}

func (a *arena) equals(p, q handle) bool {
	np, nq := &a.nodes[p], &a.nodes[q]
	return np.x == nq.x && np.y == nq.y
}

func (a *arena) ringLen(start handle) int {
	n := 0
	p := start
	for {
		n++
		p = a.nodes[p].next
		if p == start {
			return n
		}
	}
}
