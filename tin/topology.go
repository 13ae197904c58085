package tin

import "github.com/iceisfun/dtmesh/qedge"

// isHullEdge reports whether e is a convex-hull (perimeter) edge: a
// half-edge whose dual borders the unbounded (ghost) face.
func (m *Mesh) isHullEdge(e qedge.ID) bool {
	if m.pool.IsGhost(e) || m.pool.IsGhost(e.Dual()) {
		return false // a spoke to the infinite vertex is not a perimeter edge
	}
	cur := m.pool.Dual(e)
	for i := 0; i < 3; i++ {
		if m.pool.IsGhost(cur) {
			return true
		}
		cur = m.pool.Forward(cur)
	}
	return false
}

// anyHullEdge returns an arbitrary hull edge, or qedge.Nil if the mesh has
// no vertices yet.
func (m *Mesh) anyHullEdge() qedge.ID {
	found := qedge.Nil
	m.pool.Iterate(func(e qedge.ID) bool {
		if !m.pool.IsGhost(e) && m.isHullEdge(e) {
			found = e
			return false
		}
		if !m.pool.IsGhost(e.Dual()) && m.isHullEdge(e.Dual()) {
			found = e.Dual()
			return false
		}
		return true
	})
	return found
}

// nextHullEdge returns the hull edge following e around the hull, i.e.
// starting at e's destination.
func (m *Mesh) nextHullEdge(e qedge.ID) qedge.ID {
	d := m.pool.Dual(e)
	next := qedge.Nil
	m.pool.Pinwheel(d, func(cand qedge.ID) bool {
		if cand != d && m.isHullEdge(cand) {
			next = cand
			return false
		}
		return true
	})
	return next
}

// ghostSpoke returns the ghost edge rooted at e's origin (origin that
// vertex, destination the virtual infinite vertex), or qedge.Nil if that
// vertex is not currently on the hull.
func (m *Mesh) ghostSpoke(e qedge.ID) qedge.ID {
	found := qedge.Nil
	m.pool.Pinwheel(e, func(cand qedge.ID) bool {
		if m.pool.IsGhost(m.pool.Dual(cand)) {
			found = cand
			return false
		}
		return true
	})
	return found
}
