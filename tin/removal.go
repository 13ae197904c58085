package tin

import (
	"fmt"
	"math"

	"github.com/iceisfun/dtmesh/qedge"
	"github.com/iceisfun/dtmesh/types"
)

// Remove deletes a vertex from the mesh, returning whether a topological
// change occurred (a merger-group member removal returns true without
// changing topology; a missing vertex returns false). Grounded on spec
// section 4.6; the teacher has no direct equivalent for this operation, so
// the cavitation and ear-fill below are derived from the spec text alone.
func (m *Mesh) Remove(v *types.Vertex) (bool, error) {
	if err := m.checkUsable(); err != nil {
		return false, err
	}
	if v == nil {
		return false, fmt.Errorf("%w: nil vertex", ErrPrecondition)
	}

	if g := v.MergerGroup(); g != nil && len(g.Members) > 1 {
		g.Remove(v)
		return true, nil
	}
	if g := v.MergerGroup(); g != nil {
		g.Remove(v)
	}

	e := m.findIncidentEdge(v)
	if e == qedge.Nil {
		return false, fmt.Errorf("%w: vertex not present in mesh", ErrPrecondition)
	}

	degree := 0
	m.pool.Pinwheel(e, func(qedge.ID) bool { degree++; return true })
	if degree < 3 {
		return false, fmt.Errorf("%w: vertex has fewer than 3 incident edges", ErrInvariant)
	}

	ring := m.cavitate(v, e)
	m.fillCavity(ring, v)
	m.removeOccupant(v)
	if m.cfg.debugRemoveVertex != nil {
		m.cfg.debugRemoveVertex(v)
	}
	return true, nil
}

// findIncidentEdge returns a live edge whose origin is v, or qedge.Nil.
func (m *Mesh) findIncidentEdge(v *types.Vertex) qedge.ID {
	e := m.locate(m.searchEdge, v.Point())
	if e == qedge.Nil {
		return qedge.Nil
	}
	cands := [3]qedge.ID{e, m.pool.Forward(e), m.pool.Forward(m.pool.Forward(e))}
	for _, cand := range cands {
		if m.pool.Origin(cand) == v {
			return cand
		}
	}
	return qedge.Nil
}

func (m *Mesh) removeOccupant(v *types.Vertex) {
	for i, o := range m.occupants {
		if o == v {
			m.occupants = append(m.occupants[:i], m.occupants[i+1:]...)
			return
		}
	}
}

// earNode is a node of the doubly linked cavity ring built during
// cavitation; edge is the live boundary half-edge running from vertex to
// next.vertex.
type earNode struct {
	vertex     *types.Vertex
	edge       qedge.ID
	prev, next *earNode
}

// cavitate walks the pinwheel of edges around v, deallocates every edge
// incident to v, and relinks the surviving "far" edges of each triangle
// into a single forward-chained boundary ring, per spec section 4.6 step 3.
func (m *Mesh) cavitate(v *types.Vertex, start qedge.ID) []*earNode {
	var spokes []qedge.ID
	m.pool.Pinwheel(start, func(e qedge.ID) bool {
		spokes = append(spokes, e)
		return true
	})

	k := len(spokes)
	farEdges := make([]qedge.ID, k)
	for i, spoke := range spokes {
		farEdges[i] = m.pool.Forward(spoke)
	}

	// spokes are visited in decreasing triangle-fan order: for spokes
	// v->x_i the far edge of spoke i runs x_i -> x_{i-1}, so the far edges
	// read in reverse form a consistently forward-chained ring
	// b_0->b_1->...->b_{k-1}->b_0.
	ring := make([]qedge.ID, k)
	for i := 0; i < k; i++ {
		ring[i] = farEdges[k-1-i]
	}

	for _, spoke := range spokes {
		m.pool.Deallocate(spoke)
	}

	nodes := make([]*earNode, k)
	for i, re := range ring {
		nodes[i] = &earNode{vertex: m.pool.Origin(re), edge: re}
	}
	for i := range nodes {
		nodes[i].next = nodes[(i+1)%k]
		nodes[i].prev = nodes[(i+k-1)%k]
		m.pool.SetForward(nodes[i].edge, nodes[i].next.edge)
	}
	return nodes
}

// earPenalty biases score selection so ears that would reconstruct a ghost
// triangle are closed last, and degenerate ears (a repeated vertex) are
// never chosen except as the forced final triangle.
const earPenalty = 1e18

// fillCavity repeatedly closes the lowest-score ear in the ring until three
// nodes remain, per spec section 4.6 steps 4-6.
func (m *Mesh) fillCavity(nodes []*earNode, removed *types.Vertex) {
	live := make(map[*earNode]bool, len(nodes))
	for _, n := range nodes {
		live[n] = true
	}
	count := len(nodes)

	for count > 3 {
		var best *earNode
		bestScore := math.Inf(1)
		for n := range live {
			s := m.earScore(n, removed)
			if s < bestScore {
				bestScore = s
				best = n
			}
		}
		if best == nil {
			break
		}
		m.closeEar(best)
		delete(live, best)
		count--
	}
}

func (m *Mesh) earScore(n *earNode, v *types.Vertex) float64 {
	p, c, nx := n.prev.vertex, n.vertex, n.next.vertex
	if p == nx {
		return earPenalty * 2
	}
	score := float64(circleTest(p, c, nx, v))
	if p == nil || c == nil || nx == nil {
		score += earPenalty
	}
	return score
}

// closeEar removes node n from its ring, allocating a new edge from
// n.prev.vertex to n.next.vertex and forming the triangle (prev, n, next).
func (m *Mesh) closeEar(n *earNode) {
	p, nx := n.prev, n.next
	pcEdge := p.edge  // prev.vertex -> n.vertex
	cnEdge := n.edge  // n.vertex -> next.vertex

	newEdge := m.pool.Allocate(p.vertex, nx.vertex)
	dualNew := m.pool.Dual(newEdge)

	m.pool.SetForward(pcEdge, cnEdge)
	m.pool.SetForward(cnEdge, dualNew)
	m.pool.SetForward(dualNew, pcEdge)

	if m.cfg.debugAddTriangle != nil {
		m.cfg.debugAddTriangle(types.NewTriangleRef(p.vertex, n.vertex, nx.vertex))
	}

	outgoing := nx.edge
	m.pool.SetForward(newEdge, outgoing)
	m.pool.SetForward(p.prev.edge, newEdge)

	p.edge = newEdge
	p.next = nx
	nx.prev = p
}
