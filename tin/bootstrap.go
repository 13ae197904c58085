package tin

import (
	"math"

	"github.com/iceisfun/dtmesh/algorithm/robust"
	"github.com/iceisfun/dtmesh/predicates"
	"github.com/iceisfun/dtmesh/types"
)

// maxBootstrapCandidates bounds the O(n^3) triple search used to find a
// non-collinear seed triangle; pending vertices beyond this count still
// participate once bootstrap succeeds, via normal insertion.
const maxBootstrapCandidates = 64

// tryBootstrap scores candidate triples among the pending vertices on the
// absolute value of their orientation and, if a non-degenerate triple is
// found, builds the initial three-triangle-plus-ghost mesh and inserts the
// remaining pending vertices normally.
func (m *Mesh) tryBootstrap() bool {
	if len(m.pending) < 3 {
		return false
	}

	n := len(m.pending)
	limit := n
	if limit > maxBootstrapCandidates {
		limit = maxBootstrapCandidates
	}

	bestI, bestJ, bestK := -1, -1, -1
	bestScore := 0.0
	for i := 0; i < limit; i++ {
		for j := i + 1; j < limit; j++ {
			for k := j + 1; k < limit; k++ {
				a, b, c := m.pending[i], m.pending[j], m.pending[k]
				if robust.Orient2D(a.Point(), b.Point(), c.Point()) == 0 {
					continue
				}
				score := math.Abs(predicates.Area2(a.Point(), b.Point(), c.Point()))
				if score > bestScore {
					bestScore = score
					bestI, bestJ, bestK = i, j, k
				}
			}
		}
	}

	if bestI < 0 {
		return false // every candidate triple is collinear
	}

	a, b, c := m.pending[bestI], m.pending[bestJ], m.pending[bestK]
	m.buildInitialTriangle(a, b, c)
	m.bootstrapped = true

	rest := make([]*types.Vertex, 0, n-3)
	for idx, v := range m.pending {
		if idx == bestI || idx == bestJ || idx == bestK {
			continue
		}
		rest = append(rest, v)
	}
	m.pending = nil

	for _, v := range rest {
		m.insertVertex(v)
	}
	return true
}

// buildInitialTriangle allocates the initial real triangle (a,b,c) in CCW
// order plus three ghost spokes closing the hull to the virtual infinite
// vertex, per spec section 4.4.
func (m *Mesh) buildInitialTriangle(a, b, c *types.Vertex) {
	if robust.Orient2D(a.Point(), b.Point(), c.Point()) < 0 {
		b, c = c, b
	}

	eAB := m.pool.Allocate(a, b)
	eBC := m.pool.Allocate(b, c)
	eCA := m.pool.Allocate(c, a)

	m.pool.SetForward(eAB, eBC)
	m.pool.SetForward(eBC, eCA)
	m.pool.SetForward(eCA, eAB)

	gA := m.pool.Allocate(a, nil)
	gB := m.pool.Allocate(b, nil)
	gC := m.pool.Allocate(c, nil)

	dAB := m.pool.Dual(eAB)
	dBC := m.pool.Dual(eBC)
	dCA := m.pool.Dual(eCA)

	m.pool.SetForward(dAB, gA)
	m.pool.SetForward(gA, m.pool.Dual(gB))
	m.pool.SetForward(m.pool.Dual(gB), dAB)

	m.pool.SetForward(dBC, gB)
	m.pool.SetForward(gB, m.pool.Dual(gC))
	m.pool.SetForward(m.pool.Dual(gC), dBC)

	m.pool.SetForward(dCA, gC)
	m.pool.SetForward(gC, m.pool.Dual(gA))
	m.pool.SetForward(m.pool.Dual(gA), dCA)

	m.searchEdge = eAB
	m.occupants = append(m.occupants, a, b, c)
	m.vertexIndex.AddVertex(a)
	m.vertexIndex.AddVertex(b)
	m.vertexIndex.AddVertex(c)
}
