package tin

import (
	"fmt"

	"github.com/iceisfun/dtmesh/algorithm/pslg"
	"github.com/iceisfun/dtmesh/algorithm/robust"
	"github.com/iceisfun/dtmesh/predicates"
	"github.com/iceisfun/dtmesh/qedge"
	"github.com/iceisfun/dtmesh/types"
)

// AddConstraints inserts constraint segments into the mesh and locks it
// against further vertex addition. Grounded on the teacher's
// cdt/constraint.go (Lawson-channel forcing) and cdt/classify.go
// (flood-fill area tagging), adapted to the two-sided cavity-carving
// procedure spec section 4.7 specifically calls for.
func (m *Mesh) AddConstraints(list []*types.Constraint, restoreConformity bool) error {
	if err := m.checkUsable(); err != nil {
		return err
	}
	if len(m.constraints) > 0 {
		return fmt.Errorf("%w", ErrConstraintsAlreadyAdded)
	}
	if len(list) == 0 {
		return fmt.Errorf("%w: empty constraint list", ErrPrecondition)
	}

	if len(list) > types.MaxConstraintIndex {
		return fmt.Errorf("%w", ErrTooManyConstraints)
	}

	// Reject self-intersecting constraints up front rather than carving
	// corrupt topology; areas close into a loop, plain constraints are
	// open polylines. Grounded on the teacher's pslg.LoopSelfIntersections,
	// generalized to the open-polyline case pslg.PolylineSelfIntersections
	// covers.
	for ci, c := range list {
		line := make([]types.Point, len(c.Vertices))
		for i, v := range c.Vertices {
			line[i] = v.Point()
		}
		if c.IsArea {
			if err := pslg.LoopSelfIntersections(line); err != nil {
				return fmt.Errorf("%w: constraint %d: %v", ErrPrecondition, ci, err)
			}
			continue
		}
		if err := pslg.PolylineSelfIntersections(line); err != nil {
			return fmt.Errorf("%w: constraint %d: %v", ErrPrecondition, ci, err)
		}
	}

	// Phase 1: insert every constraint vertex through the normal engine.
	for _, c := range list {
		for _, v := range c.Vertices {
			v.SetConstraintMember(true)
			if !m.bootstrapped {
				m.pending = append(m.pending, v)
				m.tryBootstrap()
				continue
			}
			m.insertVertex(v)
		}
	}
	m.locked = true

	// Phase 2: force each segment of each constraint to be present.
	for ci, c := range list {
		c.Index = ci
		m.constraints = append(m.constraints, c)
		for s := 0; s < c.NumSegments(); s++ {
			a, b := c.Segment(s)
			if err := m.insertConstraintSegment(a, b, ci); err != nil {
				return err
			}
		}
		m.nextConstraint++
	}

	// Phase 3: conformity restoration.
	if restoreConformity {
		m.restoreConformity()
	}

	// Phase 4: area flood-fill.
	for ci, c := range list {
		if c.IsArea {
			m.floodFillArea(c, ci)
		}
	}

	return nil
}

// insertConstraintSegment repeatedly advances from a toward b, marking or
// carving edges until the full segment is represented, per spec section
// 4.7 phase 2.
func (m *Mesh) insertConstraintSegment(a, b *types.Vertex, idx int) error {
	tol := m.cfg.vertexTolerance()
	guard := 0
	for a != b {
		guard++
		if guard > 10000 {
			return fmt.Errorf("%w: constraint segment did not converge", ErrInvariant)
		}

		if e := m.findDirectedEdge(a, b); e != qedge.Nil {
			m.pool.SetConstraint(e, idx)
			return nil
		}

		if w, e := m.findCollinearRefinement(a, b, tol); w != nil {
			m.pool.SetConstraint(e, idx)
			a = w
			continue
		}

		next, err := m.carveAndRetriangulate(a, b, idx)
		if err != nil {
			return err
		}
		a = next
	}
	return nil
}

// findDirectedEdge returns the live edge a->b, or qedge.Nil.
func (m *Mesh) findDirectedEdge(a, b *types.Vertex) qedge.ID {
	start := m.findIncidentEdge(a)
	if start == qedge.Nil {
		return qedge.Nil
	}
	found := qedge.Nil
	m.pool.Pinwheel(start, func(e qedge.ID) bool {
		if m.pool.Destination(e) == b {
			found = e
			return false
		}
		return true
	})
	return found
}

// findCollinearRefinement looks for an edge out of a that is collinear with
// segment (a,b) and points into it, returning the edge's far vertex as the
// next sub-segment endpoint (spec section 4.7 phase 2b).
func (m *Mesh) findCollinearRefinement(a, b *types.Vertex, tol float64) (*types.Vertex, qedge.ID) {
	start := m.findIncidentEdge(a)
	if start == qedge.Nil {
		return nil, qedge.Nil
	}
	var result *types.Vertex
	var resultEdge qedge.ID
	m.pool.Pinwheel(start, func(e qedge.ID) bool {
		w := m.pool.Destination(e)
		if w == nil || w == b {
			return true
		}
		if !predicates.PointOnSegment(w.Point(), a.Point(), b.Point(), tol) {
			return true
		}
		// w must lie strictly between a and b along the segment direction.
		dax := b.X - a.X
		day := b.Y - a.Y
		dwx := w.X - a.X
		dwy := w.Y - a.Y
		dot := dax*dwx + day*dwy
		lenSq := dax*dax + day*day
		if dot <= 0 || dot >= lenSq {
			return true
		}
		result = w
		resultEdge = e
		return false
	})
	return result, resultEdge
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// carveAndRetriangulate finds the edge opposite a that straddles segment
// (a,b), walks the mesh carving two polygonal cavities until it reaches b
// or a vertex lying on the segment, deallocating every straddled edge,
// then allocates the constraint edge and re-triangulates both cavities.
// Grounded on spec section 4.7 phase 2c/2d; no direct teacher equivalent
// since the teacher forces edges by repeated flips rather than carving.
func (m *Mesh) carveAndRetriangulate(a, b *types.Vertex, idx int) (*types.Vertex, error) {
	start := m.findIncidentEdge(a)
	if start == qedge.Nil {
		return nil, fmt.Errorf("%w: constraint endpoint missing", ErrInvariant)
	}

	straddle := qedge.Nil
	m.pool.Pinwheel(start, func(spoke qedge.ID) bool {
		far := m.pool.Forward(spoke)
		u := m.pool.Origin(far)
		v := m.pool.Destination(far)
		if u == nil || v == nil {
			return true
		}
		// A proper segment-segment crossing, not just an infinite-line
		// sign test, so a far edge whose line crosses (a,b) outside the
		// segment's own span is correctly rejected.
		if crosses, proper := predicates.SegmentsIntersect(a.Point(), b.Point(), u.Point(), v.Point(), m.cfg.vertexTolerance()); crosses && proper {
			straddle = far
			return false
		}
		return true
	})
	if straddle == qedge.Nil {
		return nil, fmt.Errorf("%w: no straddling edge found for constraint segment", ErrInvariant)
	}

	upper := []*types.Vertex{a}
	lower := []*types.Vertex{a}

	u0 := m.pool.Origin(straddle)
	v0 := m.pool.Destination(straddle)
	if robust.Orient2D(a.Point(), b.Point(), u0.Point()) > 0 {
		upper = append(upper, u0)
		lower = append(lower, v0)
	} else {
		upper = append(upper, v0)
		lower = append(lower, u0)
	}

	cur := straddle
	var reached *types.Vertex
	var toDealloc []qedge.ID

	for i := 0; i < 10000; i++ {
		toDealloc = append(toDealloc, cur)
		apex := m.pool.Destination(m.pool.Forward(m.pool.Dual(cur)))
		if apex == nil {
			// hull edge reached with no interior neighbor; treat the
			// straddle's far endpoint as the reachable point.
			reached = upper[len(upper)-1]
			break
		}
		if apex == b {
			reached = b
			break
		}
		side := robust.Orient2D(a.Point(), b.Point(), apex.Point())
		if side == 0 {
			reached = apex
			break
		}
		if side > 0 {
			upper = append(upper, apex)
			cur = findFarEdge(m, cur, upper[len(upper)-2], apex)
		} else {
			lower = append(lower, apex)
			cur = findFarEdge(m, cur, lower[len(lower)-2], apex)
		}
		if cur == qedge.Nil {
			reached = apex
			break
		}
	}
	if reached == nil {
		return nil, fmt.Errorf("%w: constraint walk did not converge", ErrInvariant)
	}

	upper = append(upper, reached)
	lower = append(lower, reached)

	for _, e := range toDealloc {
		if m.pool.IsLive(e) {
			m.pool.Deallocate(e)
		}
	}

	newEdge := m.pool.Allocate(a, reached)
	m.pool.SetConstraint(newEdge, idx)

	m.retriangulateChain(upper, newEdge)
	m.retriangulateChain(lower, m.pool.Dual(newEdge))

	return reached, nil
}

// findFarEdge returns the edge (from, apex) in the triangle across cur from
// the vertex opposite apex, used while walking the straddle chain.
func findFarEdge(m *Mesh, cur qedge.ID, from, apex *types.Vertex) qedge.ID {
	d := m.pool.Dual(cur)
	f1 := m.pool.Forward(d)
	f2 := m.pool.Forward(f1)
	for _, cand := range [2]qedge.ID{f1, f2} {
		o := m.pool.Origin(cand)
		dd := m.pool.Destination(cand)
		if (o == from && dd == apex) || (o == apex && dd == from) {
			return cand
		}
	}
	return qedge.Nil
}

// retriangulateChain fills the cavity bounded by base (the new constraint
// edge, from chain[0] to chain[len-1]) and the polyline chain with ears
// chosen by maximal-area priority, suppressing any ear that would contain
// another chain vertex. Grounded on spec section 4.7 phase 2d.
func (m *Mesh) retriangulateChain(chain []*types.Vertex, base qedge.ID) {
	if len(chain) < 3 {
		return
	}
	idx := make([]int, len(chain))
	for i := range idx {
		idx[i] = i
	}

	edgeFor := make(map[[2]*types.Vertex]qedge.ID)
	for i := 0; i+1 < len(chain); i++ {
		edgeFor[[2]*types.Vertex{chain[i], chain[i+1]}] = qedge.Nil
	}
	edgeFor[[2]*types.Vertex{chain[0], chain[len(chain)-1]}] = base

	for len(idx) > 2 {
		bestPos := -1
		bestScore := -1.0
		for pi := 1; pi < len(idx)-1; pi++ {
			p := chain[idx[pi-1]]
			c := chain[idx[pi]]
			n := chain[idx[pi+1]]
			area := predicates.Area2(p.Point(), c.Point(), n.Point())
			if area <= 0 {
				continue
			}
			suppressed := false
			for k := 0; k < len(idx); k++ {
				if k == pi-1 || k == pi || k == pi+1 {
					continue
				}
				q := chain[idx[k]]
				if predicates.PointStrictlyInTriangle(q.Point(), p.Point(), c.Point(), n.Point(), 0) {
					suppressed = true
					break
				}
			}
			if suppressed {
				continue
			}
			if area > bestScore {
				bestScore = area
				bestPos = pi
			}
		}
		if bestPos < 0 {
			break
		}

		p := chain[idx[bestPos-1]]
		c := chain[idx[bestPos]]
		n := chain[idx[bestPos+1]]

		pc := edgeFor[[2]*types.Vertex{p, c}]
		cn := edgeFor[[2]*types.Vertex{c, n}]
		if pc == qedge.Nil {
			pc = m.pool.Allocate(p, c)
		}
		if cn == qedge.Nil {
			cn = m.pool.Allocate(c, n)
		}
		pn := m.pool.Allocate(p, n)

		m.pool.SetForward(pc, cn)
		m.pool.SetForward(cn, pn)
		m.pool.SetForward(pn, pc)

		edgeFor[[2]*types.Vertex{p, n}] = m.pool.Dual(pn)

		idx = append(idx[:bestPos], idx[bestPos+1:]...)
	}

	m.legalize(collectValues(edgeFor))
}

func collectValues(m map[[2]*types.Vertex]qedge.ID) []qedge.ID {
	out := make([]qedge.ID, 0, len(m))
	for _, v := range m {
		if v != qedge.Nil {
			out = append(out, v)
		}
	}
	return out
}

// restoreConformity tests every constrained edge against the Delaunay
// criterion and subdivides violating edges, per spec section 4.7 phase 3.
// Recursion is converted to an explicit queue per the spec's design note.
func (m *Mesh) restoreConformity() {
	var queue []qedge.ID
	m.pool.Iterate(func(e qedge.ID) bool {
		if m.pool.IsConstrained(e) {
			queue = append(queue, e)
		}
		return true
	})

	guard := 0
	for len(queue) > 0 && guard < 100000 {
		guard++
		e := queue[0]
		queue = queue[1:]
		if !m.pool.IsLive(e) || !m.pool.IsConstrained(e) {
			continue
		}

		a := m.pool.Origin(e)
		b := m.pool.Destination(e)
		c := m.pool.Destination(m.pool.Forward(e))
		d := m.pool.Destination(m.pool.Forward(m.pool.Dual(e)))
		if a == nil || b == nil {
			continue
		}
		if circleTest(a, b, c, d) <= 0 {
			continue
		}

		idx := m.pool.ConstraintIndex(e)
		mid := types.NewVertex(m.nextSyntheticID(), (a.X+b.X)/2, (a.Y+b.Y)/2, (a.Z()+b.Z())/2)
		mid.SetSynthetic(true)
		mid.SetConstraintMember(true)

		m.pool.ClearConstraint(e)
		m.insertVertex(mid)

		e1 := m.findDirectedEdge(a, mid)
		e2 := m.findDirectedEdge(mid, b)
		if e1 != qedge.Nil {
			m.pool.SetConstraint(e1, idx)
			queue = append(queue, e1)
		}
		if e2 != qedge.Nil {
			m.pool.SetConstraint(e2, idx)
			queue = append(queue, e2)
		}
	}
}

// syntheticIDBase separates engine-generated vertex ids from caller-supplied
// ones; callers are expected to use small ids for their own input points.
const syntheticIDBase = 1 << 24

func (m *Mesh) nextSyntheticID() int {
	m.syntheticCounter++
	return m.syntheticCounter
}

// floodFillArea propagates IS_AREA_MEMBER from c's boundary edges through
// adjacent non-constrained edges, per spec section 4.7 phase 4. Grounded on
// the teacher's cdt/classify.go FloodFillClassify, converted from a
// triangle-neighbor BFS to a quad-edge pinwheel/forward BFS.
func (m *Mesh) floodFillArea(c *types.Constraint, idx int) {
	seed := qedge.Nil
	for s := 0; s < c.NumSegments(); s++ {
		va, vb := c.Segment(s)
		e := m.findDirectedEdge(va, vb)
		if e == qedge.Nil {
			continue
		}
		// the area interior lies to the left of (va,vb) for a CCW polygon.
		seed = e
		break
	}
	if seed == qedge.Nil {
		return
	}

	visited := make(map[qedge.ID]bool)
	queue := []qedge.ID{seed}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if visited[e] || !m.pool.IsLive(e) {
			continue
		}
		visited[e] = true
		if m.pool.IsGhost(e) {
			continue
		}

		m.pool.SetAreaMember(e, true)
		m.pool.SetAreaOnBaseSide(e, e.IsBase())

		f1 := m.pool.Forward(e)
		f2 := m.pool.Forward(f1)
		for _, edge := range [2]qedge.ID{f1, f2} {
			if m.pool.IsConstrained(edge) {
				continue
			}
			d := m.pool.Dual(edge)
			if !visited[d] {
				queue = append(queue, d)
			}
		}
	}
}
