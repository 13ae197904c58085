package tin

import (
	"math"

	"github.com/iceisfun/dtmesh/algorithm/robust"
	"github.com/iceisfun/dtmesh/predicates"
	"github.com/iceisfun/dtmesh/qedge"
	"github.com/iceisfun/dtmesh/types"
)

// locate performs a stochastic Lawson walk from start to the triangle
// containing p, returning a half-edge of that triangle. If p lies outside
// the convex hull, the returned edge belongs to the ghost (perimeter)
// triangle whose exterior cone contains p. A zero orientation against any
// edge is treated as "inside" for termination purposes; the insertion
// caller rechecks precisely.
func (m *Mesh) locate(start qedge.ID, p types.Point) qedge.ID {
	if start == qedge.Nil {
		return qedge.Nil
	}

	cur := start
	maxSteps := 8*m.pool.NumPairs() + 64

	type candidate struct {
		edge qedge.ID
		mag  float64
	}

	for step := 0; step < maxSteps; step++ {
		e0 := cur
		e1 := m.pool.Forward(e0)
		e2 := m.pool.Forward(e1)

		var outside []candidate
		for _, e := range [3]qedge.ID{e0, e1, e2} {
			o := m.pool.Origin(e)
			d := m.pool.Destination(e)
			if o == nil || d == nil {
				continue // ghost spoke to the infinite vertex never blocks
			}
			side := robust.Orient2D(o.Point(), d.Point(), p)
			if side < 0 {
				outside = append(outside, candidate{edge: e, mag: math.Abs(predicates.Area2(o.Point(), d.Point(), p))})
			}
		}

		if len(outside) == 0 {
			return cur
		}

		chosen := outside[0].edge
		if len(outside) > 1 {
			total := 0.0
			for _, c := range outside {
				total += c.mag
			}
			r := m.rng.Float64() * total
			acc := 0.0
			for _, c := range outside {
				acc += c.mag
				if r <= acc {
					chosen = c.edge
					break
				}
			}
		}
		cur = m.pool.Dual(chosen)
	}
	return cur
}
