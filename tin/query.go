package tin

import (
	"github.com/iceisfun/dtmesh/qedge"
	"github.com/iceisfun/dtmesh/types"
)

// GetTriangles returns every live interior (non-ghost) triangle exactly
// once, in no particular order.
func (m *Mesh) GetTriangles() []types.TriangleRef {
	var out []types.TriangleRef
	visited := make(map[qedge.ID]bool)
	m.pool.Iterate(func(e qedge.ID) bool {
		m.collectTriangleRef(e, visited, &out)
		m.collectTriangleRef(m.pool.Dual(e), visited, &out)
		return true
	})
	return out
}

func (m *Mesh) collectTriangleRef(e qedge.ID, visited map[qedge.ID]bool, out *[]types.TriangleRef) {
	if visited[e] {
		return
	}
	e1 := m.pool.Forward(e)
	e2 := m.pool.Forward(e1)
	visited[e] = true
	visited[e1] = true
	visited[e2] = true

	a := m.pool.Origin(e)
	b := m.pool.Origin(e1)
	c := m.pool.Origin(e2)
	if a == nil || b == nil || c == nil {
		return
	}
	*out = append(*out, types.NewTriangleRef(a, b, c))
}

// VertexFan returns the non-ghost triangles incident to v, in rotational
// (pinwheel) order. Used by the Voronoi builder to thread a site's
// circumcenters into an ordered polygon loop (spec section 4.8 step 4).
func (m *Mesh) VertexFan(v *types.Vertex) []types.TriangleRef {
	start := m.findIncidentEdge(v)
	if start == qedge.Nil {
		return nil
	}
	var fan []types.TriangleRef
	m.pool.Pinwheel(start, func(e qedge.ID) bool {
		e1 := m.pool.Forward(e)
		e2 := m.pool.Forward(e1)
		a, b, c := m.pool.Origin(e), m.pool.Origin(e1), m.pool.Origin(e2)
		if a != nil && b != nil && c != nil {
			fan = append(fan, types.NewTriangleRef(a, b, c))
		}
		return true
	})
	return fan
}

// IsHullVertex reports whether v lies on the convex hull (has a ghost
// half-edge in its pinwheel).
func (m *Mesh) IsHullVertex(v *types.Vertex) bool {
	start := m.findIncidentEdge(v)
	if start == qedge.Nil {
		return false
	}
	hull := false
	m.pool.Pinwheel(start, func(e qedge.ID) bool {
		if m.pool.IsGhost(m.pool.Dual(e)) {
			hull = true
			return false
		}
		return true
	})
	return hull
}
