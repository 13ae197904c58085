package tin

import (
	"fmt"

	"github.com/iceisfun/dtmesh/qedge"
	"github.com/iceisfun/dtmesh/types"
)

func (m *Mesh) checkUsable() error {
	if m.disposed {
		return fmt.Errorf("%w", ErrDisposed)
	}
	return nil
}

// IsBootstrapped reports whether the mesh has formed its initial triangle.
func (m *Mesh) IsBootstrapped() bool { return m.bootstrapped }

// IsLocked reports whether the mesh has been locked against further vertex
// addition (set once AddConstraints succeeds).
func (m *Mesh) IsLocked() bool { return m.locked }

// Epsilon returns the configured tolerance.
func (m *Mesh) Epsilon() types.Epsilon { return m.cfg.epsilon }

// MaxReplacements returns the largest number of Lawson flips any single
// insert has triggered so far, the diagnostic counter spec section 4.5
// describes ("a counter tracks the maximum replacements per insert").
func (m *Mesh) MaxReplacements() int { return m.maxReplacements }

// GetVertices returns the unique occupant vertices of the mesh: one entry
// per topological vertex, i.e. merger-group representatives stand in for
// their whole group.
func (m *Mesh) GetVertices() []*types.Vertex {
	out := make([]*types.Vertex, len(m.occupants))
	copy(out, m.occupants)
	return out
}

// GetSyntheticVertexCount returns the number of vertices flagged synthetic
// (created by conformity-restoring subdivision).
func (m *Mesh) GetSyntheticVertexCount() int {
	n := 0
	for _, v := range m.occupants {
		if v.IsSynthetic() {
			n++
		}
	}
	return n
}

// GetConstraints returns the constraints added to the mesh, in the order
// they were added.
func (m *Mesh) GetConstraints() []*types.Constraint {
	out := make([]*types.Constraint, len(m.constraints))
	copy(out, m.constraints)
	return out
}

// GetEdges returns every live edge in the mesh as a canonical EdgeRef,
// excluding ghost edges. The returned slice references live vertices; the
// caller must not mutate the vertices through it.
func (m *Mesh) GetEdges() []types.EdgeRef {
	if !m.bootstrapped {
		return nil
	}
	seen := make(map[types.EdgeRef]bool)
	var out []types.EdgeRef
	m.pool.Iterate(func(e qedge.ID) bool {
		if m.pool.IsGhost(e) || m.pool.IsGhost(e.Dual()) {
			return true
		}
		a := m.pool.Origin(e)
		b := m.pool.Destination(e)
		ref := types.NewEdgeRef(a, b)
		if !seen[ref] {
			seen[ref] = true
			out = append(out, ref)
		}
		return true
	})
	return out
}

// GetPerimeter returns the hull boundary as an ordered list of edges,
// walking the ghost-adjacent non-ghost edges once around the convex hull.
func (m *Mesh) GetPerimeter() []types.EdgeRef {
	if !m.bootstrapped {
		return nil
	}
	start := m.anyHullEdge()
	if start == qedge.Nil {
		return nil
	}

	var out []types.EdgeRef
	cur := start
	limit := 4*len(m.occupants) + 16
	for {
		out = append(out, types.NewEdgeRef(m.pool.Origin(cur), m.pool.Destination(cur)))
		next := m.nextHullEdge(cur)
		if next == qedge.Nil || next == start {
			break
		}
		cur = next
		if len(out) > limit {
			break // defensive: malformed hull, avoid infinite loop
		}
	}
	return out
}
