package types

// EdgeRef is a canonical, undirected pair of vertices used to report edges
// to callers (GetEdges, GetPerimeter) independent of the mesh's internal
// quad-edge topology.
//
// Canonical form orders endpoints by vertex ID, so EdgeRef{a, b} and
// EdgeRef{b, a} compare equal once canonicalized.
type EdgeRef struct {
	A, B *Vertex
}

// NewEdgeRef creates an edge in canonical form (smaller ID first).
func NewEdgeRef(a, b *Vertex) EdgeRef {
	if a.ID <= b.ID {
		return EdgeRef{A: a, B: b}
	}
	return EdgeRef{A: b, B: a}
}

// Canonical returns this edge in canonical form.
func (e EdgeRef) Canonical() EdgeRef {
	return NewEdgeRef(e.A, e.B)
}

// IsCanonical reports whether the edge is already in canonical form.
func (e EdgeRef) IsCanonical() bool {
	return e.A.ID <= e.B.ID
}
