package types

// TriangleRef is an ordered triple of vertices forming a triangle, used to
// report triangles to callers. The order determines winding: counter-
// clockwise order yields positive signed area.
type TriangleRef struct {
	A, B, C *Vertex
}

// NewTriangleRef creates a triangle reference from three vertices.
func NewTriangleRef(a, b, c *Vertex) TriangleRef {
	return TriangleRef{A: a, B: b, C: c}
}

// Vertices returns all three vertices as a slice.
func (t TriangleRef) Vertices() []*Vertex {
	return []*Vertex{t.A, t.B, t.C}
}

// Edges returns the three edges of this triangle in canonical form, in the
// order (A,B), (B,C), (C,A).
func (t TriangleRef) Edges() [3]EdgeRef {
	return [3]EdgeRef{
		NewEdgeRef(t.A, t.B),
		NewEdgeRef(t.B, t.C),
		NewEdgeRef(t.C, t.A),
	}
}

// Area2 returns twice the signed area of the triangle.
func (t TriangleRef) Area2() float64 {
	return (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.B.Y-t.A.Y)*(t.C.X-t.A.X)
}
