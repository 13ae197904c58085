package types

import "testing"

func TestConstraintSegmentsOpenPolyline(t *testing.T) {
	verts := []*Vertex{NewVertex(0, 0, 0, 0), NewVertex(1, 1, 0, 0), NewVertex(2, 2, 0, 0)}
	c := &Constraint{Index: 0, Vertices: verts, IsArea: false}

	if got := c.NumSegments(); got != 2 {
		t.Fatalf("expected 2 segments for open polyline of 3 vertices, got %d", got)
	}
	a, b := c.Segment(1)
	if a != verts[1] || b != verts[2] {
		t.Fatalf("unexpected segment 1 endpoints")
	}
}

func TestConstraintSegmentsClosedArea(t *testing.T) {
	verts := []*Vertex{NewVertex(0, 0, 0, 0), NewVertex(1, 1, 0, 0), NewVertex(2, 0, 1, 0)}
	c := &Constraint{Index: 1, Vertices: verts, IsArea: true}

	if got := c.NumSegments(); got != 3 {
		t.Fatalf("expected 3 segments for closed area of 3 vertices, got %d", got)
	}
	a, b := c.Segment(2)
	if a != verts[2] || b != verts[0] {
		t.Fatalf("expected closing segment to wrap back to vertex 0")
	}
}
