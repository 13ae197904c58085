package types

import "testing"

func TestSegmentReversedAndEdge(t *testing.T) {
	a := NewVertex(0, 0, 0, 0)
	b := NewVertex(1, 1, 1, 0)

	s := NewSegment(a, b)
	if s.Start() != a || s.End() != b {
		t.Fatalf("unexpected segment endpoints")
	}

	r := s.Reversed()
	if r.Start() != b || r.End() != a {
		t.Fatalf("expected reversed endpoints")
	}

	if s.AsEdge() != r.AsEdge() {
		t.Fatalf("expected both orientations to canonicalize to the same edge")
	}
}
