package types

import "testing"

func TestVertexZ(t *testing.T) {
	v := NewVertex(0, 1, 2, 3.5)
	if v.Z() != 3.5 {
		t.Fatalf("expected z 3.5, got %v", v.Z())
	}
	if v.MergerGroup() != nil {
		t.Fatalf("expected no merger group on a plain vertex")
	}
}

func TestVertexFlags(t *testing.T) {
	v := NewVertex(0, 0, 0, 0)
	if v.IsSynthetic() || v.IsConstraintMember() {
		t.Fatalf("expected no flags set initially")
	}
	v.SetSynthetic(true)
	if !v.IsSynthetic() {
		t.Fatalf("expected synthetic flag set")
	}
	v.SetConstraintMember(true)
	if !v.IsSynthetic() || !v.IsConstraintMember() {
		t.Fatalf("expected both flags set")
	}
	v.SetSynthetic(false)
	if v.IsSynthetic() || !v.IsConstraintMember() {
		t.Fatalf("expected only constraint-member flag set")
	}
}

func TestVertexDistanceSquared(t *testing.T) {
	a := NewVertex(0, 0, 0, 0)
	b := NewVertex(1, 3, 4, 0)
	if got := a.DistanceSquared(b); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}
