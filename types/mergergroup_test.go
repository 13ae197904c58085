package types

import "testing"

func TestMergerGroupResolveRules(t *testing.T) {
	rep := NewVertex(0, 0, 0, 1)
	b := NewVertex(1, 0, 0, 2)
	c := NewVertex(2, 0, 0, 6)

	cases := []struct {
		rule MergerRule
		want float64
	}{
		{MergerMean, 3},
		{MergerMin, 1},
		{MergerMax, 6},
		{MergerFirst, 1},
		{MergerLast, 6},
	}

	for _, tc := range cases {
		g := NewMergerGroup(tc.rule, rep)
		g.Add(b)
		g.Add(c)
		if got := rep.Z(); got != tc.want {
			t.Fatalf("rule %v: expected %v, got %v", tc.rule, tc.want, got)
		}
		if b.Z() != tc.want || c.Z() != tc.want {
			t.Fatalf("rule %v: expected all members to resolve identically", tc.rule)
		}
		g.Remove(b)
		g.Remove(c)
	}
}

func TestMergerGroupRemoveDissolves(t *testing.T) {
	rep := NewVertex(0, 0, 0, 1)
	other := NewVertex(1, 0, 0, 2)
	g := NewMergerGroup(MergerMean, rep)
	g.Add(other)

	if ok := g.Remove(other); !ok {
		t.Fatalf("expected group to survive removing a non-sole member")
	}
	if other.MergerGroup() != nil {
		t.Fatalf("expected removed vertex to lose its group reference")
	}
	if ok := g.Remove(rep); ok {
		t.Fatalf("expected group to report dissolution on removing the sole member")
	}
	if rep.MergerGroup() != nil {
		t.Fatalf("expected sole member to lose its group reference on dissolution")
	}
}
