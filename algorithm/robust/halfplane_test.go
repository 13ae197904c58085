package robust

import (
	"testing"

	"github.com/iceisfun/dtmesh/types"
)

func TestHalfPlaneAntiSymmetric(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	p := types.Point{X: 0.5, Y: 0.5}

	if HalfPlane(a, b, p) != -HalfPlane(b, a, p) {
		t.Fatalf("expected anti-symmetry")
	}
}

func TestGhostInCircleForwardRay(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}

	// Collinear, beyond b: treated as non-Delaunay (inside).
	if got := GhostInCircle(a, b, types.Point{X: 2, Y: 0}); got != 1 {
		t.Fatalf("expected +1 for point on forward ray, got %d", got)
	}
	// Collinear, behind a: not on the forward ray.
	if got := GhostInCircle(a, b, types.Point{X: -1, Y: 0}); got != -1 {
		t.Fatalf("expected -1 for point behind origin of ray, got %d", got)
	}
}
