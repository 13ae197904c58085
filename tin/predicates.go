package tin

import (
	"github.com/iceisfun/dtmesh/algorithm/robust"
	"github.com/iceisfun/dtmesh/types"
)

// circleTest returns the sign of the in-circle determinant of (a,b,c)
// against query point d, where a,b,c are assumed CCW. A nil vertex
// stands for the virtual point at infinity.
//
// When exactly one of a,b,c is the infinite vertex, the test degenerates
// to the half-plane orientation of the remaining two real vertices
// against d, per spec section 4.1. When d itself is the infinite vertex,
// it is treated as never inside a finite circumcircle — an explicit
// design decision recorded in DESIGN.md, since the source material does
// not define that direction of the degenerate case.
func circleTest(a, b, c, d *types.Vertex) int {
	if a != nil && b != nil && c != nil && d != nil {
		return robust.InCircle(a.Point(), b.Point(), c.Point(), d.Point())
	}
	if d == nil {
		return -1
	}
	switch {
	case a == nil:
		return robust.GhostInCircle(b.Point(), c.Point(), d.Point())
	case b == nil:
		return robust.GhostInCircle(c.Point(), a.Point(), d.Point())
	default: // c == nil
		return robust.GhostInCircle(a.Point(), b.Point(), d.Point())
	}
}
