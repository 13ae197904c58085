package robust

import (
	"github.com/iceisfun/dtmesh/types"
)

const halfPlaneFilter = 1e-15

// HalfPlane returns (p-a) x (b-a), the signed area term used by the tin
// package's ghost-edge in-circle degeneration (spec.md section 4.1).
//
// The sign is meaningful once |result| exceeds a threshold derived from
// the points' magnitude; below that, an exact big.Float recomputation
// breaks the tie. HalfPlane is anti-symmetric in its first two arguments:
// HalfPlane(a,b,p) == -HalfPlane(b,a,p).
func HalfPlane(a, b, p types.Point) int {
	px := p.X - a.X
	py := p.Y - a.Y
	bx := b.X - a.X
	by := b.Y - a.Y

	det := px*by - py*bx

	maxMag := maxAbs(a.X, a.Y, b.X, b.Y, p.X, p.Y)
	eps := maxMag * maxMag * halfPlaneFilter
	if eps < halfPlaneFilter {
		eps = halfPlaneFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return halfPlaneExact(a, b, p)
	}
}

func halfPlaneExact(a, b, p types.Point) int {
	px := bigFloat(p.X)
	px.Sub(px, bigFloat(a.X))
	py := bigFloat(p.Y)
	py.Sub(py, bigFloat(a.Y))

	bx := bigFloat(b.X)
	bx.Sub(bx, bigFloat(a.X))
	by := bigFloat(b.Y)
	by.Sub(by, bigFloat(a.Y))

	det := det2(px, py, bx, by)
	return det.Sign()
}

// GhostInCircle specializes the in-circle test for a triangle where one
// vertex is the virtual point at infinity (a "ghost" triangle, spec.md
// section 4.1). realA and realB are the triangle's two finite vertices, in
// the order they bound the hull edge (realA -> realB, ghost to their left).
// d is the query point. The test degenerates to a half-plane orientation
// of d against the segment realA->realB, with a tie-break: points lying on
// the ray through realA->realB are treated as non-Delaunay (returns +1) so
// that ghost-adjacent edges keep flipping outward as the hull grows.
func GhostInCircle(realA, realB, d types.Point) int {
	side := HalfPlane(realA, realB, d)
	if side != 0 {
		return -side
	}
	// d is collinear with (realA, realB). Treat points on the forward ray
	// from realA through realB (i.e. beyond or within the segment in that
	// direction) as inside, forcing the flip.
	if onForwardRay(realA, realB, d) {
		return 1
	}
	return -1
}

func onForwardRay(a, b, d types.Point) bool {
	abx := b.X - a.X
	aby := b.Y - a.Y
	adx := d.X - a.X
	ady := d.Y - a.Y
	return abx*adx+aby*ady >= 0
}
