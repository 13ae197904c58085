package voronoi

import (
	"math"

	"github.com/iceisfun/dtmesh/types"
)

// LiangBarsky clips segment (p0,p1) to the closed rectangle b, returning the
// clipped endpoints. ok is false when the segment lies entirely outside b.
//
// Per spec section 9's documented open question, a near-degenerate
// collinear segment (the line runs exactly along one of b's edges) can
// leave p==0 with q<0 on one axis and otherwise pass every other test;
// this implementation treats that as "outside" rather than returning a
// partial clip, matching the discontinuity-tolerant behavior the
// downstream polygon threader expects.
func LiangBarsky(p0, p1 types.Point, b types.AABB) (types.Point, types.Point, bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{p0.X - b.Min.X, b.Max.X - p0.X, p0.Y - b.Min.Y, b.Max.Y - p0.Y}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return types.Point{}, types.Point{}, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return types.Point{}, types.Point{}, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return types.Point{}, types.Point{}, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	if t0 > t1 {
		return types.Point{}, types.Point{}, false
	}
	c0 := types.Point{X: p0.X + t0*dx, Y: p0.Y + t0*dy}
	c1 := types.Point{X: p0.X + t1*dx, Y: p0.Y + t1*dy}
	return c0, c1, true
}

// ClipRay clips the ray from origin in direction dir (t >= 0) to rectangle
// b, returning the exit point where the ray leaves b. ok is false if the
// ray never leaves b (degenerate zero direction) or origin is already
// outside b in a way no forward travel resolves.
func ClipRay(origin, dir types.Point, b types.AABB) (types.Point, bool) {
	t0, t1 := 0.0, math.Inf(1)
	p := [4]float64{-dir.X, dir.X, -dir.Y, dir.Y}
	q := [4]float64{origin.X - b.Min.X, b.Max.X - origin.X, origin.Y - b.Min.Y, b.Max.Y - origin.Y}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return types.Point{}, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return types.Point{}, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return types.Point{}, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	if math.IsInf(t1, 1) {
		return types.Point{}, false
	}
	return types.Point{X: origin.X + t1*dir.X, Y: origin.Y + t1*dir.Y}, true
}

// computeZ parameterizes point p, already known to lie on boundary side
// (0=bottom, 1=right, 2=top, 3=left) of b, as a float in [side, side+1).
//
// Per spec section 9's documented open question, the source material's
// ambiguous two-argument overload (which infers the side from coordinate
// comparisons and has a y<=ymin/ymax mixup on the x==xmin branch) is not
// reproduced here; only the integer-indexed overload it says is correct is
// implemented.
func computeZ(side int, p types.Point, b types.AABB) float64 {
	var t float64
	switch side {
	case 0: // bottom, left to right
		if b.Max.X != b.Min.X {
			t = (p.X - b.Min.X) / (b.Max.X - b.Min.X)
		}
	case 1: // right, bottom to top
		if b.Max.Y != b.Min.Y {
			t = (p.Y - b.Min.Y) / (b.Max.Y - b.Min.Y)
		}
	case 2: // top, right to left
		if b.Max.X != b.Min.X {
			t = (b.Max.X - p.X) / (b.Max.X - b.Min.X)
		}
	case 3: // left, top to bottom
		if b.Max.Y != b.Min.Y {
			t = (b.Max.Y - p.Y) / (b.Max.Y - b.Min.Y)
		}
	}
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		t = 0.999999999
	}
	return float64(side) + t
}

const boundaryTol = 1e-7

// sideOf reports which side of b the (assumed on-boundary) point p lies on.
func sideOf(p types.Point, b types.AABB) (int, bool) {
	switch {
	case math.Abs(p.Y-b.Min.Y) <= boundaryTol:
		return 0, true
	case math.Abs(p.X-b.Max.X) <= boundaryTol:
		return 1, true
	case math.Abs(p.Y-b.Max.Y) <= boundaryTol:
		return 2, true
	case math.Abs(p.X-b.Min.X) <= boundaryTol:
		return 3, true
	}
	return 0, false
}

// cornerPoint returns the corner of b one crosses when entering boundary
// side `entering` while walking bottom -> right -> top -> left.
func cornerPoint(entering int, b types.AABB) types.Point {
	switch entering % 4 {
	case 1: // entering right: came from bottom, corner is bottom-right
		return types.Point{X: b.Max.X, Y: b.Min.Y}
	case 2: // entering top: corner is top-right
		return types.Point{X: b.Max.X, Y: b.Max.Y}
	case 3: // entering left: corner is top-left
		return types.Point{X: b.Min.X, Y: b.Max.Y}
	default: // entering bottom (wrap): corner is bottom-left
		return types.Point{X: b.Min.X, Y: b.Min.Y}
	}
}

// buildPerimeterRay computes the outward direction, perpendicular to hull
// edge (ha,hb), for the ray cast from a hull triangle's circumcenter.
// apex is the hull triangle's third (interior) vertex, used to orient the
// perpendicular outward.
//
// Per spec section 9's documented open question, the reference
// implementation's `uY > 0` branch for the axis-aligned case is treated as
// a typo for `uY == 0`. The only special case kept below is a zero-length
// hull edge (both components zero), which falls back to the +x direction.
func buildPerimeterRay(apex, ha, hb types.Point) types.Point {
	ex := hb.X - ha.X
	ey := hb.Y - ha.Y
	ux, uy := -ey, ex

	mid := types.Point{X: (ha.X + hb.X) / 2, Y: (ha.Y + hb.Y) / 2}
	if ux*(apex.X-mid.X)+uy*(apex.Y-mid.Y) > 0 {
		ux, uy = -ux, -uy
	}
	if uy == 0 && ux == 0 {
		ux = 1
	}
	return types.Point{X: ux, Y: uy}
}
