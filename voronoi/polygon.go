package voronoi

import (
	"math"

	"github.com/iceisfun/dtmesh/types"
)

// buildPolygon threads a site's circumcenters into its bounded Voronoi
// cell, per spec section 4.8 step 4. For an interior site the fan closes
// on itself; for a hull site the fan is open and the loop is extended with
// perimeter rays and, where the rays land on different boundary sides,
// synthetic corner vertices.
func (vb *Voronoi) buildPolygon(v *types.Vertex) *ThiessenPolygon {
	fan := vb.mesh.VertexFan(v)
	if len(fan) == 0 {
		return &ThiessenPolygon{Hub: v}
	}

	centers := make([]*types.Vertex, len(fan))
	for i, t := range fan {
		centers[i] = vb.centers[keyOf(t)]
	}

	open := vb.mesh.IsHullVertex(v)
	if !open {
		loop := vb.clipInteriorLoop(centers)
		return &ThiessenPolygon{Hub: v, Loop: loop, Open: false}
	}

	loop := vb.clipInteriorLoop(centers)

	firstTri := fan[0]
	lastTri := fan[len(fan)-1]
	firstHullEdge, firstApex := hullEdgeOf(firstTri, v)
	lastHullEdge, lastApex := hullEdgeOf(lastTri, v)

	startRayEnd := vb.castPerimeterRay(centers[0].Point(), firstApex, firstHullEdge)
	endRayEnd := vb.castPerimeterRay(centers[len(centers)-1].Point(), lastApex, lastHullEdge)

	full := append([]*types.Vertex{startRayEnd}, loop...)
	full = append(full, endRayEnd)

	full = vb.stitchBoundary(full)

	return &ThiessenPolygon{Hub: v, Loop: full, Open: true}
}

// hullEdgeOf returns the hull edge of triangle t that does not touch v, and
// the vertex of t other than v's two hull neighbors (used to orient the
// outward perpendicular).
func hullEdgeOf(t types.TriangleRef, v *types.Vertex) ([2]types.Point, types.Point) {
	verts := t.Vertices()
	var opp [2]types.Point
	idx := 0
	var apex types.Point
	for _, p := range verts {
		if p == v {
			apex = p.Point()
			continue
		}
	}
	for _, p := range verts {
		if p == v {
			continue
		}
		opp[idx] = p.Point()
		idx++
	}
	return opp, apex
}

// castPerimeterRay builds the outward ray from a hull triangle's
// circumcenter and clips it to the bounds, per spec section 4.8 step 2.
func (vb *Voronoi) castPerimeterRay(center types.Point, apex types.Point, hullEdge [2]types.Point) *types.Vertex {
	dir := buildPerimeterRay(apex, hullEdge[0], hullEdge[1])
	exit, ok := ClipRay(center, dir, vb.bounds)
	if !ok {
		exit = center
	}
	side, on := sideOf(exit, vb.bounds)
	z := math.NaN()
	if on {
		z = computeZ(side, exit, vb.bounds)
	}
	return vb.newSyntheticVertex(exit, z)
}

// clipInteriorLoop clips consecutive circumcenter segments to the bounds,
// per spec section 4.8 step 3, replacing any endpoint that falls outside
// with its clipped, boundary-parameterized counterpart.
func (vb *Voronoi) clipInteriorLoop(centers []*types.Vertex) []*types.Vertex {
	out := make([]*types.Vertex, len(centers))
	copy(out, centers)

	for i := 0; i < len(out); i++ {
		j := (i + 1) % len(out)
		a, b := out[i], out[j]
		if contains(vb.bounds, types.AABB{Min: a.Point(), Max: a.Point()}) &&
			contains(vb.bounds, types.AABB{Min: b.Point(), Max: b.Point()}) {
			continue
		}
		c0, c1, ok := LiangBarsky(a.Point(), b.Point(), vb.bounds)
		if !ok {
			continue
		}
		if !contains(vb.bounds, types.AABB{Min: a.Point(), Max: a.Point()}) {
			out[i] = vb.boundaryVertex(c0)
		}
		if !contains(vb.bounds, types.AABB{Min: b.Point(), Max: b.Point()}) {
			out[j] = vb.boundaryVertex(c1)
		}
	}
	return out
}

func (vb *Voronoi) boundaryVertex(p types.Point) *types.Vertex {
	side, on := sideOf(p, vb.bounds)
	z := math.NaN()
	if on {
		z = computeZ(side, p, vb.bounds)
	}
	return vb.newSyntheticVertex(p, z)
}

// stitchBoundary joins consecutive loop vertices whose z marks them as
// lying on the bounding rectangle: same integer floor of z needs no extra
// vertex, different floors need one synthetic corner per boundary crossed,
// per spec section 4.8 step 4.
func (vb *Voronoi) stitchBoundary(loop []*types.Vertex) []*types.Vertex {
	var out []*types.Vertex
	for i := 0; i < len(loop); i++ {
		out = append(out, loop[i])
		if i+1 >= len(loop) {
			break
		}
		a, b := loop[i], loop[i+1]
		if math.IsNaN(a.Z()) || math.IsNaN(b.Z()) {
			continue
		}
		fromSide := int(math.Floor(a.Z()))
		toSide := int(math.Floor(b.Z()))
		if fromSide == toSide {
			continue
		}
		for _, corner := range vb.joinBoundaryCorners(fromSide, toSide) {
			out = append(out, corner)
		}
	}
	return out
}

// joinBoundaryCorners returns, in walking order, one synthetic corner
// vertex per boundary side crossed between fromSide and toSide, where
// order is bottom(0), right(1), top(2), left(3), wrapping by adding 4 to
// toSide when it precedes fromSide.
func (vb *Voronoi) joinBoundaryCorners(fromSide, toSide int) []*types.Vertex {
	to := toSide
	if to < fromSide {
		to += 4
	}
	var out []*types.Vertex
	for s := fromSide; s < to; s++ {
		entering := (s + 1) % 4
		out = append(out, vb.cornerVertex(entering))
	}
	return out
}

func (vb *Voronoi) cornerVertex(entering int) *types.Vertex {
	if v, ok := vb.corners[entering]; ok {
		return v
	}
	p := cornerPoint(entering, vb.bounds)
	v := vb.newSyntheticVertex(p, float64(entering%4))
	vb.corners[entering] = v
	return v
}
