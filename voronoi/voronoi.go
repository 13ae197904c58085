// Package voronoi derives a bounded Voronoi (Thiessen) diagram from a
// triangulated mesh's dual, clipping edges and infinite rays to a
// rectangular bound. Grounded on spec section 4.8; there is no teacher
// equivalent, so the construction below follows the spec text directly,
// reusing the engine's robust geometry helpers and the module's errors/
// config idioms.
package voronoi

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/iceisfun/dtmesh/algorithm/geometry"
	"github.com/iceisfun/dtmesh/algorithm/polygon"
	"github.com/iceisfun/dtmesh/predicates"
	"github.com/iceisfun/dtmesh/tin"
	"github.com/iceisfun/dtmesh/types"
)

var (
	ErrPrecondition = errors.New("voronoi: precondition violation")
	ErrNotBootstrapped = errors.New("voronoi: mesh is not bootstrapped")
)

// Options configures a Voronoi build, mirroring spec section 6's build
// options.
type Options struct {
	Bounds                          *types.AABB
	EnableAdjustments               bool
	AdjustmentThreshold             float64
	EnableAutomaticColorAssignment  bool
}

// ThiessenPolygon is a single site's bounded Voronoi cell: a hub vertex, an
// ordered loop of polygon vertices, and whether the loop was clipped
// against the bounding rectangle (i.e. the site lies on the mesh's convex
// hull).
type ThiessenPolygon struct {
	Hub  *types.Vertex
	Loop []*types.Vertex
	Open bool
}

// Voronoi is the bounded Voronoi diagram derived from a Mesh's dual.
type Voronoi struct {
	mesh   *tin.Mesh
	bounds types.AABB
	sample types.AABB

	sites    []*types.Vertex
	vertices []*types.Vertex
	polygons []*ThiessenPolygon
	edges    []types.EdgeRef

	centers    map[triKey]*types.Vertex
	corners    map[int]*types.Vertex
	syntheticID int
}

type triKey [3]int

func keyOf(t types.TriangleRef) triKey {
	ids := [3]int{t.A.ID, t.B.ID, t.C.ID}
	sort.Ints(ids[:])
	return triKey{ids[0], ids[1], ids[2]}
}

// New builds a bounded Voronoi diagram over the given sites, triangulating
// them internally with a fresh mesh.
func New(sites []*types.Vertex, opts Options) (*Voronoi, error) {
	if len(sites) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 sites", ErrPrecondition)
	}
	spacing := estimateSpacing(sites)
	m := tin.New(spacing)
	if _, err := m.AddBulk(sites, nil); err != nil {
		return nil, err
	}
	if !m.IsBootstrapped() {
		return nil, fmt.Errorf("%w", ErrNotBootstrapped)
	}
	return NewFromMesh(m, opts)
}

// NewFromMesh builds a bounded Voronoi diagram from an already-constructed,
// bootstrapped mesh.
func NewFromMesh(m *tin.Mesh, opts Options) (*Voronoi, error) {
	if m == nil || !m.IsBootstrapped() {
		return nil, fmt.Errorf("%w", ErrNotBootstrapped)
	}

	sample := sampleBoundsOf(m)
	bounds := sample
	if opts.Bounds != nil {
		bounds = *opts.Bounds
		if !contains(bounds, sample) {
			return nil, fmt.Errorf("%w: bounds do not contain sample bounds", ErrPrecondition)
		}
	} else {
		bounds = expandBounds(sample, meanEdgeLength(m)/4)
	}

	vb := &Voronoi{
		mesh:        m,
		bounds:      bounds,
		sample:      sample,
		sites:       m.GetVertices(),
		centers:     make(map[triKey]*types.Vertex),
		corners:     make(map[int]*types.Vertex),
		syntheticID: 1 << 26,
	}

	vb.buildCenters()
	for _, v := range vb.sites {
		poly := vb.buildPolygon(v)
		vb.polygons = append(vb.polygons, poly)
		for i := range poly.Loop {
			j := (i + 1) % len(poly.Loop)
			if poly.Open && j == 0 {
				continue
			}
			vb.edges = append(vb.edges, types.NewEdgeRef(poly.Loop[i], poly.Loop[j]))
		}
	}
	return vb, nil
}

func (vb *Voronoi) newSyntheticVertex(p types.Point, z float64) *types.Vertex {
	vb.syntheticID++
	v := types.NewVertex(vb.syntheticID, p.X, p.Y, z)
	v.SetSynthetic(true)
	vb.vertices = append(vb.vertices, v)
	return v
}

// buildCenters computes the circumcenter of every interior triangle (spec
// section 4.8 step 1), tagging centers that fall on the bound's boundary
// with their perimeter parameter and leaving interior centers at z = NaN.
func (vb *Voronoi) buildCenters() {
	for _, t := range vb.mesh.GetTriangles() {
		center, ok := geometry.Circumcenter(t.A.Point(), t.B.Point(), t.C.Point())
		if !ok {
			center = geometry.Centroid(t.A.Point(), t.B.Point(), t.C.Point())
		}
		z := math.NaN()
		if side, on := sideOf(center, vb.bounds); on {
			z = computeZ(side, center, vb.bounds)
		}
		vb.centers[keyOf(t)] = vb.newSyntheticVertex(center, z)
	}
}

// GetPolygons returns every site's bounded Voronoi polygon.
func (vb *Voronoi) GetPolygons() []*ThiessenPolygon { return vb.polygons }

// GetEdges returns every Voronoi edge, deduplicated by canonical endpoint
// pair.
func (vb *Voronoi) GetEdges() []types.EdgeRef {
	seen := make(map[types.EdgeRef]bool)
	var out []types.EdgeRef
	for _, e := range vb.edges {
		c := e.Canonical()
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// GetVertices returns the mesh's original site vertices.
func (vb *Voronoi) GetVertices() []*types.Vertex { return vb.sites }

// GetVoronoiVertices returns every synthetic vertex created by the builder:
// circumcenters, clipped boundary points, and rectangle corners.
func (vb *Voronoi) GetVoronoiVertices() []*types.Vertex { return vb.vertices }

// GetBounds returns the rectangle the diagram was clipped to.
func (vb *Voronoi) GetBounds() types.AABB { return vb.bounds }

// GetSampleBounds returns the bounding box of the input sites.
func (vb *Voronoi) GetSampleBounds() types.AABB { return vb.sample }

// PolygonArea returns a single polygon's area via the shoelace formula,
// wired to algorithm/polygon.SignedArea exactly as tin.Mesh.PerimeterArea
// uses it over a hull loop.
func (vb *Voronoi) PolygonArea(p *ThiessenPolygon) float64 {
	if len(p.Loop) < 3 {
		return 0
	}
	loop := make([]types.Point, len(p.Loop))
	for i, v := range p.Loop {
		loop[i] = v.Point()
	}
	return math.Abs(polygon.SignedArea(loop))
}

// TotalArea sums every polygon's area. For a Voronoi diagram clipped to
// vb.GetBounds(), this equals the bounding rectangle's area (spec section
// 8's area invariant): the cells exactly tile the clip rectangle.
func (vb *Voronoi) TotalArea() float64 {
	sum := 0.0
	for _, p := range vb.polygons {
		sum += vb.PolygonArea(p)
	}
	return sum
}

// GetContainingPolygon returns the polygon whose clipped loop actually
// contains (x, y), per spec section 4.8 step 5 (the Voronoi definition).
// The authoritative test is predicates.PointInPolygonRayCast against each
// polygon's bounded loop; nearest-hub distance is only a fallback for the
// rare point that ray-casting misses exactly on a shared boundary edge.
func (vb *Voronoi) GetContainingPolygon(x, y float64) *ThiessenPolygon {
	p := types.Point{X: x, Y: y}
	for _, poly := range vb.polygons {
		loop := make([]types.Point, len(poly.Loop))
		for i, v := range poly.Loop {
			loop[i] = v.Point()
		}
		if predicates.PointInPolygonRayCast(p, loop, boundaryTol) {
			return poly
		}
	}

	var best *ThiessenPolygon
	bestDist := math.Inf(1)
	for _, poly := range vb.polygons {
		d := predicates.Dist2(poly.Hub.Point(), p)
		if d < bestDist {
			bestDist = d
			best = poly
		}
	}
	return best
}

// contains reports whether outer fully encloses inner, checking both of
// inner's extreme corners against outer with predicates.PointInAABB.
func contains(outer, inner types.AABB) bool {
	return predicates.PointInAABB(inner.Min, outer, 0) && predicates.PointInAABB(inner.Max, outer, 0)
}

func sampleBoundsOf(m *tin.Mesh) types.AABB {
	pts := make([]types.Point, 0, len(m.GetVertices()))
	for _, v := range m.GetVertices() {
		pts = append(pts, v.Point())
	}
	return geometry.BBox(pts)
}

func expandBounds(b types.AABB, margin float64) types.AABB {
	if margin <= 0 {
		margin = 1
	}
	return types.AABB{
		Min: types.Point{X: b.Min.X - margin, Y: b.Min.Y - margin},
		Max: types.Point{X: b.Max.X + margin, Y: b.Max.Y + margin},
	}
}

func meanEdgeLength(m *tin.Mesh) float64 {
	edges := m.GetEdges()
	if len(edges) == 0 {
		return 1
	}
	sum := 0.0
	for _, e := range edges {
		sum += math.Hypot(e.A.X-e.B.X, e.A.Y-e.B.Y)
	}
	return sum / float64(len(edges))
}

func estimateSpacing(sites []*types.Vertex) float64 {
	if len(sites) < 2 {
		return 1
	}
	pts := make([]types.Point, len(sites))
	for i, v := range sites {
		pts[i] = v.Point()
	}
	b := geometry.BBox(pts)
	area := (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y)
	if area <= 0 {
		return 1
	}
	return math.Sqrt(area / float64(len(sites)))
}
