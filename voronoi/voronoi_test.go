package voronoi

import (
	"math"
	"testing"

	"github.com/iceisfun/dtmesh/types"
)

// Scenario 6: three sites, default bounds, three open polygons each
// containing its own site.
func TestThreeSitesDefaultBounds(t *testing.T) {
	sites := []*types.Vertex{
		types.NewVertex(0, 0, 0, 0),
		types.NewVertex(1, 2, 0, 0),
		types.NewVertex(2, 1, 2, 0),
	}
	vb, err := New(sites, Options{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(vb.GetPolygons()) != 3 {
		t.Fatalf("expected 3 polygons, got %d", len(vb.GetPolygons()))
	}
	for _, p := range vb.GetPolygons() {
		if !p.Open {
			t.Fatalf("expected every polygon to be open (all 3 sites on the hull)")
		}
		if len(p.Loop) < 3 {
			t.Fatalf("expected a non-degenerate polygon loop for hub %d", p.Hub.ID)
		}
		found := vb.GetContainingPolygon(p.Hub.X, p.Hub.Y)
		if found == nil || found.Hub != p.Hub {
			t.Fatalf("expected containing polygon of site %d to be itself", p.Hub.ID)
		}
	}
}

// Scenario 6 (continued): the clipped cells must exactly tile the
// bounding rectangle, per spec section 8's Voronoi area invariant.
func TestTotalAreaMatchesBounds(t *testing.T) {
	sites := []*types.Vertex{
		types.NewVertex(0, 0, 0, 0),
		types.NewVertex(1, 2, 0, 0),
		types.NewVertex(2, 1, 2, 0),
		types.NewVertex(3, 3, 3, 0),
	}
	vb, err := New(sites, Options{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	bounds := vb.GetBounds()
	wantArea := (bounds.Max.X - bounds.Min.X) * (bounds.Max.Y - bounds.Min.Y)
	gotArea := vb.TotalArea()
	if math.Abs(gotArea-wantArea) > 1e-6*wantArea {
		t.Fatalf("expected total polygon area %v to match bounds area %v", gotArea, wantArea)
	}
}

func TestLiangBarskyClipsToBounds(t *testing.T) {
	b := types.AABB{Min: types.Point{X: 0, Y: 0}, Max: types.Point{X: 10, Y: 10}}
	c0, c1, ok := LiangBarsky(types.Point{X: -5, Y: 5}, types.Point{X: 15, Y: 5}, b)
	if !ok {
		t.Fatalf("expected clip to succeed")
	}
	if math.Abs(c0.X-0) > 1e-9 || math.Abs(c1.X-10) > 1e-9 {
		t.Fatalf("unexpected clip result: %v -> %v", c0, c1)
	}
}

func TestLiangBarskyEntirelyOutside(t *testing.T) {
	b := types.AABB{Min: types.Point{X: 0, Y: 0}, Max: types.Point{X: 10, Y: 10}}
	_, _, ok := LiangBarsky(types.Point{X: -5, Y: -5}, types.Point{X: -1, Y: -1}, b)
	if ok {
		t.Fatalf("expected segment entirely outside bounds to be rejected")
	}
}

func TestComputeZOrdersBoundarySides(t *testing.T) {
	b := types.AABB{Min: types.Point{X: 0, Y: 0}, Max: types.Point{X: 10, Y: 10}}
	zBottom := computeZ(0, types.Point{X: 5, Y: 0}, b)
	zRight := computeZ(1, types.Point{X: 10, Y: 5}, b)
	zTop := computeZ(2, types.Point{X: 5, Y: 10}, b)
	zLeft := computeZ(3, types.Point{X: 0, Y: 5}, b)
	if !(zBottom < zRight && zRight < zTop && zTop < zLeft && zLeft < 4) {
		t.Fatalf("expected boundary parameters to increase bottom->right->top->left: %v %v %v %v",
			zBottom, zRight, zTop, zLeft)
	}
}
