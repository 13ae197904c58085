package formatting

import (
	"bytes"
	"testing"

	"github.com/iceisfun/dtmesh/types"
)

func TestFormattingHelpers(t *testing.T) {
	pt := types.Point{X: 1.2345, Y: -9.876}
	if s := PointString(pt); s == "" {
		t.Fatalf("point string should not be empty")
	}

	box := types.AABB{Min: types.Point{X: 0, Y: 0}, Max: types.Point{X: 1, Y: 1}}
	if s := AABBString(box); s == "" {
		t.Fatalf("aabb string should not be empty")
	}

	v1 := types.NewVertex(1, 0, 0, 0)
	v2 := types.NewVertex(2, 1, 1, 0)
	v3 := types.NewVertex(3, 2, 0, 0)

	if EdgeString(types.NewEdgeRef(v2, v1)) != "Edge{1, 2}" {
		t.Fatalf("unexpected edge string")
	}

	if s := TriangleString(types.NewTriangleRef(v1, v2, v3)); s == "" {
		t.Fatalf("triangle string should not be empty")
	}

	loop := types.NewPolygonLoop(v1, v2, v3)
	if s := PolygonLoopString(loop); s != "PolygonLoop{1, 2, 3}" {
		t.Fatalf("unexpected polygon loop string: %s", s)
	}

	buf := &bytes.Buffer{}
	if err := WritePoint(buf, pt); err != nil {
		t.Fatalf("write point failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output for WritePoint")
	}

	buf.Reset()
	if err := WriteTriangle(buf, types.NewTriangleRef(v1, v2, v3)); err != nil {
		t.Fatalf("write triangle failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output for WriteTriangle")
	}
}
