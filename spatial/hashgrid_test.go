package spatial

import (
	"testing"

	"github.com/iceisfun/dtmesh/types"
)

func TestHashGridAddAndQuery(t *testing.T) {
	grid := NewHashGrid(1)
	v0 := types.NewVertex(0, 0, 0, 0)
	v1 := types.NewVertex(1, 1.9, 0, 0)
	grid.AddVertex(v0)
	grid.AddVertex(v1)

	result := grid.FindVerticesNear(types.Point{X: 0.1, Y: 0.2}, 0.5)
	if len(result) != 1 || result[0] != v0 {
		t.Fatalf("expected to find vertex 0, got %v", result)
	}

	result = grid.FindVerticesNear(types.Point{X: 1.9, Y: 0}, 0.2)
	if len(result) == 0 {
		t.Fatalf("expected non-empty result")
	}
}

func TestHashGridZeroRadius(t *testing.T) {
	grid := NewHashGrid(1)
	v0 := types.NewVertex(0, 0.1, 0.2, 0)
	grid.AddVertex(v0)
	result := grid.FindVerticesNear(types.Point{X: 0.1, Y: 0.2}, 0)
	if len(result) != 1 || result[0] != v0 {
		t.Fatalf("expected match at same cell")
	}
}
