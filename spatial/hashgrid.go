package spatial

import (
	"math"

	"github.com/iceisfun/dtmesh/types"
)

// HashGrid implements Index using a uniform spatial hash grid.
type HashGrid struct {
	cellSize float64
	cells    map[[2]int][]*types.Vertex
}

// NewHashGrid creates a hash grid index with the given cell size.
func NewHashGrid(cellSize float64) *HashGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HashGrid{
		cellSize: cellSize,
		cells:    make(map[[2]int][]*types.Vertex),
	}
}

// FindVerticesNear returns the vertices at distance <= radius from p,
// scanning only the cells that overlap the query radius.
func (h *HashGrid) FindVerticesNear(p types.Point, radius float64) []*types.Vertex {
	if radius < 0 {
		radius = 0
	}

	min := h.pointToCell(types.Point{X: p.X - radius, Y: p.Y - radius})
	max := h.pointToCell(types.Point{X: p.X + radius, Y: p.Y + radius})

	var result []*types.Vertex
	for cy := min[1]; cy <= max[1]; cy++ {
		for cx := min[0]; cx <= max[0]; cx++ {
			for _, v := range h.cells[[2]int{cx, cy}] {
				dx, dy := v.X-p.X, v.Y-p.Y
				if dx*dx+dy*dy <= radius*radius {
					result = append(result, v)
				}
			}
		}
	}

	return result
}

// AddVertex adds a vertex to the appropriate cell.
func (h *HashGrid) AddVertex(v *types.Vertex) {
	cell := h.pointToCell(v.Point())
	h.cells[cell] = append(h.cells[cell], v)
}

// Build is a no-op for hash grid (incremental structure).
func (h *HashGrid) Build() {}

func (h *HashGrid) pointToCell(p types.Point) [2]int {
	return [2]int{
		int(math.Floor(p.X / h.cellSize)),
		int(math.Floor(p.Y / h.cellSize)),
	}
}
