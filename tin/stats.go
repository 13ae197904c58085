package tin

import (
	"math"

	"github.com/iceisfun/dtmesh/algorithm/polygon"
	"github.com/iceisfun/dtmesh/predicates"
	"github.com/iceisfun/dtmesh/qedge"
	"github.com/iceisfun/dtmesh/types"
)

// Stats summarizes the non-ghost triangles currently in the mesh.
type Stats struct {
	Count      int
	AreaMin    float64
	AreaMax    float64
	AreaMean   float64
	AreaStdDev float64
	AreaSum    float64
}

// CountTriangles walks every live interior triangle once and computes area
// statistics, per spec section 6.
func (m *Mesh) CountTriangles() Stats {
	var stats Stats
	if !m.bootstrapped {
		return stats
	}

	var areas []float64
	visited := make(map[qedge.ID]bool)
	m.pool.Iterate(func(e qedge.ID) bool {
		m.collectTriangleArea(e, visited, &areas)
		m.collectTriangleArea(m.pool.Dual(e), visited, &areas)
		return true
	})

	stats.Count = len(areas)
	if stats.Count == 0 {
		return stats
	}

	stats.AreaMin = math.Inf(1)
	stats.AreaMax = math.Inf(-1)
	for _, a := range areas {
		stats.AreaSum += a
		if a < stats.AreaMin {
			stats.AreaMin = a
		}
		if a > stats.AreaMax {
			stats.AreaMax = a
		}
	}
	stats.AreaMean = stats.AreaSum / float64(stats.Count)

	var variance float64
	for _, a := range areas {
		d := a - stats.AreaMean
		variance += d * d
	}
	stats.AreaStdDev = math.Sqrt(variance / float64(stats.Count))

	return stats
}

// PerimeterArea returns the signed area enclosed by the convex hull
// boundary, using the same shoelace formula the teacher's
// algorithm/polygon.SignedArea applies to closed loops elsewhere in the
// pack. A positive value confirms GetPerimeter's winding is CCW.
func (m *Mesh) PerimeterArea() float64 {
	perimeter := m.GetPerimeter()
	if len(perimeter) < 3 {
		return 0
	}
	loop := make([]types.Point, len(perimeter))
	// Perimeter edges are canonical (ID-ordered), so take the vertex each
	// edge shares with the next one to recover the walk order.
	for i, e := range perimeter {
		next := perimeter[(i+1)%len(perimeter)]
		v := e.B
		if v != next.A && v != next.B {
			v = e.A
		}
		loop[i] = v.Point()
	}
	return polygon.SignedArea(loop)
}

func (m *Mesh) collectTriangleArea(e qedge.ID, visited map[qedge.ID]bool, areas *[]float64) {
	if visited[e] {
		return
	}
	e1 := m.pool.Forward(e)
	e2 := m.pool.Forward(e1)
	visited[e] = true
	visited[e1] = true
	visited[e2] = true

	a := m.pool.Origin(e)
	b := m.pool.Origin(e1)
	c := m.pool.Origin(e2)
	if a == nil || b == nil || c == nil {
		return
	}
	area := predicates.Area2(a.Point(), b.Point(), c.Point()) / 2
	*areas = append(*areas, math.Abs(area))
}
