package spatial

import "github.com/iceisfun/dtmesh/types"

// Index provides spatial queries over the vertices of a mesh. It backs the
// vertex-merge tolerance check in tin.Mesh.Add: before committing an
// incremental insertion, the mesh asks the index for any existing vertex
// within the configured tolerance of the new point.
type Index interface {
	// FindVerticesNear returns vertices within radius of point p.
	FindVerticesNear(p types.Point, radius float64) []*types.Vertex
	// AddVertex adds a vertex to the index.
	AddVertex(v *types.Vertex)
	// Build finalizes the index structure.
	Build()
}
