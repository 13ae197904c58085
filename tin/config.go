package tin

import "github.com/iceisfun/dtmesh/types"

type config struct {
	nominalPointSpacing float64
	epsilon             types.Epsilon

	progressPollInterval int

	debugAddVertex   func(*types.Vertex)
	debugRemoveVertex func(*types.Vertex)
	debugFlipEdge    func(types.EdgeRef)
	debugAddTriangle func(types.TriangleRef)
}

// DefaultProgressPollInterval is how many vertices elapse between progress
// monitor polls during bulk insertion.
const DefaultProgressPollInterval = 1000

func newDefaultConfig(nominalPointSpacing float64) config {
	if nominalPointSpacing <= 0 {
		nominalPointSpacing = 1
	}
	return config{
		nominalPointSpacing:  nominalPointSpacing,
		epsilon:              types.DefaultEpsilon(),
		progressPollInterval: DefaultProgressPollInterval,
	}
}

// vertexTolerance is the distance below which two vertices are merged
// rather than triangulated separately.
func (c *config) vertexTolerance() float64 {
	return c.epsilon.Value(c.nominalPointSpacing)
}
