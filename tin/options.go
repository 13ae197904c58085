package tin

import "github.com/iceisfun/dtmesh/types"

// Option configures a Mesh during construction.
type Option func(*config)

// WithEpsilon sets the tolerance used to derive the vertex merge distance.
// It does not affect the robust-predicate filters in algorithm/robust.
func WithEpsilon(epsilon types.Epsilon) Option {
	return func(c *config) {
		c.epsilon = epsilon
	}
}

// WithProgressPollInterval sets how many inserted vertices elapse between
// progress-monitor polls during bulk insertion.
func WithProgressPollInterval(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.progressPollInterval = n
		}
	}
}

// WithDebugAddVertex installs a hook called after a vertex is successfully
// inserted into the triangulation (not called for merged vertices).
func WithDebugAddVertex(hook func(*types.Vertex)) Option {
	return func(c *config) {
		c.debugAddVertex = hook
	}
}

// WithDebugRemoveVertex installs a hook called after a vertex is removed.
func WithDebugRemoveVertex(hook func(*types.Vertex)) Option {
	return func(c *config) {
		c.debugRemoveVertex = hook
	}
}

// WithDebugFlipEdge installs a hook called after an edge flip during
// insertion or constraint processing (vertex removal performs no flips).
func WithDebugFlipEdge(hook func(types.EdgeRef)) Option {
	return func(c *config) {
		c.debugFlipEdge = hook
	}
}

// WithDebugAddTriangle installs a hook called after a new triangle is
// formed.
func WithDebugAddTriangle(hook func(types.TriangleRef)) Option {
	return func(c *config) {
		c.debugAddTriangle = hook
	}
}

// ProgressMonitor is polled during bulk insertion. It returns true to
// request cancellation; the engine finishes the vertex in progress and
// exits cleanly.
type ProgressMonitor func(inserted, total int) (cancel bool)
