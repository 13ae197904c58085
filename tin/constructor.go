package tin

import (
	"math/rand"

	"github.com/iceisfun/dtmesh/qedge"
	"github.com/iceisfun/dtmesh/spatial"
	"github.com/iceisfun/dtmesh/types"
)

// Mesh is the incremental Delaunay / constrained-Delaunay triangulation
// engine. A Mesh is single-threaded and stateful: it is not safe for
// concurrent mutation, and reads are safe only when no writer is active.
type Mesh struct {
	cfg  config
	pool *qedge.Pool

	vertexIndex spatial.Index
	pending     []*types.Vertex
	occupants   []*types.Vertex

	bootstrapped bool
	locked       bool
	disposed     bool

	searchEdge qedge.ID

	constraints     []*types.Constraint
	nextConstraint  int
	maxReplacements int

	syntheticCounter int

	rng *rand.Rand
}

// New creates an empty mesh. nominalPointSpacing is the expected distance
// between neighboring input vertices; with the configured Epsilon it
// derives the vertex merge tolerance. The robust predicates do not use it:
// their filter thresholds scale with the coordinates of the points tested.
func New(nominalPointSpacing float64, opts ...Option) *Mesh {
	cfg := newDefaultConfig(nominalPointSpacing)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &Mesh{
		cfg:              cfg,
		pool:             qedge.NewPool(),
		vertexIndex:      spatial.NewHashGrid(cfg.vertexTolerance() * 4),
		searchEdge:       qedge.Nil,
		syntheticCounter: syntheticIDBase,
		rng:              rand.New(rand.NewSource(1)),
	}
	return m
}

// Dispose releases the edge pool and drops all vertex references. All
// subsequent operations on this mesh fail with ErrDisposed.
func (m *Mesh) Dispose() {
	m.pool = nil
	m.occupants = nil
	m.pending = nil
	m.constraints = nil
	m.vertexIndex = nil
	m.disposed = true
}

// Clear resets the mesh state for reuse without releasing the edge pool's
// backing storage.
func (m *Mesh) Clear() {
	if m.disposed {
		return
	}
	m.pool = qedge.NewPool()
	m.occupants = nil
	m.pending = nil
	m.constraints = nil
	m.nextConstraint = 0
	m.maxReplacements = 0
	m.bootstrapped = false
	m.locked = false
	m.searchEdge = qedge.Nil
	m.vertexIndex = spatial.NewHashGrid(m.cfg.vertexTolerance() * 4)
}
