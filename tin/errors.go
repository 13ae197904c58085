package tin

import "errors"

var (
	// ErrPrecondition indicates a precondition violation: fewer than three
	// input vertices, a nil input, bounds not containing samples, too many
	// constraints, or an operation attempted on a disposed/locked mesh.
	ErrPrecondition = errors.New("tin: precondition violation")

	// ErrDisposed indicates an operation on a mesh that has been disposed.
	ErrDisposed = errors.New("tin: mesh is disposed")

	// ErrLocked indicates a vertex addition attempted after the mesh was
	// locked by a prior call to AddConstraints.
	ErrLocked = errors.New("tin: mesh is locked against vertex addition")

	// ErrBootstrapFailed indicates every candidate triple for the initial
	// triangle was collinear.
	ErrBootstrapFailed = errors.New("tin: geometric bootstrap failure, all candidate triples collinear")

	// ErrInvariant indicates an internal invariant was violated: a
	// predicate-guided walk could not find a required straddling edge, or
	// ear selection returned none. These indicate implementation bugs and
	// are fatal for the mesh instance.
	ErrInvariant = errors.New("tin: internal invariant violation")

	// ErrConstraintsAlreadyAdded indicates AddConstraints was called more
	// than once on the same mesh.
	ErrConstraintsAlreadyAdded = errors.New("tin: constraints already added")

	// ErrTooManyConstraints indicates the constraint index range
	// [0, qedge.MaxConstraintIndex] was exhausted.
	ErrTooManyConstraints = errors.New("tin: too many constraints")
)
