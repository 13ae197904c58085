// Package qedge implements the quad-edge topology and edge pool described
// in the mesh engine's design: compact, index-addressed half-edge records
// with dual, forward and reverse links, recycled from a free list.
package qedge

import "github.com/iceisfun/dtmesh/types"

// ID addresses a single half-edge within a Pool. A quad-edge pair occupies
// two consecutive IDs: the even ID is the base, the odd ID is its dual, so
// Dual(e) is always e^1.
type ID int32

// Nil is the sentinel for "no edge".
const Nil ID = -1

// Valid reports whether id addresses a real slot (does not imply the slot
// is currently allocated).
func (id ID) Valid() bool { return id >= 0 }

// Dual returns the other half of id's quad-edge pair.
func (id ID) Dual() ID { return id ^ 1 }

// IsBase reports whether id is the even (base) side of its pair.
func (id ID) IsBase() bool { return id&1 == 0 }

// record is one half-edge slot. bits is only meaningful on the dual (odd)
// side of a pair; the base side's bits field is unused filler so that
// pairs can be recycled as a unit.
type record struct {
	origin  *types.Vertex
	forward ID
	reverse ID
	bits    int32
	live    bool
}

// Pool is an arena allocator for quad-edge pairs. It owns every half-edge
// it hands out; callers address edges exclusively through ID values, never
// pointers, so the pool can freely recycle slots.
type Pool struct {
	edges []record
	free  []ID
	live  int // number of allocated pairs (not half-edges)
}

// NewPool creates an empty edge pool.
func NewPool() *Pool {
	return &Pool{
		edges: make([]record, 0, 256),
	}
}

// Allocate returns a fresh base half-edge from a to b. Its dual has origin
// b. A nil vertex designates a ghost half-edge (origin at the virtual
// point at infinity). Forward/reverse links start self-referential until
// the caller wires them into the topology.
func (p *Pool) Allocate(a, b *types.Vertex) ID {
	var base ID
	if len(p.free) > 0 {
		base = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
	} else {
		base = ID(len(p.edges))
		p.edges = append(p.edges, record{}, record{})
	}
	dual := base.Dual()

	p.edges[base] = record{origin: a, forward: base, reverse: base, live: true}
	p.edges[dual] = record{origin: b, forward: dual, reverse: dual, live: true}
	p.live++
	return base
}

// Deallocate returns a quad-edge pair to the free list. Both sides of the
// pair are released together.
func (p *Pool) Deallocate(e ID) {
	base := e
	if !e.IsBase() {
		base = e.Dual()
	}
	dual := base.Dual()
	if !p.edges[base].live {
		return
	}
	p.edges[base] = record{}
	p.edges[dual] = record{}
	p.free = append(p.free, base)
	p.live--
}

// IsLive reports whether e currently addresses an allocated half-edge.
func (p *Pool) IsLive(e ID) bool {
	return e.Valid() && int(e) < len(p.edges) && p.edges[e].live
}

// NumPairs returns the number of currently allocated quad-edge pairs.
func (p *Pool) NumPairs() int { return p.live }

// Dual returns the dual of e.
func (p *Pool) Dual(e ID) ID { return e.Dual() }

// Forward returns the edge following e around its left face.
func (p *Pool) Forward(e ID) ID { return p.edges[e].forward }

// Reverse returns the edge preceding e around its left face.
func (p *Pool) Reverse(e ID) ID { return p.edges[e].reverse }

// SetForward links e.forward = f and f.reverse = e.
func (p *Pool) SetForward(e, f ID) {
	p.edges[e].forward = f
	p.edges[f].reverse = e
}

// SetReverse links e.reverse = r and r.forward = e.
func (p *Pool) SetReverse(e, r ID) {
	p.edges[e].reverse = r
	p.edges[r].forward = e
}

// Origin returns the origin vertex of e, or nil if e is a ghost half-edge.
func (p *Pool) Origin(e ID) *types.Vertex { return p.edges[e].origin }

// SetOrigin sets the origin vertex of e.
func (p *Pool) SetOrigin(e ID, v *types.Vertex) { p.edges[e].origin = v }

// Destination returns the origin of e's dual, i.e. the vertex e points at.
func (p *Pool) Destination(e ID) *types.Vertex { return p.Origin(e.Dual()) }

// IsGhost reports whether e's origin is the virtual point at infinity.
func (p *Pool) IsGhost(e ID) bool { return p.Origin(e) == nil }

// PinwheelNext returns the next edge sharing e's origin, in rotational
// order: e.dual.forward.
func (p *Pool) PinwheelNext(e ID) ID { return p.Forward(e.Dual()) }

// PinwheelPrev returns the previous edge sharing e's origin.
func (p *Pool) PinwheelPrev(e ID) ID { return p.Reverse(e).Dual() }

// Pinwheel calls fn once for every edge sharing e's origin, in rotational
// order, starting from and including e. Stops early if fn returns false.
func (p *Pool) Pinwheel(e ID, fn func(ID) bool) {
	start := e
	cur := e
	for {
		if !fn(cur) {
			return
		}
		cur = p.PinwheelNext(cur)
		if cur == start {
			return
		}
	}
}

// Walk calls fn once for every edge of the interior triangle whose edges
// are (e, e.forward, e.forward.forward), starting from e.
func (p *Pool) Walk(e ID, fn func(ID) bool) {
	cur := e
	for i := 0; i < 3; i++ {
		if !fn(cur) {
			return
		}
		cur = p.Forward(cur)
	}
}

// Iterate calls fn once for every currently allocated quad-edge pair,
// identified by its base (even) ID.
func (p *Pool) Iterate(fn func(ID) bool) {
	for i := 0; i < len(p.edges); i += 2 {
		id := ID(i)
		if !p.edges[id].live {
			continue
		}
		if !fn(id) {
			return
		}
	}
}
