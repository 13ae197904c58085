package qedge

// Per-pair bits live on the dual (odd) side of a quad-edge pair. The sign
// bit doubles as IsConstrained so the common check is a single branch on
// the raw int32 being negative.
const (
	constrainedSignBit int32 = -1 << 31
	areaMemberBit      int32 = 1 << 30
	areaOnBaseSideBit  int32 = 1 << 29

	// MaxConstraintIndex is the largest representable constraint index.
	MaxConstraintIndex = 1<<20 - 1

	constraintIndexMask int32 = 1<<20 - 1
)

func (p *Pool) dualSlot(e ID) ID {
	if e.IsBase() {
		return e.Dual()
	}
	return e
}

// IsConstrained reports whether e (either side of its pair) is marked
// constrained.
func (p *Pool) IsConstrained(e ID) bool {
	return p.edges[p.dualSlot(e)].bits < 0
}

// ConstraintIndex returns the constraint index stored on e's pair, valid
// only when IsConstrained reports true.
func (p *Pool) ConstraintIndex(e ID) int {
	return int(p.edges[p.dualSlot(e)].bits & constraintIndexMask)
}

// SetConstraint marks e's pair constrained with the given index.
func (p *Pool) SetConstraint(e ID, index int) {
	slot := p.dualSlot(e)
	bits := p.edges[slot].bits
	bits &^= constraintIndexMask
	bits |= int32(index) & constraintIndexMask
	bits |= constrainedSignBit
	p.edges[slot].bits = bits
}

// ClearConstraint unmarks e's pair as constrained, leaving the area flags
// untouched.
func (p *Pool) ClearConstraint(e ID) {
	slot := p.dualSlot(e)
	p.edges[slot].bits &^= constrainedSignBit
	p.edges[slot].bits &^= constraintIndexMask
}

// IsAreaMember reports whether e's pair has been flood-filled as interior
// to a data-area constraint.
func (p *Pool) IsAreaMember(e ID) bool {
	return p.edges[p.dualSlot(e)].bits&areaMemberBit != 0
}

// SetAreaMember sets or clears the area-membership flag on e's pair.
func (p *Pool) SetAreaMember(e ID, on bool) {
	slot := p.dualSlot(e)
	if on {
		p.edges[slot].bits |= areaMemberBit
	} else {
		p.edges[slot].bits &^= areaMemberBit
	}
}

// AreaOnBaseSide reports whether the area-defining side of e's pair is the
// base (even) half-edge rather than its dual.
func (p *Pool) AreaOnBaseSide(e ID) bool {
	return p.edges[p.dualSlot(e)].bits&areaOnBaseSideBit != 0
}

// SetAreaOnBaseSide sets or clears which side of the pair bounds the area.
func (p *Pool) SetAreaOnBaseSide(e ID, on bool) {
	slot := p.dualSlot(e)
	if on {
		p.edges[slot].bits |= areaOnBaseSideBit
	} else {
		p.edges[slot].bits &^= areaOnBaseSideBit
	}
}
