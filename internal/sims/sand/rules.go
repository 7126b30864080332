package sand

// Evaluate runs the rule for the particle's kind against its neighborhood.
// Rules may update the particle's own state (flow direction, locked target).
// Every kind/neighborhood combination yields an action.
func (p *Particle) Evaluate(n Neighborhood) Action {
	switch p.Kind {
	case Salt:
		return p.salt(&n)
	case Water:
		return p.water(&n)
	case Wood:
		return wood(&n)
	case Cornucopia:
		return p.cornucopia(&n)
	default:
		return StayPut()
	}
}

func (p *Particle) salt(n *Neighborhood) Action {
	for _, off := range neighborOffsets {
		if n.At(off[0], off[1]) == Water {
			return Pop()
		}
	}
	if n.empty(0, 1) {
		return MoveInto(0, 1)
	}
	return StayPut()
}

func (p *Particle) flow() int {
	if p.Dir < 0 {
		return -1
	}
	return 1
}

func (p *Particle) water(n *Neighborhood) Action {
	below := n.empty(0, 1)
	belowLeft := n.empty(-1, 1)
	belowRight := n.empty(1, 1)
	left := n.empty(-1, 0)
	right := n.empty(1, 0)

	switch {
	case below:
		return MoveInto(0, 1)
	case belowLeft && belowRight:
		return MoveInto(p.flow(), 1)
	case belowRight:
		p.Dir = 1
		return MoveInto(1, 1)
	case belowLeft:
		p.Dir = -1
		return MoveInto(-1, 1)
	case left && right:
		return MoveInto(p.flow(), 0)
	case right:
		p.Dir = 1
		return MoveInto(1, 0)
	case left:
		p.Dir = -1
		return MoveInto(-1, 0)
	}
	return StayPut()
}

// wood falls and spreads like water but always prefers right on ties.
func wood(n *Neighborhood) Action {
	switch {
	case n.empty(0, 1):
		return MoveInto(0, 1)
	case n.empty(1, 1):
		return MoveInto(1, 1)
	case n.empty(-1, 1):
		return MoveInto(-1, 1)
	case n.empty(1, 0):
		return MoveInto(1, 0)
	case n.empty(-1, 0):
		return MoveInto(-1, 0)
	}
	return StayPut()
}

func (p *Particle) cornucopia(n *Neighborhood) Action {
	if p.Target == Background {
		for _, off := range neighborOffsets {
			if k := n.At(off[0], off[1]); k != Background {
				p.Target = k
				break
			}
		}
	}
	if p.Target == Background {
		return StayPut()
	}
	for _, off := range neighborOffsets {
		if n.empty(off[0], off[1]) {
			return GrowInto(off[0], off[1], p.Target)
		}
	}
	return StayPut()
}
