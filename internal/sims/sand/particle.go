package sand

// Particle is the occupant of a single cell. It is stored by value in the
// grid so each cell owns its instance exclusively.
type Particle struct {
	Kind Kind

	// Dir is Water's remembered horizontal flow direction (+1 or -1).
	Dir int8
	// Target is the kind a Cornucopia has locked onto; Background means none.
	Target Kind

	processed bool
}

// NewParticle returns a fresh instance of k with its default state.
func NewParticle(k Kind) Particle {
	p := Particle{Kind: k}
	if k == Water {
		p.Dir = 1
	}
	return p
}

// Processed reports whether the particle is exempt from evaluation for the
// rest of the current tick. Background and Concrete are always exempt and a
// Cornucopia never is.
func (p *Particle) Processed() bool {
	switch p.Kind {
	case Background, Concrete:
		return true
	case Cornucopia:
		return false
	default:
		return p.processed
	}
}

// wake is the per-tick hook run during the advance phase.
func (p *Particle) wake() {
	p.processed = false
}

func (p *Particle) markProcessed() {
	switch p.Kind {
	case Background, Concrete, Cornucopia:
		return
	}
	p.processed = true
}
