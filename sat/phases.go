package sat

// Phases holds the four per-variable sign arrays described in §3 Phase
// memory: saved (last phase assigned), target (best phase seen this
// stable-mode run, by trail height), best (best phase seen ever) and the
// initial phase option. Decisions consult them in priority order
// best, target, saved, initial, subject to the active rephasing schedule.
type Phases struct {
	saved   []int8 // -1, 0 (unset), +1
	target  []int8
	best    []int8
	initial int8
}

func NewPhases(n int, initial int8) *Phases {
	return &Phases{
		saved:   make([]int8, n),
		target:  make([]int8, n),
		best:    make([]int8, n),
		initial: initial,
	}
}

func (p *Phases) Grow(n int) {
	for len(p.saved) < n {
		p.saved = append(p.saved, 0)
		p.target = append(p.target, 0)
		p.best = append(p.best, 0)
	}
}

// Save remembers the phase just assigned to v (sign true means negative).
func (p *Phases) Save(v Var, negated bool) {
	s := int8(1)
	if negated {
		s = -1
	}
	p.saved[v] = s
}

func (p *Phases) SetTarget(v Var, s int8) { p.target[v] = s }
func (p *Phases) SetBest(v Var, s int8)   { p.best[v] = s }

// Decide picks the preferred sign for v under the priority order
// best, target, saved, initial (§3 Phase memory).
func (p *Phases) Decide(v Var) bool {
	if s := p.best[v]; s != 0 {
		return s < 0
	}
	if s := p.target[v]; s != 0 {
		return s < 0
	}
	if s := p.saved[v]; s != 0 {
		return s < 0
	}
	return p.initial < 0
}

func (p *Phases) ResetTarget() {
	for i := range p.target {
		p.target[i] = 0
	}
}

func (p *Phases) ResetBest() {
	for i := range p.best {
		p.best[i] = 0
	}
}

// Invert flips every saved phase, one of the rotation steps maybeRephase()
// cycles through (§4.4 Rephase).
func (p *Phases) Invert() {
	for i, s := range p.saved {
		p.saved[i] = -s
	}
}

// AdoptBestAsSaved copies the best-known phases into saved, another
// rotation step of the rephase schedule.
func (p *Phases) AdoptBestAsSaved() {
	copy(p.saved, p.best)
}
