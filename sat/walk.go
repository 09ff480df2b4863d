package sat

// walk.go implements a PAWS-style local search sweep (§4.12): starting
// from the current phase assignment, repeatedly flip the variable in some
// unsatisfied clause that yields the best "break count" (number of
// currently-satisfied clauses that flipping would break), with the weights
// of unsatisfied clauses growing every 1000 flips so chronically-unsatisfied clauses
// eventually dominate variable selection (the PAWS additive-weighting
// scheme).

// cb is the break-count reward table local search uses the same way
// kissat's walk.c does: for a clause that would become newly-unsatisfied
// with b other clauses still broken, the acceptance probability shrinks
// geometrically with b.
var cb = [...]float64{1.0, 0.85, 0.65, 0.45, 0.3, 0.2, 0.13, 0.08, 0.05, 0.03}

func cbAt(breakCount int) float64 {
	if breakCount < len(cb) {
		return cb[breakCount]
	}
	return cb[len(cb)-1] / float64(breakCount-len(cb)+2)
}

// walkState holds the local-search working set: every clause's current
// satisfaction status and weight, and per-literal membership so flips can
// update incrementally.
type walkState struct {
	assign  []int8 // indexed by Var, current trial value
	weights map[ClauseRef]float64
	unsat   map[ClauseRef]bool
	lits    map[ClauseRef][]Lit
	byLit   map[Lit][]ClauseRef
}

// walk runs WalkRounds sweeps of local search seeded from the saved phase
// assignment, adopting any fully-satisfying trial assignment it finds as
// the new best phase (§4.12).
func (s *Solver) walk() {
	if s.opts.WalkEnabled == 0 {
		return
	}
	ws := s.newWalkState()
	if ws == nil {
		return
	}
	flips := 0
	budget := s.opts.WalkFlipsPerVar * s.vars.NumVars()
	for round := 0; round < s.opts.WalkRounds && len(ws.unsat) > 0 && flips < budget; round++ {
		for len(ws.unsat) > 0 && flips < budget {
			ref := ws.heaviestUnsat()
			v := s.pickFlipVariable(ws, ref)
			s.flipWalkVar(ws, v)
			flips++
			if flips%1000 == 0 {
				s.bumpWalkWeights(ws)
			}
		}
	}
	if len(ws.unsat) == 0 {
		for v := Var(0); int(v) < s.vars.NumVars(); v++ {
			sign := ws.assign[v]
			s.phases.SetBest(v, sign)
			s.phases.SetTarget(v, sign)
		}
	}
	s.stats.WalkFlips += int64(flips)
}

func (s *Solver) newWalkState() *walkState {
	clauses := s.db.Clauses()
	if len(clauses) == 0 {
		return nil
	}
	ws := &walkState{
		assign:  make([]int8, s.vars.NumVars()),
		weights: make(map[ClauseRef]float64, len(clauses)),
		unsat:   make(map[ClauseRef]bool),
		lits:    make(map[ClauseRef][]Lit, len(clauses)),
		byLit:   make(map[Lit][]ClauseRef),
	}
	for v := 0; v < s.vars.NumVars(); v++ {
		ws.assign[v] = s.phases.saved[v]
		if ws.assign[v] == 0 {
			ws.assign[v] = 1
		}
	}
	for _, ref := range clauses {
		lits := s.db.Arena.Lits(ref)
		ws.lits[ref] = lits
		ws.weights[ref] = 1
		for _, l := range lits {
			ws.byLit[l] = append(ws.byLit[l], ref)
		}
		if !ws.clauseSatisfied(ref) {
			ws.unsat[ref] = true
		}
	}
	return ws
}

// heaviestUnsat returns an unsatisfied clause with the highest current
// weight, breaking ties by map iteration order.
func (ws *walkState) heaviestUnsat() ClauseRef {
	var best ClauseRef
	bestWeight := -1.0
	for ref := range ws.unsat {
		if w := ws.weights[ref]; w > bestWeight {
			bestWeight = w
			best = ref
		}
	}
	return best
}

func (ws *walkState) litTrue(l Lit) bool {
	v := int(l.Var())
	sign := ws.assign[v]
	if l.Signed() {
		return sign < 0
	}
	return sign > 0
}

func (ws *walkState) clauseSatisfied(ref ClauseRef) bool {
	for _, l := range ws.lits[ref] {
		if ws.litTrue(l) {
			return true
		}
	}
	return false
}

// pickFlipVariable chooses a variable from the given unsatisfied clause,
// preferring the one with the smallest break count (PAWS greedy choice).
func (s *Solver) pickFlipVariable(ws *walkState, ref ClauseRef) Var {
	best := ws.lits[ref][0].Var()
	bestScore := -1.0
	for _, l := range ws.lits[ref] {
		v := l.Var()
		score := cbAt(s.breakCount(ws, v))
		if score > bestScore {
			bestScore = score
			best = v
		}
	}
	return best
}

// breakCount counts how many currently-satisfied clauses whose only true
// literal is v's currently-true literal would become unsatisfied if v were
// flipped.
func (s *Solver) breakCount(ws *walkState, v Var) int {
	cur := MkLit(v, ws.assign[v] < 0)
	broken := 0
	for _, ref := range ws.byLit[cur] {
		if ws.unsat[ref] {
			continue
		}
		onlyThis := true
		for _, l := range ws.lits[ref] {
			if l != cur && ws.litTrue(l) {
				onlyThis = false
				break
			}
		}
		if onlyThis {
			broken++
		}
	}
	return broken
}

func (s *Solver) flipWalkVar(ws *walkState, v Var) {
	ws.assign[v] = -ws.assign[v]
	for _, sign := range []bool{false, true} {
		l := MkLit(v, sign)
		for _, ref := range ws.byLit[l] {
			sat := ws.clauseSatisfied(ref)
			if sat {
				delete(ws.unsat, ref)
			} else {
				ws.unsat[ref] = true
			}
		}
	}
}

// bumpWalkWeights implements PAWS additive weighting: every currently
// unsatisfied clause's weight grows so heaviestUnsat starts preferring it
// over clauses that keep getting satisfied incidentally by other flips.
func (s *Solver) bumpWalkWeights(ws *walkState) {
	for ref := range ws.unsat {
		ws.weights[ref]++
	}
}
