package sat

// factor.go implements structural factoring, also called bounded variable
// addition (§4.11): when many clauses share a common sub-pair of
// literals (a, b), a fresh variable f <-> (a ∧ b) is introduced and every
// clause containing both a and b is rewritten to use f instead, shrinking
// the database when the pair recurs often enough to pay for the extra
// variable and its two defining binaries.

// factor runs up to FactorRounds rounds; each round scans clauses of size
// up to FactorSize for the most frequently recurring literal pair,
// examining at most FactorHops*FactorCandRounds+1 clauses, and factors that
// pair when it occurs in at least 3 clauses (§4.11).
func (s *Solver) factor() {
	if s.opts.Factor == 0 {
		return
	}
	s.enterDenseMode()
	rounds := s.opts.FactorRounds
	if rounds <= 0 {
		rounds = 1
	}
	factored := 0
	for round := 0; round < rounds; round++ {
		pair, refs, ok := s.mostCommonPair()
		if !ok || len(refs) < 3 {
			break
		}
		s.applyFactor(pair, refs)
		factored++
	}
	s.stats.FactoredVars += int64(factored)
	s.log.Debugf(newLogrusFields("introduced", factored), "factoring introduced %d gate variables", factored)
}

// mostCommonPair finds the literal pair (a, b) appearing together in the
// most clauses of size <= FactorSize, among clauses sharing a.
func (s *Solver) mostCommonPair() (pair [2]Lit, refs []ClauseRef, ok bool) {
	type key = [2]Lit
	counts := make(map[key][]ClauseRef)
	examined := 0
	for _, ref := range s.db.Clauses() {
		if s.db.Arena.Garbage(ref) || s.db.Arena.Size(ref) > s.opts.FactorSize {
			continue
		}
		lits := s.db.Arena.Lits(ref)
		for i := 0; i < len(lits); i++ {
			for j := i + 1; j < len(lits); j++ {
				a, b := lits[i], lits[j]
				if b < a {
					a, b = b, a
				}
				k := key{a, b}
				counts[k] = append(counts[k], ref)
			}
		}
		examined++
		if examined > s.opts.FactorHops*s.opts.FactorCandRounds {
			break
		}
	}
	best := 0
	var bestKey key
	for k, rs := range counts {
		if len(rs) > best {
			best = len(rs)
			bestKey = k
		}
	}
	if best == 0 {
		return pair, nil, false
	}
	return bestKey, counts[bestKey], true
}

// applyFactor introduces a fresh variable f with the two defining binaries
// ¬f∨a, ¬f∨b, f∨¬a∨¬b (f <-> a∧b), then rewrites every clause in refs to
// replace its occurrences of {a,b} by f.
func (s *Solver) applyFactor(pair [2]Lit, refs []ClauseRef) {
	a, b := pair[0], pair[1]
	newVar := Var(s.vars.NumVars())
	s.Grow(int(newVar) + 1)
	f := MkLit(newVar, false)

	s.db.AddBinary(f.Not(), a)
	s.db.AddBinary(f.Not(), b)
	s.addClauseDuringInprocessing([]Lit{f, a.Not(), b.Not()})

	for _, ref := range refs {
		if s.db.Arena.Garbage(ref) {
			continue
		}
		lits := s.db.Arena.Lits(ref)
		hasA, hasB := false, false
		rest := make([]Lit, 0, len(lits))
		for _, l := range lits {
			switch l {
			case a:
				hasA = true
			case b:
				hasB = true
			default:
				rest = append(rest, l)
			}
		}
		if !hasA || !hasB {
			continue
		}
		rest = append(rest, f)
		s.proof.DeleteClause(lits)
		s.db.MarkGarbage(ref)
		s.addClauseDuringInprocessing(rest)
	}
}
