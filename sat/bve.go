package sat

// bve.go implements bounded variable elimination (§4.5): a variable v is
// eliminated by resolving every clause containing v against every clause
// containing ¬v, replacing the whole set by the (bounded) set of
// resolvents, and pushing the eliminated clauses onto the extension stack
// so Model() can reconstruct v's value afterward.

// eliminateVariables runs one bounded-elimination round over every active,
// unassigned variable in variable index order (§4.5); candidates are not
// sorted by occurrence count or any other score.
func (s *Solver) eliminateVariables() {
	if s.opts.Eliminate == 0 {
		return
	}
	s.enterDenseMode()
	eliminated := 0
	for v := Var(0); int(v) < s.vars.NumVars(); v++ {
		if !s.vars.Active(v) || s.vars.Assigned(MkLit(v, false)) {
			continue
		}
		pos, neg := MkLit(v, false), MkLit(v, true)
		if len(s.occurrencesOf(pos)) > s.opts.EliminateOccLim || len(s.occurrencesOf(neg)) > s.opts.EliminateOccLim {
			continue
		}
		if s.tryEliminate(v) {
			eliminated++
			s.stats.EliminatedVars++
		}
	}
	s.log.Debugf(newLogrusFields("eliminated", eliminated), "bve eliminated %d variables", eliminated)
}

// tryEliminate resolves every pair of clauses on v; if the total resolvent
// count does not exceed the occurrence count it replaces (grow bound, §4.5
// "bounded" elimination), it commits the elimination and returns true.
func (s *Solver) tryEliminate(v Var) bool {
	pos, neg := MkLit(v, false), MkLit(v, true)
	posClauses := append([]ClauseRef(nil), s.occurrencesOf(pos)...)
	negClauses := append([]ClauseRef(nil), s.occurrencesOf(neg)...)
	before := len(posClauses) + len(negClauses)

	var resolvents [][]Lit
	bound := before + s.opts.EliminateBound
	for _, pr := range posClauses {
		if s.db.Arena.Garbage(pr) {
			continue
		}
		for _, nr := range negClauses {
			if s.db.Arena.Garbage(nr) {
				continue
			}
			res, tautological := resolveOn(v, s.db.Arena.Lits(pr), s.db.Arena.Lits(nr))
			if tautological {
				continue
			}
			resolvents = append(resolvents, res)
			if len(resolvents) > bound {
				return false
			}
		}
	}

	// commit: push every pos-side clause onto the extension stack as the
	// witness (satisfying v=true covers it), remove all old clauses, add
	// resolvents that aren't themselves tautologies/too large.
	for _, pr := range posClauses {
		lits := s.db.Arena.Lits(pr)
		rest := removeLit(lits, pos)
		s.extension.PushWeakenedClause(pos, rest)
		s.db.MarkGarbage(pr)
	}
	for _, nr := range negClauses {
		s.db.MarkGarbage(nr)
	}
	s.vars.ClearFlag(v, FlagActive)
	s.vars.SetFlag(v, FlagEliminated)

	for _, res := range resolvents {
		s.addClauseDuringInprocessing(res)
	}
	return true
}

// resolveOn resolves clauses a (containing v positively) and b (containing
// v negatively) on v, returning the merged literal set and whether the
// result is a tautology (some other variable appears with both polarities).
func resolveOn(v Var, a, b []Lit) ([]Lit, bool) {
	set := make(map[Lit]bool, len(a)+len(b))
	for _, l := range a {
		if l.Var() != v {
			set[l] = true
		}
	}
	for _, l := range b {
		if l.Var() != v {
			if set[l.Not()] {
				return nil, true
			}
			set[l] = true
		}
	}
	out := make([]Lit, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	return out, false
}

func removeLit(lits []Lit, l Lit) []Lit {
	out := make([]Lit, 0, len(lits)-1)
	for _, x := range lits {
		if x != l {
			out = append(out, x)
		}
	}
	return out
}

// addClauseDuringInprocessing installs a newly derived irredundant clause,
// dispatching by size the same way AddClause does, and keeps the dense
// occurrence table consistent so subsequent eliminations see it.
func (s *Solver) addClauseDuringInprocessing(lits []Lit) {
	norm, tautological := s.normalizeClause(lits)
	if tautological {
		return
	}
	switch len(norm) {
	case 0:
		s.makeInconsistent()
	case 1:
		s.assertRootUnit(norm[0])
	case 2:
		s.db.AddBinary(norm[0], norm[1])
		s.proof.AddClause(norm)
		if s.dense.active {
			s.dense.binSaved = append(s.dense.binSaved, [2]Lit{norm[0], norm[1]})
		}
	default:
		ref := s.db.AddLong(norm, false, 0)
		s.proof.AddClause(norm)
		if s.dense.active {
			for _, l := range norm {
				s.dense.occurrences[l] = append(s.dense.occurrences[l], ref)
			}
		}
	}
}

// fastBVE runs a cheaper single-round elimination restricted to variables
// carrying FlagEliminateCandidate, used between full rounds (§4.5
// "fast-BVE"). No code in this package sets that flag, so the pass
// eliminates nothing.
func (s *Solver) fastBVE() {
	if s.opts.FastEl == 0 {
		return
	}
	s.enterDenseMode()
	for v := Var(0); int(v) < s.vars.NumVars(); v++ {
		if !s.vars.HasFlag(v, FlagEliminateCandidate) {
			continue
		}
		s.vars.ClearFlag(v, FlagEliminateCandidate)
		if !s.vars.Active(v) || s.vars.Assigned(MkLit(v, false)) {
			continue
		}
		pos, neg := MkLit(v, false), MkLit(v, true)
		if len(s.occurrencesOf(pos)) > s.opts.FastElOccs || len(s.occurrencesOf(neg)) > s.opts.FastElOccs {
			continue
		}
		s.tryEliminate(v)
	}
}
