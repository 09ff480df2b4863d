package sat

// Solve drives the CDCL loop described in §4.4: propagate, and on conflict
// analyze/learn/backtrack; on no conflict, run periodic actions and then
// decide. It returns once the formula is proven satisfiable, proven
// unsatisfiable, or AddClause already proved it inconsistent at level 0.
func (s *Solver) Solve() Status {
	if s.state == stateInconsistent {
		return Unsatisfiable
	}
	if s.state == stateSatisfied {
		return Satisfiable
	}
	s.state = stateSolving

	if c := s.propagate(flavorSearch); c.Ok() {
		s.state = stateUnsatisfiable
		return Unsatisfiable
	}

	if c := s.warmup(); c.Ok() {
		s.state = stateUnsatisfiable
		return Unsatisfiable
	}

	for {
		conflict := s.propagate(flavorSearch)
		if conflict.Ok() {
			s.conflicts++
			s.stats.Conflicts++
			if s.trail.Level() == 0 {
				s.state = stateUnsatisfiable
				return Unsatisfiable
			}
			s.handleConflict(conflict)
			if s.state == stateUnsatisfiable {
				return Unsatisfiable
			}
			continue
		}

		s.trackBestPhase()

		if !s.hasUnassignedActive() {
			s.state = stateSatisfied
			return Satisfiable
		}

		s.maybeReduce()
		s.maybeRephase()
		s.maybeSwitchMode()
		if s.shouldRestart() {
			s.doRestart()
			continue
		}
		s.maybeInprocess()

		if !s.decide() {
			s.state = stateSatisfied
			return Satisfiable
		}
	}
}

func (s *Solver) hasUnassignedActive() bool {
	for v := Var(0); int(v) < s.vars.NumVars(); v++ {
		if s.vars.Active(v) && !s.vars.Assigned(MkLit(v, false)) {
			return true
		}
	}
	return false
}

// handleConflict runs analysis, emits the learned clause, backjumps and
// applies the post-conflict bump/decay bookkeeping (§4.3, §4.4).
func (s *Solver) handleConflict(conflict Conflict) {
	result := s.analyzeConflict(conflict)
	if result.unsat {
		s.state = stateUnsatisfiable
		return
	}
	s.updateGlueAverages(result.glue)
	s.backtrackTo(result.newLevel)
	s.emitLearnedClause(result)
	s.finishBump(result.learnt)
}

// emitLearnedClause installs the analyzed clause into the database
// (dispatching by size exactly as AddClause does for original clauses, but
// flagged redundant) and assigns its asserting literal.
func (s *Solver) emitLearnedClause(result analyzeResult) {
	lits := result.learnt
	s.proof.AddClause(lits)
	switch len(lits) {
	case 1:
		s.assign(lits[0], unitReason)
		s.stats.LearnedUnits++
	case 2:
		s.db.AddBinary(lits[0], lits[1])
		s.assign(lits[0], binaryReason(lits[1]))
		s.stats.LearnedBinary++
	default:
		ref := s.db.AddLong(lits, true, result.glue)
		s.db.Arena.MarkReason(ref, true)
		s.assign(lits[0], longReason(ref))
		s.stats.LearnedLong++
		s.eagerSubsume(ref, lits)
	}
}
