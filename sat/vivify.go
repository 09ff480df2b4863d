package sat

// vivify.go implements clause vivification (§4.8): for a candidate clause
// C, assume the negation of each of C's literals one at a time (as
// decisions) and propagate. A literal already false when its turn comes is
// dropped; if propagation reaches a conflict, C shrinks to the assumed
// prefix, and if it forces a later literal of C true, C shrinks to the
// prefix plus that literal, since the dropped tail is implied anyway.

// vivify runs one pass of vivification over irredundant clauses (when
// VivifyIrr is set) and over redundant clauses of the tiers VivifyTier1,
// VivifyTier2 and VivifyTier3 select, shrinking or strengthening each
// candidate (§4.8).
func (s *Solver) vivify() {
	if s.opts.Vivify == 0 {
		return
	}
	candidates := s.vivifyCandidates()
	shrunk := 0
	for _, ref := range candidates {
		if s.db.Arena.Garbage(ref) {
			continue
		}
		if s.vivifyOne(ref) {
			shrunk++
		}
	}
	s.stats.VivifiedClauses += int64(shrunk)
	s.log.Debugf(newLogrusFields("shrunk", shrunk), "vivification shrunk %d clauses", shrunk)
}

func (s *Solver) vivifyCandidates() []ClauseRef {
	var out []ClauseRef
	for _, ref := range s.db.Clauses() {
		if !s.db.Arena.Redundant(ref) {
			if s.opts.VivifyIrr != 0 {
				out = append(out, ref)
			}
			continue
		}
		_, tier := s.computeGlue(s.db.Arena.Lits(ref))
		switch tier {
		case 0:
			if s.opts.VivifyTier1 != 0 {
				out = append(out, ref)
			}
		case 1:
			if s.opts.VivifyTier2 != 0 {
				out = append(out, ref)
			}
		default:
			if s.opts.VivifyTier3 != 0 {
				out = append(out, ref)
			}
		}
	}
	return out
}

// vivifyOne assumes ¬l for each literal l of the clause in turn; if
// propagation reaches a conflict or forces one of the clause's own
// literals true before the whole prefix is assumed, the clause shrinks to
// that prefix (plus the forced literal in the second case); literals
// already false when reached are dropped (§4.8).
func (s *Solver) vivifyOne(ref ClauseRef) bool {
	lits := s.db.Arena.Lits(ref)
	if len(lits) <= 2 {
		return false
	}
	if s.opts.VivifySort != 0 {
		sortByLevelDesc(s, lits)
	}
	start := s.trail.Level()
	kept := make([]Lit, 0, len(lits))
	shrunk := false
	for _, l := range lits {
		if s.vars.True(l) {
			// clause already satisfied by a fixed literal; nothing to learn
			s.backtrackTo(start)
			return false
		}
		if s.vars.False(l) {
			shrunk = true
			continue // this literal is redundant, drop it
		}
		kept = append(kept, l)
		assumption := l.Not()
		s.trail.PushLevel(assumption)
		s.assign(assumption, decisionReason)
		conflict := s.propagate(flavorProbing)
		if conflict.Ok() {
			shrunk = true
			break
		}
		impliedSibling := LitNull
		for _, other := range lits {
			if other != l && s.vars.True(other) {
				impliedSibling = other
				break
			}
		}
		if impliedSibling != LitNull {
			kept = append(kept, impliedSibling)
			shrunk = true
			break
		}
	}
	s.backtrackTo(start)
	if !shrunk || len(kept) >= len(lits) {
		return false
	}
	if len(kept) == 0 {
		kept = lits[:1]
	}
	s.proof.AddClause(kept)
	s.proof.DeleteClause(lits)
	s.db.MarkGarbage(ref)
	s.addClauseDuringInprocessing(kept)
	return true
}
