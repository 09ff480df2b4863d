package sat

// subsume.go implements forward subsumption (§4.5): a clause C is deleted
// when some other clause D (the "subsumer") with D ⊆ C already lives in the
// database. Uses the dense-mode occurrence lists built in dense.go.

// forwardSubsume walks every clause (irredundant and redundant) of size up
// to SubsumeClsLim and deletes it if a strictly smaller clause subsumes it,
// as found by subsumedByOther.
func (s *Solver) forwardSubsume() {
	if s.opts.Forward == 0 {
		return
	}
	s.enterDenseMode()
	removed := 0
	for _, ref := range s.db.Clauses() {
		if s.db.Arena.Garbage(ref) || s.db.Arena.Size(ref) > s.opts.SubsumeClsLim {
			continue
		}
		if s.subsumedByOther(ref) {
			s.proof.DeleteClause(s.db.Arena.Lits(ref))
			s.db.MarkGarbage(ref)
			removed++
		}
	}
	if removed > 0 {
		relocate := s.db.Arena.GarbageCollect(func(ClauseRef) bool { return false })
		s.db.Relocate(relocate)
	}
	s.stats.SubsumedClauses += int64(removed)
	s.log.Debugf(newLogrusFields("removed", removed), "forward subsumption removed %d clauses", removed)
}

// subsumedByOther reports whether a strictly smaller clause D with D ⊆
// ref's literal set occurs on ref's rarest literal, scanning only that
// literal's occurrence list (at most SubsumeOccLim entries) to keep the
// scan cheap (§4.5); subsumers that lack the rarest literal are not found.
func (s *Solver) subsumedByOther(ref ClauseRef) bool {
	lits := s.db.Arena.Lits(ref)
	rarest := lits[0]
	for _, l := range lits[1:] {
		if len(s.occurrencesOf(l)) < len(s.occurrencesOf(rarest)) {
			rarest = l
		}
	}
	set := make(map[Lit]bool, len(lits))
	for _, l := range lits {
		set[l] = true
	}
	count := 0
	for _, other := range s.occurrencesOf(rarest) {
		if other == ref || s.db.Arena.Garbage(other) {
			continue
		}
		count++
		if count > s.opts.SubsumeOccLim {
			break
		}
		if s.db.Arena.Size(other) >= s.db.Arena.Size(ref) {
			continue
		}
		if clauseSubset(s.db.Arena.Lits(other), set) {
			return true
		}
	}
	return false
}

func clauseSubset(small []Lit, big map[Lit]bool) bool {
	for _, l := range small {
		if !big[l] {
			return false
		}
	}
	return true
}
