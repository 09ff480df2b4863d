package sat

// denseMode tracks whether the database is currently in the full
// occurrence-list representation inprocessing passes need, or the sparse
// two-watched-literal representation search needs (§5 Mutation
// discipline).
type denseMode struct {
	active      bool
	occurrences [][]ClauseRef // indexed by Lit: every long clause containing that literal
	binSaved    [][2]Lit      // binary clauses set aside while watches are flushed
}

// enterDenseMode flushes all large-clause watches and builds a full
// occurrence list per literal so inprocessing passes can enumerate a
// variable's clauses directly, instead of paying for blocking-literal
// bookkeeping meant for search (§5: "enter_dense_mode flushes all
// large-clause watches and optionally saves irredundant binaries off to
// the side").
func (s *Solver) enterDenseMode() {
	if s.dense.active {
		return
	}
	occ := make([][]ClauseRef, len(s.db.Watches.lists))
	for _, ref := range s.db.Clauses() {
		for i := 0; i < s.db.Arena.Size(ref); i++ {
			l := s.db.Arena.Lit(ref, i)
			occ[l] = append(occ[l], ref)
		}
	}
	s.dense = denseMode{active: true, occurrences: occ, binSaved: s.db.Binaries()}
	s.db.Watches.ClearAllLong()
	s.db.Watches.connected = true
}

// resumeSparseMode rebuilds sparse watch lists from the live clause list
// and propagates any units learned while dense (§5: "resume_sparse_mode
// rebuilds watch lists and propagates any learned units against the full
// clause database").
func (s *Solver) resumeSparseMode() Conflict {
	if !s.dense.active {
		return noConflict()
	}
	for _, ref := range s.db.Clauses() {
		if s.db.Arena.Size(ref) >= 2 {
			l0, l1 := s.db.Arena.Lit(ref, 0), s.db.Arena.Lit(ref, 1)
			s.db.Watches.AddLong(l0, l1, ref)
			s.db.Watches.AddLong(l1, l0, ref)
		}
	}
	s.dense = denseMode{}
	s.db.Watches.connected = false
	s.trail.SetPropagated(0)
	return s.propagate(flavorSearch)
}

// occurrencesOf returns the dense-mode occurrence list for l; callers must
// only use this between enterDenseMode/resumeSparseMode.
func (s *Solver) occurrencesOf(l Lit) []ClauseRef {
	if !s.dense.active {
		return nil
	}
	return s.dense.occurrences[l]
}
