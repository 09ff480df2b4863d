package sat

import "sort"

// reduceConflictsLimit returns how many conflicts after the last reduction
// the next one runs: ReduceHigh*100 times the number of the coming
// reduction, so the interval grows linearly (§4.4 Periodic actions).
func (s *Solver) reduceConflictsLimit() int64 {
	round := s.stats.Reductions + 1
	return round * int64(s.opts.ReduceHigh) * 100
}

// maybeReduce deletes a fraction of redundant clauses when the reduce
// schedule is due, preferring high glue and low "used" counters;
// reason-protected clauses are never touched (§4.4).
func (s *Solver) maybeReduce() {
	if s.opts.Reduce == 0 {
		return
	}
	if s.conflicts < s.lastReduce+s.reduceConflictsLimit() {
		return
	}
	s.lastReduce = s.conflicts
	s.reduce()
}

func (s *Solver) reduce() {
	type cand struct {
		ref  ClauseRef
		glue int
		used int
	}
	var cands []cand
	for _, ref := range s.db.Clauses() {
		if !s.db.Arena.Redundant(ref) || s.db.Arena.Reason(ref) {
			continue
		}
		if s.db.Arena.Glue(ref) <= s.opts.ReduceLow {
			continue // core/glue clauses are never deleted
		}
		cands = append(cands, cand{ref, s.db.Arena.Glue(ref), s.db.Arena.Used(ref)})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].glue != cands[j].glue {
			return cands[i].glue > cands[j].glue
		}
		return cands[i].used < cands[j].used
	})
	n := len(cands) / 2
	for i := 0; i < n; i++ {
		ref := cands[i].ref
		s.proof.DeleteClause(s.db.Arena.Lits(ref))
		s.db.MarkGarbage(ref)
	}
	relocate := s.db.Arena.GarbageCollect(func(ClauseRef) bool { return false })
	s.db.Relocate(relocate)
	s.stats.Reductions++
	s.log.Debugf(newLogrusFields("deleted", n, "kept", len(cands)-n), "reduce: deleted %d redundant clauses", n)
}
