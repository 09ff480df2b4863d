package sat

import "sort"

// reasonAntecedents returns the "other" literals of v's reason clause —
// i.e. the literals that were false when v's reason forced it true. For a
// binary reason that is the single stored Lit; for a long reason it is
// every literal but lits[0] (§3 "the invariant on every large reason c is
// c->lits[0] is the propagated literal").
func (s *Solver) reasonAntecedents(v Var) []Lit {
	r := s.vars.data[v].Reason
	switch r.Kind {
	case ReasonBinary:
		return []Lit{r.Lit}
	case ReasonLong:
		n := s.db.Arena.Size(r.Ref)
		out := make([]Lit, 0, n-1)
		for i := 1; i < n; i++ {
			out = append(out, s.db.Arena.Lit(r.Ref, i))
		}
		return out
	default:
		return nil
	}
}

func (s *Solver) levelOf(l Lit) int { return int(s.vars.data[l.Var()].Level) }

// analyzeResult is everything the conflict-analysis pipeline produces for
// the search loop to act on (§4.3).
type analyzeResult struct {
	unsat     bool
	learnt    []Lit
	assertLit Lit
	glue      int
	newLevel  int
}

// analyzeConflict runs the full §4.3 pipeline: 1UIP derivation, optional
// minimization and shrinking, glue/tier computation, and jump-level
// selection (chronological vs non-chronological). It does not itself
// mutate the trail or database — emit()/backtrack() in search.go do that
// with the result.
func (s *Solver) analyzeConflict(conflict Conflict) analyzeResult {
	conflictLevel := 0
	for _, l := range conflict.Lits(s.db) {
		if lv := s.levelOf(l); lv > conflictLevel {
			conflictLevel = lv
		}
	}
	if conflictLevel == 0 {
		return analyzeResult{unsat: true}
	}

	seen := make(map[Var]bool)
	var learnt []Lit
	counter := 0

	addLit := func(q Lit) {
		v := q.Var()
		if seen[v] || s.levelOf(q) == 0 {
			return
		}
		seen[v] = true
		s.bumpAnalyzed(v)
		if s.levelOf(q) >= conflictLevel {
			counter++
		} else {
			learnt = append(learnt, q)
		}
	}

	for _, q := range conflict.Lits(s.db) {
		addLit(q)
	}

	trailIdx := s.trail.Len() - 1
	var p Lit = LitNull
	for {
		for trailIdx >= 0 && !seen[s.trail.At(trailIdx).Var()] {
			trailIdx--
		}
		p = s.trail.At(trailIdx)
		trailIdx--
		seen[p.Var()] = false
		counter--
		if counter == 0 {
			break
		}
		for _, q := range s.reasonAntecedents(p.Var()) {
			addLit(q)
		}
	}

	assertLit := p.Not()
	full := append([]Lit{assertLit}, learnt...)

	if s.opts.Minimize != 0 {
		full = s.minimizeClause(full, conflictLevel)
	}
	if s.opts.Shrink != 0 {
		full = s.shrinkClause(full)
	}

	glue, tiers := s.computeGlue(full)
	_ = tiers

	jump := 0
	for _, l := range full[1:] {
		if lv := s.levelOf(l); lv > jump {
			jump = lv
		}
	}
	back := conflictLevel - 1
	newLevel := jump
	if s.opts.Chrono != 0 && back-jump > s.opts.ChronoLevels {
		newLevel = back
	}

	// Order so full[1] sits at the highest remaining decision level,
	// giving the second watch the best chance of staying unassigned the
	// longest (§4.3 step 6).
	if len(full) > 1 {
		best := 1
		for i := 2; i < len(full); i++ {
			if s.levelOf(full[i]) > s.levelOf(full[best]) {
				best = i
			}
		}
		full[1], full[best] = full[best], full[1]
	}

	return analyzeResult{
		learnt:    full,
		assertLit: assertLit,
		glue:      glue,
		newLevel:  newLevel,
	}
}

// bumpAnalyzed applies the VMTF/EVSIDS bump for one literal seen during
// resolution (§4.3 step 9, the per-literal half of "Bump").
func (s *Solver) bumpAnalyzed(v Var) {
	if s.opts.Bump == 0 {
		return
	}
	if s.mode == modeStable {
		s.evsids.Bump(v)
	} else {
		s.vmtf.MoveToFront(v)
	}
}

// finishBump runs the EVSIDS decay, once per conflict in stable mode only,
// and the reason-side bump extension (§4.3 step 9), which bumps the reason
// antecedents of the learned literals, at most BumpReasonsLimit of them in
// total.
func (s *Solver) finishBump(learnt []Lit) {
	if s.mode == modeStable {
		s.evsids.Decay()
	}
	if s.opts.Bump == 0 || s.opts.BumpReasons == 0 {
		return
	}
	limit := s.opts.BumpReasonsLimit
	bumped := 0
	for _, l := range learnt {
		if bumped >= limit {
			break
		}
		for _, q := range s.reasonAntecedents(l.Var()) {
			if bumped >= limit {
				break
			}
			s.bumpAnalyzed(q.Var())
			bumped++
		}
	}
}

// minimizeClause drops a learnt literal L when every non-root antecedent
// of L already sits in the clause or is itself removable, recursing up to
// MinimizeDepth (§4.3 step 3). Literals proven non-removable are marked
// poisoned on VarData so repeated checks short-circuit.
func (s *Solver) minimizeClause(full []Lit, conflictLevel int) []Lit {
	inClause := make(map[Var]bool, len(full))
	for _, l := range full {
		inClause[l.Var()] = true
	}
	out := full[:1]
	for _, l := range full[1:] {
		if s.isRemovable(l, inClause, 0) {
			s.stats.Minimized++
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *Solver) isRemovable(l Lit, inClause map[Var]bool, depth int) bool {
	v := l.Var()
	d := &s.vars.data[v]
	if d.Reason.Kind == ReasonDecision || d.Reason.Kind == ReasonUnit {
		return false
	}
	if d.Poisoned {
		return false
	}
	if d.Removable {
		return true
	}
	if depth >= s.opts.MinimizeDepth {
		return false
	}
	for _, q := range s.reasonAntecedents(v) {
		qv := q.Var()
		if inClause[qv] || s.levelOf(q) == 0 {
			continue
		}
		if !s.isRemovable(q, inClause, depth+1) {
			d.Poisoned = true
			return false
		}
	}
	d.Removable = true
	return true
}

// shrinkClause looks for literal blocks sharing a decision level that
// collapse to a single unique implication point on that level, replacing
// the block by its UIP when doing so shortens the clause (§4.3 step 4).
// This is a bounded, best-effort version: within each level's block it
// checks whether one literal is a (binary-reason) ancestor of every other
// literal in the block, and if so keeps only that ancestor.
func (s *Solver) shrinkClause(full []Lit) []Lit {
	if len(full) <= 2 {
		return full
	}
	byLevel := make(map[int][]int) // level -> indices into full[1:], offset by 1
	for i := 1; i < len(full); i++ {
		lv := s.levelOf(full[i])
		byLevel[lv] = append(byLevel[lv], i)
	}
	drop := make(map[int]bool)
	for _, idxs := range byLevel {
		if len(idxs) < 2 {
			continue
		}
		for _, ci := range idxs {
			candidate := full[ci].Var()
			coversAll := true
			for _, oi := range idxs {
				if oi == ci {
					continue
				}
				if !s.isAncestorVia(candidate, full[oi].Var()) {
					coversAll = false
					break
				}
			}
			if coversAll {
				for _, oi := range idxs {
					if oi != ci {
						drop[oi] = true
					}
				}
				s.stats.Shrunk += int64(len(idxs) - 1)
				break
			}
		}
	}
	if len(drop) == 0 {
		return full
	}
	out := full[:0:0]
	for i, l := range full {
		if !drop[i] {
			out = append(out, l)
		}
	}
	return out
}

// isAncestorVia checks (shallowly, one reason hop) whether descendant was
// assigned by a binary reason whose other literal is on ancestor — a
// bounded approximation of full implication-graph ancestry, adequate for
// collapsing small same-level blocks without the cost of a full
// reachability search. Long-clause reasons are not followed.
func (s *Solver) isAncestorVia(ancestor, descendant Var) bool {
	if ancestor == descendant {
		return true
	}
	if s.vars.data[descendant].Reason.Kind != ReasonBinary {
		return false
	}
	for _, q := range s.reasonAntecedents(descendant) {
		if q.Var() == ancestor {
			return true
		}
	}
	return false
}

// computeGlue returns the number of distinct decision levels among the
// clause's literals (§4.3 step 5) and classifies the tier.
func (s *Solver) computeGlue(lits []Lit) (glue int, tier int) {
	levels := make(map[int]bool, len(lits))
	for _, l := range lits {
		levels[s.levelOf(l)] = true
	}
	glue = len(levels)
	switch {
	case glue <= s.tier1:
		tier = 0
	case glue <= s.tier2:
		tier = 1
	default:
		tier = 2
	}
	return glue, tier
}

// eagerSubsume checks whether the just-learned clause subsumes any of the
// last K learned clause refs (learnt ⊆ ref, tested via a per-ref literal
// set), marking subsumed ones garbage (§4.3 step 10).
func (s *Solver) eagerSubsume(learntRef ClauseRef, learnt []Lit) {
	k := s.opts.EagerSubsume
	if k <= 0 {
		return
	}
	start := len(s.recentLearned) - k
	if start < 0 {
		start = 0
	}
	for _, ref := range s.recentLearned[start:] {
		if ref == learntRef || s.db.Arena.Garbage(ref) {
			continue
		}
		if s.db.Arena.Size(ref) <= len(learnt) {
			continue
		}
		set := make(map[Lit]bool, s.db.Arena.Size(ref))
		for i := 0; i < s.db.Arena.Size(ref); i++ {
			set[s.db.Arena.Lit(ref, i)] = true
		}
		subset := true
		for _, l := range learnt {
			if !set[l] {
				subset = false
				break
			}
		}
		if subset {
			s.db.MarkGarbage(ref)
			s.proof.DeleteClause(s.db.Arena.Lits(ref))
			s.stats.SubsumedClauses++
		}
	}
	s.recentLearned = append(s.recentLearned, learntRef)
	if len(s.recentLearned) > 4*k {
		s.recentLearned = append([]ClauseRef(nil), s.recentLearned[len(s.recentLearned)-k:]...)
	}
}

// sortByLevelDesc is used by vivification and a few inprocessing passes
// that want to assume literals in a deterministic, level-aware order.
func sortByLevelDesc(s *Solver, lits []Lit) {
	sort.SliceStable(lits, func(i, j int) bool { return s.levelOf(lits[i]) > s.levelOf(lits[j]) })
}
