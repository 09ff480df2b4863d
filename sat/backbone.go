package sat

// backbone.go implements backbone probing (§4.7): a literal l is a backbone
// literal if the formula forces l true in every model; probing assumes ¬l
// at decision level 1 and checks whether propagation alone refutes it.

// probeBackbones tries every literal of every currently active, unassigned
// variable as a backbone candidate, asserting any that prove forced and
// refreshing the candidate flag so later rounds skip settled variables
// (§4.7).
func (s *Solver) probeBackbones() {
	if s.opts.PreprocessBackbone == 0 {
		return
	}
	rounds := s.opts.ProbeRounds
	if rounds <= 0 {
		rounds = 1
	}
	found := 0
	for round := 0; round < rounds; round++ {
		progressed := false
		for v := Var(0); int(v) < s.vars.NumVars(); v++ {
			if !s.vars.Active(v) || s.vars.Assigned(MkLit(v, false)) {
				continue
			}
			if s.vars.HasFlag(v, FlagBackboneCandidate) {
				continue
			}
			lit := MkLit(v, false)
			if s.probeForced(lit) {
				s.assertRootUnit(lit)
				found++
				progressed = true
				continue
			}
			if s.probeForced(lit.Not()) {
				s.assertRootUnit(lit.Not())
				found++
				progressed = true
				continue
			}
			s.vars.SetFlag(v, FlagBackboneCandidate)
		}
		if !progressed {
			break
		}
	}
	s.stats.BackboneUnits += int64(found)
	s.log.Debugf(newLogrusFields("found", found), "backbone probing forced %d units", found)
}

// probeForced assumes lit.Not() at a fresh decision level and propagates;
// lit is a backbone literal precisely when that assumption conflicts.
func (s *Solver) probeForced(lit Lit) bool {
	if s.vars.Assigned(lit) {
		return s.vars.True(lit)
	}
	assumption := lit.Not()
	s.trail.PushLevel(assumption)
	s.assign(assumption, decisionReason)
	conflict := s.propagate(flavorProbing)
	forced := conflict.Ok()
	s.backtrackTo(0)
	return forced
}
