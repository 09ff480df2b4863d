package sat

// decide picks the next decision variable from whichever order the
// current mode uses (VMTF in focused mode, the EVSIDS heap in stable
// mode), consults phase memory for its polarity, and pushes a new trail
// level (§3 VMTF queue / EVSIDS heap / Phase memory, §4.4).
func (s *Solver) decide() (ok bool) {
	var v Var
	if s.mode == modeStable {
		found := false
		for {
			cand, present := s.evsids.Top()
			if !present {
				return false
			}
			if s.vars.Assigned(MkLit(cand, false)) || !s.vars.Active(cand) {
				s.evsids.Remove(cand)
				continue
			}
			v, found = cand, true
			break
		}
		if !found {
			return false
		}
	} else {
		cand := s.vmtf.Next(s.vars)
		if cand == vmtfNone {
			return false
		}
		v = cand
	}
	negated := s.phases.Decide(v)
	lit := MkLit(v, negated)
	s.trail.PushLevel(lit)
	s.assign(lit, decisionReason)
	s.stats.Decisions++
	return true
}

// backtrackTo unwinds the trail and VarState to level, re-admitting freed
// variables to whichever decision order the active mode uses.
func (s *Solver) backtrackTo(level int) {
	removed := s.trail.Backtrack(level)
	for i := len(removed) - 1; i >= 0; i-- {
		v := removed[i].Var()
		s.vars.unassign(v)
		s.vars.data[v] = VarData{}
		if s.mode == modeStable {
			s.evsids.Push(v)
		}
	}
	if s.mode == modeFocused {
		s.vmtf.ResetCursor()
	}
}
