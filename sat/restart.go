package sat

// restart.go implements the §4.4 restart and mode-switch machinery: a
// focused-mode glue-moving-average trigger, and a stable-mode
// Luby-reluctant-doubling schedule, plus the periodic rephase rotation and
// the one-shot warmup pass.

// resetLubyStable reinitializes the reluctant-doubling Luby sequence state
// used to space stable-mode restarts (§4.4 "Restart ... stable mode uses a
// Luby/reluctant-doubling schedule").
func (s *Solver) resetLubyStable() {
	s.lubyU, s.lubyV = 1, 1
	s.nextRestart = s.conflicts + s.lubyV
}

// nextLuby advances the reluctant-doubling sequence and returns the next
// interval, following Knuth's classic two-counter algorithm (no table, no
// recursion, as original_source's restart.c does it).
func (s *Solver) nextLuby() int64 {
	if s.lubyU&(-s.lubyU) == s.lubyV {
		s.lubyU++
		s.lubyV = 1
	} else {
		s.lubyV *= 2
	}
	return s.lubyV
}

// shouldRestart reports whether the current mode's restart trigger has
// fired. Focused mode restarts when the fast glue average runs well above
// the slow average (EMA-based, as kissat's restart.c does); stable mode
// restarts on the Luby schedule.
func (s *Solver) shouldRestart() bool {
	if s.trail.Level() == 0 {
		return false
	}
	if s.mode == modeStable {
		return s.conflicts >= s.nextRestart
	}
	return s.conflicts > 50 && s.fastGlue > 1.25*s.slowGlue
}

// doRestart backtracks to level 0 and, in stable mode, reschedules the next
// Luby interval.
func (s *Solver) doRestart() {
	s.backtrackTo(0)
	s.stats.Restarts++
	if s.mode == modeStable {
		s.nextRestart = s.conflicts + s.nextLuby()
	}
}

// updateGlueAverages folds a freshly learned clause's glue into the fast
// and slow exponential moving averages that drive the focused-mode restart
// trigger (§4.3 step 5 / §4.4 restart scheduling).
func (s *Solver) updateGlueAverages(glue int) {
	g := float64(glue)
	const fastAlpha, slowAlpha = 1.0 / 32.0, 1.0 / 4096.0
	if s.stats.Conflicts <= 1 {
		s.fastGlue, s.slowGlue = g, g
		return
	}
	s.fastGlue += fastAlpha * (g - s.fastGlue)
	s.slowGlue += slowAlpha * (g - s.slowGlue)
}

// maybeSwitchMode toggles between focused and stable search once the
// scheduled conflict budget for the current mode elapses (§4.4 "Mode
// switch"). Entering stable mode rebuilds the EVSIDS heap from the active
// variable set; entering focused mode resets the VMTF cursor.
func (s *Solver) maybeSwitchMode() {
	if s.conflicts < s.lastModeSwitch+s.modeBudget {
		return
	}
	s.lastModeSwitch = s.conflicts
	s.modeBudget = int64(s.opts.ModeInt)
	if s.mode == modeFocused {
		s.mode = modeStable
		s.evsids.Rebuild(s.vars)
		s.resetLubyStable()
	} else {
		s.mode = modeFocused
		s.vmtf.ResetCursor()
	}
	s.stats.ModeSwitches++
}

// maybeRephase rotates the saved phases through best, inverted, unchanged
// and inverted-best (§4.4 "Rephase"); the interval between rephases grows
// by 1000 conflicts each time.
func (s *Solver) maybeRephase() {
	if s.opts.Rephase == 0 {
		return
	}
	limit := (s.stats.Rephases + 1) * 1000
	if s.conflicts < s.lastRephase+limit {
		return
	}
	s.lastRephase = s.conflicts
	s.stats.Rephases++
	switch s.stats.Rephases % 4 {
	case 0:
		s.phases.AdoptBestAsSaved()
	case 1:
		s.phases.Invert()
	case 2:
		// keep saved as-is (a "walk" rotation slot reserved for local search)
	case 3:
		s.phases.AdoptBestAsSaved()
		s.phases.Invert()
	}
}

// trackBestPhase records the current trail as a new target/best phase
// whenever it exceeds the previous high-water mark by trail height (§3
// Phase memory: target/best are "best phase seen this/ever run, by trail
// height").
func (s *Solver) trackBestPhase() {
	n := s.trail.Len()
	if n > s.bestTrailHeight {
		s.bestTrailHeight = n
		for i := 0; i < n; i++ {
			l := s.trail.At(i)
			v := l.Var()
			sign := int8(1)
			if l.Signed() {
				sign = -1
			}
			s.phases.SetTarget(v, sign)
			s.phases.SetBest(v, sign)
		}
	}
}

// warmup runs one pass before search begins, solely to seed the
// target/best phase arrays (§4.4 "Warmup"): it decides every unassigned
// variable along its saved phase and propagates, without learning. A
// conflict under its own decisions ends the pass early; only a conflict at
// the starting level is returned. Everything it assigns is undone
// afterward.
func (s *Solver) warmup() Conflict {
	if s.opts.Warmup == 0 {
		return noConflict()
	}
	start := s.trail.Level()
	for {
		c := s.propagate(flavorSearch)
		if c.Ok() {
			if s.trail.Level() == start {
				s.backtrackTo(start)
				return c
			}
			break
		}
		v, found := s.pickUnassignedForWarmup()
		if !found {
			break
		}
		negated := s.phases.saved[v] < 0
		lit := MkLit(v, negated)
		s.trail.PushLevel(lit)
		s.assign(lit, decisionReason)
	}
	s.trackBestPhase()
	s.backtrackTo(start)
	return noConflict()
}

func (s *Solver) pickUnassignedForWarmup() (Var, bool) {
	for v := Var(0); int(v) < s.vars.NumVars(); v++ {
		if s.vars.Active(v) && !s.vars.Assigned(MkLit(v, false)) {
			return v, true
		}
	}
	return 0, false
}
