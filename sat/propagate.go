package sat

// propagateFlavor selects which of the three propagation shapes described
// in §4.2 a call to propagate runs: they share the same watch-scanning
// skeleton and differ only in bookkeeping and conflict behavior.
type propagateFlavor uint8

const (
	flavorSearch propagateFlavor = iota
	flavorProbing
	flavorBeyond
)

// Conflict identifies the clause that falsified under the current
// assignment: either a real arena ref, or the synthetic binary conflict
// (§4.2 "the stack-allocated field conflict").
type Conflict struct {
	IsBinary bool
	Binary   [2]Lit
	Ref      ClauseRef
	valid    bool
}

func noConflict() Conflict { return Conflict{} }

func (c Conflict) Ok() bool { return c.valid }

func binaryConflict(a, b Lit) Conflict {
	return Conflict{IsBinary: true, Binary: [2]Lit{a, b}, valid: true}
}

func longConflict(ref ClauseRef) Conflict {
	return Conflict{Ref: ref, valid: true}
}

// Lits returns the conflict clause's literals.
func (c Conflict) Lits(db *Database) []Lit {
	if c.IsBinary {
		return []Lit{c.Binary[0], c.Binary[1]}
	}
	return db.Arena.Lits(c.Ref)
}

// propagate runs BCP from trail.Propagated() to the end of the trail,
// implementing the watch-list skeleton of §4.2. assignForced, through
// assign, performs the actual variable assignment (value + VarData
// bookkeeping); assign is shared with decide() and the search loop.
func (s *Solver) propagate(flavor propagateFlavor) Conflict {
	db := s.db
	vs := s.vars
	for s.trail.Propagated() < s.trail.Len() {
		pos := s.trail.Propagated()
		lit := s.trail.At(pos)
		s.trail.SetPropagated(pos + 1)
		neg := lit.Not()

		list := db.Watches.List(neg)
		i, j, n := 0, 0, len(list)
		var conflict Conflict
		for ; i < n; i++ {
			w := list[i]
			switch w.Kind {
			case WatchBinary:
				s.accountTick(flavor, 1)
				other := w.Blocker
				val := vs.Value(other)
				if val > 0 {
					list[j] = w
					j++
					continue
				}
				if val < 0 {
					conflict = binaryConflict(neg, other)
					goto drain
				}
				s.assignForced(other, binaryReason(neg), flavor)
				list[j] = w
				j++
			case WatchLong:
				s.accountTick(flavor, 2)
				if vs.Value(w.Blocker) > 0 {
					list[j] = w
					j++
					continue
				}
				ref := w.Ref
				l0, l1 := db.Arena.Lit(ref, 0), db.Arena.Lit(ref, 1)
				other := l0
				if l0 == neg {
					other = l1
				}
				if vs.Value(other) > 0 {
					list[j] = Watch{Kind: WatchLong, Blocker: other, Ref: ref}
					j++
					continue
				}
				size := db.Arena.Size(ref)
				replaced := false
				start := db.Arena.Searched(ref)
				if start < 2 || start >= size {
					start = 2
				}
				for k := 0; k < size-2; k++ {
					idx := 2 + (start-2+k)%(size-2)
					cand := db.Arena.Lit(ref, idx)
					if vs.Value(cand) < 0 {
						continue
					}
					// move cand into the watched slot that held neg
					watchedIdx := 0
					if l0 != neg {
						watchedIdx = 1
					}
					db.Arena.SetLit(ref, watchedIdx, cand)
					db.Arena.SetLit(ref, idx, neg)
					db.Arena.SetSearched(ref, idx+1)
					db.Watches.AddLong(cand, other, ref)
					replaced = true
					break
				}
				if replaced {
					continue // dropped from neg's list (not re-added to list[j])
				}
				if vs.Value(other) < 0 {
					conflict = longConflict(ref)
					goto drain
				}
				if l0 == neg {
					db.Arena.SetLit(ref, 0, other)
					db.Arena.SetLit(ref, 1, neg)
				}
				s.assignForced(other, longReason(ref), flavor)
				list[j] = w
				j++
			}
		}
	drain:
		for ; i < n; i++ {
			list[j] = list[i]
			j++
		}
		db.Watches.lists[neg] = list[:j]
		if conflict.Ok() {
			if flavor != flavorBeyond {
				return conflict
			}
			s.recordBeyondConflict(conflict)
		}
	}
	return noConflict()
}

func (s *Solver) accountTick(flavor propagateFlavor, n int64) {
	switch flavor {
	case flavorSearch:
		s.stats.SearchTicks += n
	case flavorProbing:
		s.stats.ProbingTicks += n
	}
}

// assignForced assigns lit as implied by reason at the current decision
// level, common to all three propagation flavors (§4.2).
func (s *Solver) assignForced(lit Lit, reason Reason, flavor propagateFlavor) {
	s.assign(lit, reason)
	if flavor == flavorSearch {
		s.stats.SearchPropagations++
	}
	s.stats.Propagations++
}

// assign installs lit on the trail at the current decision level with the
// given reason, updating VarState.
func (s *Solver) assign(lit Lit, reason Reason) {
	v := lit.Var()
	s.vars.assign(lit)
	s.vars.data[v] = VarData{
		Level:    int32(s.trail.Level()),
		Reason:   reason,
		TrailPos: int32(s.trail.Len()),
	}
	s.trail.Assign(lit)
	s.phases.Save(v, lit.Signed())
	if s.evsidsActive() {
		s.evsids.Remove(v)
	}
}

// recordBeyondConflict stashes a conflict encountered during the
// warmup/"beyond" flavor so the caller can inspect how many were hit
// without stopping propagation early (§4.2 "beyond" variant).
func (s *Solver) recordBeyondConflict(c Conflict) {
	s.beyondConflicts = append(s.beyondConflicts, c)
}
