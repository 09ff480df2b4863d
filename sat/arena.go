package sat

// ClauseRef is an offset into the Arena's word slice where a clause header
// begins. Binary clauses never receive a ClauseRef: they live only as a
// pair of Watch entries (§3 Clause).
type ClauseRef int32

// clauseHeaderWords is the fixed-size header every arena clause carries
// ahead of its literal tail: allocSize, size, glue, flags, searched.
const clauseHeaderWords = 5

const (
	clauseFlagRedundant uint32 = 1 << iota
	clauseFlagGarbage
	clauseFlagReason
	clauseFlagSwept
	clauseFlagVivify
	clauseFlagSubsume
	clauseFlagQuotient
	clauseFlagShrunken
)

// Arena is the contiguous word store for non-binary clauses (§4.1).
type Arena struct {
	words []int32
}

func NewArena() *Arena {
	return &Arena{words: make([]int32, 0, 1<<16)}
}

// InArena reports whether ref addresses a live clause within the arena
// (§4.1 invariant iv — trivial here since ClauseRef is itself the offset,
// but kept as the documented predicate every other pass calls).
func (a *Arena) InArena(ref ClauseRef) bool {
	return ref >= 0 && int(ref) < len(a.words)
}

func (a *Arena) allocSize(ref ClauseRef) int { return int(a.words[ref]) }
func (a *Arena) setAllocSize(ref ClauseRef, n int) { a.words[ref] = int32(n) }

func (a *Arena) Size(ref ClauseRef) int { return int(a.words[ref+1]) }
func (a *Arena) setSize(ref ClauseRef, n int) { a.words[ref+1] = int32(n) }

func (a *Arena) Glue(ref ClauseRef) int { return int(a.words[ref+2]) }
func (a *Arena) SetGlue(ref ClauseRef, g int) { a.words[ref+2] = int32(g) }

func (a *Arena) flags(ref ClauseRef) uint32 { return uint32(a.words[ref+3]) }
func (a *Arena) setFlags(ref ClauseRef, f uint32) { a.words[ref+3] = int32(f) }

func (a *Arena) hasFlag(ref ClauseRef, f uint32) bool { return a.flags(ref)&f != 0 }
func (a *Arena) setFlag(ref ClauseRef, f uint32)       { a.setFlags(ref, a.flags(ref)|f) }
func (a *Arena) clearFlag(ref ClauseRef, f uint32)     { a.setFlags(ref, a.flags(ref)&^f) }

func (a *Arena) Redundant(ref ClauseRef) bool { return a.hasFlag(ref, clauseFlagRedundant) }
func (a *Arena) Garbage(ref ClauseRef) bool   { return a.hasFlag(ref, clauseFlagGarbage) }
func (a *Arena) Reason(ref ClauseRef) bool    { return a.hasFlag(ref, clauseFlagReason) }
func (a *Arena) Shrunken(ref ClauseRef) bool  { return a.hasFlag(ref, clauseFlagShrunken) }

func (a *Arena) MarkReason(ref ClauseRef, on bool) {
	if on {
		a.setFlag(ref, clauseFlagReason)
	} else {
		a.clearFlag(ref, clauseFlagReason)
	}
}

// Searched is the "next probe" hint used by the propagator to resume
// scanning a clause's tail instead of restarting from literal 2 every time.
func (a *Arena) Searched(ref ClauseRef) int      { return int(a.words[ref+4]) }
func (a *Arena) SetSearched(ref ClauseRef, i int) { a.words[ref+4] = int32(i) }

// used is a decaying recency counter in [0, maxUsed], packed into the top
// bits of the flags word.
const maxUsed = 255
const usedShift = 8

func (a *Arena) Used(ref ClauseRef) int { return int(uint32(a.flags(ref)) >> usedShift) }
func (a *Arena) SetUsed(ref ClauseRef, u int) {
	if u < 0 {
		u = 0
	}
	if u > maxUsed {
		u = maxUsed
	}
	f := a.flags(ref) & ((1 << usedShift) - 1)
	a.setFlags(ref, f|(uint32(u)<<usedShift))
}
func (a *Arena) BumpUsed(ref ClauseRef) { a.SetUsed(ref, a.Used(ref)+1) }

func (a *Arena) Lit(ref ClauseRef, i int) Lit {
	return Lit(a.words[int(ref)+clauseHeaderWords+i])
}
func (a *Arena) SetLit(ref ClauseRef, i int, l Lit) {
	a.words[int(ref)+clauseHeaderWords+i] = int32(l)
}

// Lits copies out the logical (possibly shrunk) literal tail of a clause.
func (a *Arena) Lits(ref ClauseRef) []Lit {
	n := a.Size(ref)
	out := make([]Lit, n)
	for i := 0; i < n; i++ {
		out[i] = a.Lit(ref, i)
	}
	return out
}

func (a *Arena) alloc(lits []Lit, redundant bool, glue int) ClauseRef {
	ref := ClauseRef(len(a.words))
	a.words = append(a.words, int32(len(lits)), int32(len(lits)), int32(glue), 0, 2)
	for _, l := range lits {
		a.words = append(a.words, int32(l))
	}
	if redundant {
		a.setFlag(ref, clauseFlagRedundant)
	}
	return ref
}

// NewIrredundantClause adds an original (non-learned) clause of size >= 3
// to the arena (§4.1). Its first two literals become the watched pair.
func (a *Arena) NewIrredundantClause(lits []Lit) ClauseRef {
	if len(lits) < 3 {
		panic("sat: NewIrredundantClause requires size >= 3 (§4.1 invariant i)")
	}
	return a.alloc(lits, false, 0)
}

// NewRedundantClause adds a learned clause of size >= 3 with the given
// glue value (§4.3 step 6).
func (a *Arena) NewRedundantClause(lits []Lit, glue int) ClauseRef {
	if len(lits) < 3 {
		panic("sat: NewRedundantClause requires size >= 3 (§4.1 invariant i)")
	}
	return a.alloc(lits, true, glue)
}

// MarkGarbage flips the garbage flag; it never frees memory eagerly
// (§4.1), the bytes are reclaimed only by the next GarbageCollect.
func (a *Arena) MarkGarbage(ref ClauseRef) {
	a.setFlag(ref, clauseFlagGarbage)
}

// Shrink overwrites the clause's tail starting at newSize with the
// InvalidLit sentinel and records the new logical size, preserving
// invariant iii so the original allocation can still be skipped during GC.
func (a *Arena) Shrink(ref ClauseRef, newSize int) {
	old := a.Size(ref)
	if newSize >= old {
		return
	}
	for i := newSize; i < old; i++ {
		a.SetLit(ref, i, InvalidLit)
	}
	a.setSize(ref, newSize)
	a.setFlag(ref, clauseFlagShrunken)
}

// walk iterates every clause header in the arena, live or garbage, calling
// fn with its ref; fn must not mutate arena layout.
func (a *Arena) walk(fn func(ref ClauseRef)) {
	for ref := ClauseRef(0); int(ref) < len(a.words); {
		fn(ref)
		ref += ClauseRef(clauseHeaderWords + a.allocSize(ref))
	}
}

// GarbageCollect compacts the arena, dropping clauses marked garbage
// (unless they are protected reasons), and returns a map from old refs to
// new refs so callers can fix up watches/reasons (§4.1). Dense mode vs.
// sparse mode GC share this routine; the caller decides, via protect,
// which garbage clauses must survive because they are in-use reasons.
func (a *Arena) GarbageCollect(protect func(ref ClauseRef) bool) map[ClauseRef]ClauseRef {
	relocate := make(map[ClauseRef]ClauseRef)
	next := make([]int32, 0, len(a.words))
	a.walk(func(ref ClauseRef) {
		if a.Garbage(ref) && !(protect != nil && protect(ref)) {
			return
		}
		newRef := ClauseRef(len(next))
		relocate[ref] = newRef
		alloc := a.allocSize(ref)
		next = append(next, a.words[ref:int(ref)+clauseHeaderWords+alloc]...)
	})
	a.words = next
	return relocate
}
