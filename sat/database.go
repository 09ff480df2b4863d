package sat

// Database bundles the arena and watch lists together with the
// bookkeeping every pass needs to enumerate "all clauses" without walking
// the raw watch lists: the list of live arena clause refs, and counts of
// binary/irredundant/redundant clauses. Binary clauses are never placed in
// the arena (§3 Clause); they are discovered by scanning watch lists.
type Database struct {
	Arena   *Arena
	Watches *Watches

	clauses []ClauseRef // every live (non-garbage-known-at-insert-time) arena clause ref, irredundant and redundant
	binaries int        // number of binary clauses currently present

	NumIrredundant int
	NumRedundant   int
}

func NewDatabase(numLits int) *Database {
	return &Database{
		Arena:   NewArena(),
		Watches: NewWatches(numLits),
	}
}

func (d *Database) Grow(numLits int) { d.Watches.Grow(numLits) }

// AddBinary installs a binary clause {a, b} as a symmetric pair of watches
// (§4.1 NewBinaryClause — "binary clauses bypass the arena").
func (d *Database) AddBinary(a, b Lit) {
	d.Watches.AddBinary(a, b)
	d.Watches.AddBinary(b, a)
	d.binaries++
	d.NumIrredundant++
}

func (d *Database) RemoveBinary(a, b Lit) {
	d.Watches.RemoveBinary(a, b)
	d.Watches.RemoveBinary(b, a)
	d.binaries--
	d.NumIrredundant--
}

// AddLong installs a clause of size >= 3 into the arena, watching its
// first two literals with each other as the initial blocker (§4.1, §4.2).
func (d *Database) AddLong(lits []Lit, redundant bool, glue int) ClauseRef {
	var ref ClauseRef
	if redundant {
		ref = d.Arena.NewRedundantClause(lits, glue)
		d.NumRedundant++
	} else {
		ref = d.Arena.NewIrredundantClause(lits)
		d.NumIrredundant++
	}
	d.clauses = append(d.clauses, ref)
	d.watchLong(ref)
	return ref
}

func (d *Database) watchLong(ref ClauseRef) {
	l0, l1 := d.Arena.Lit(ref, 0), d.Arena.Lit(ref, 1)
	d.Watches.AddLong(l0, l1, ref)
	d.Watches.AddLong(l1, l0, ref)
}

// unwatch removes ref's two current watches (used before rewriting the
// watched pair, e.g. after shrinking a clause during vivification).
func (d *Database) unwatch(ref ClauseRef, l0, l1 Lit) {
	d.Watches.RemoveLong(l0, ref)
	d.Watches.RemoveLong(l1, ref)
}

// MarkGarbage flags ref as garbage and removes its watches immediately
// (the bytes themselves are reclaimed only on the next GarbageCollect,
// §4.1).
func (d *Database) MarkGarbage(ref ClauseRef) {
	if d.Arena.Garbage(ref) {
		return
	}
	if d.Arena.Redundant(ref) {
		d.NumRedundant--
	} else {
		d.NumIrredundant--
	}
	l0, l1 := d.Arena.Lit(ref, 0), d.Arena.Lit(ref, 1)
	d.unwatch(ref, l0, l1)
	d.Arena.MarkGarbage(ref)
}

// Clauses returns every currently-live arena clause ref. Garbage-flagged
// but not-yet-collected refs are filtered out.
func (d *Database) Clauses() []ClauseRef {
	live := d.clauses[:0]
	for _, ref := range d.clauses {
		if !d.Arena.Garbage(ref) {
			live = append(live, ref)
		}
	}
	d.clauses = live
	out := make([]ClauseRef, len(live))
	copy(out, live)
	return out
}

// Binaries enumerates every binary clause exactly once as {a <= b}.
func (d *Database) Binaries() [][2]Lit {
	out := make([][2]Lit, 0, d.binaries)
	for l := range d.Watches.lists {
		lit := Lit(l)
		for _, w := range d.Watches.lists[l] {
			if w.Kind == WatchBinary && lit <= w.Blocker {
				out = append(out, [2]Lit{lit, w.Blocker})
			}
		}
	}
	return out
}

// Relocate fixes up the clause-ref list and watch lists after a garbage
// collection compacted the arena.
func (d *Database) Relocate(relocate map[ClauseRef]ClauseRef) {
	next := d.clauses[:0]
	for _, ref := range d.clauses {
		if nr, ok := relocate[ref]; ok {
			next = append(next, nr)
		}
	}
	d.clauses = append([]ClauseRef(nil), next...)
	d.Watches.Relocate(relocate)
}
