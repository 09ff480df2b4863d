package sat

// WatchKind distinguishes a binary watch (the other literal carried
// directly) from a large-clause watch (a blocking literal plus an arena
// reference), per §3 Watch.
type WatchKind uint8

const (
	WatchBinary WatchKind = iota
	WatchLong
)

// Watch is a single entry in a per-literal watch list.
type Watch struct {
	Kind    WatchKind
	Blocker Lit       // binary: the other literal of the pair. long: a blocking literal of the clause.
	Ref     ClauseRef // valid iff Kind == WatchLong
}

// Watches holds, for every internal literal, the compact sequence of
// clauses/binary-partners currently monitoring it for propagation (§4.2).
//
// Two representations exist: the normal "blocking-hint" mode used during
// search, and a "connected" mode that inprocessing passes switch into
// (§3 Watch, "connected mode"). In connected mode the lists keep only
// binary watches; the per-literal clause-reference lists used to enumerate
// large clauses are kept by dense.go, not here.
type Watches struct {
	lists     [][]Watch
	connected bool
}

func NewWatches(numLits int) *Watches {
	return &Watches{lists: make([][]Watch, numLits)}
}

func (w *Watches) Grow(numLits int) {
	for len(w.lists) < numLits {
		w.lists = append(w.lists, nil)
	}
}

func (w *Watches) List(l Lit) []Watch { return w.lists[l] }

func (w *Watches) Add(l Lit, watch Watch) {
	w.lists[l] = append(w.lists[l], watch)
}

func (w *Watches) AddBinary(l, other Lit) {
	w.Add(l, Watch{Kind: WatchBinary, Blocker: other})
}

func (w *Watches) AddLong(l Lit, blocker Lit, ref ClauseRef) {
	w.Add(l, Watch{Kind: WatchLong, Blocker: blocker, Ref: ref})
}

// Remove deletes the first watch on l matching pred, swapping the tail
// element into its place (order among watches is not semantically
// meaningful once a list's scan starts over from index 0).
func (w *Watches) Remove(l Lit, pred func(Watch) bool) {
	list := w.lists[l]
	for i, wt := range list {
		if pred(wt) {
			last := len(list) - 1
			list[i] = list[last]
			w.lists[l] = list[:last]
			return
		}
	}
}

func (w *Watches) RemoveBinary(l, other Lit) {
	w.Remove(l, func(wt Watch) bool { return wt.Kind == WatchBinary && wt.Blocker == other })
}

func (w *Watches) RemoveLong(l Lit, ref ClauseRef) {
	w.Remove(l, func(wt Watch) bool { return wt.Kind == WatchLong && wt.Ref == ref })
}

func (w *Watches) Clear(l Lit) { w.lists[l] = nil }

// ClearAllLong drops every WatchLong entry from every list, entering
// "connected" mode is done on top of this by the dense-mode machinery in
// dense.go, which rebuilds plain clause-reference occurrence lists instead.
func (w *Watches) ClearAllLong() {
	for l := range w.lists {
		list := w.lists[l]
		kept := list[:0]
		for _, wt := range list {
			if wt.Kind == WatchBinary {
				kept = append(kept, wt)
			}
		}
		w.lists[l] = kept
	}
}

// Relocate rewrites every WatchLong's Ref using the relocation map produced
// by Arena.GarbageCollect, dropping watches whose clause did not survive.
func (w *Watches) Relocate(relocate map[ClauseRef]ClauseRef) {
	for l := range w.lists {
		list := w.lists[l]
		kept := list[:0]
		for _, wt := range list {
			if wt.Kind == WatchBinary {
				kept = append(kept, wt)
				continue
			}
			if nr, ok := relocate[wt.Ref]; ok {
				wt.Ref = nr
				kept = append(kept, wt)
			}
		}
		w.lists[l] = kept
	}
}
