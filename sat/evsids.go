package sat

// EVSIDS is a binary max-heap over variable scores used as the decision
// order in stable mode (§3 EVSIDS heap), adapted from the teacher's
// map-based VSIDSHeuristic (heuristics.go) into an array heap keyed by
// Var with an explicit position table for O(log V) bump/update.
type EVSIDS struct {
	scores   []float64
	heap     []Var
	pos      []int // pos[v] = index of v in heap, -1 if not present
	inc      float64
	decay    float64
	rescaleAt float64
}

const evsidsRescaleLimit = 1e100

func NewEVSIDS(n int) *EVSIDS {
	e := &EVSIDS{
		scores: make([]float64, n),
		heap:   make([]Var, 0, n),
		pos:    make([]int, n),
		inc:    1.0,
		decay:  0.95,
	}
	for v := range e.pos {
		e.pos[v] = -1
	}
	return e
}

func (e *EVSIDS) Grow(n int) {
	for len(e.scores) < n {
		e.scores = append(e.scores, 0)
		e.pos = append(e.pos, -1)
	}
}

func (e *EVSIDS) less(i, j Var) bool { return e.scores[i] > e.scores[j] }

func (e *EVSIDS) swap(i, j int) {
	e.heap[i], e.heap[j] = e.heap[j], e.heap[i]
	e.pos[e.heap[i]] = i
	e.pos[e.heap[j]] = j
}

func (e *EVSIDS) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !e.less(e.heap[i], e.heap[parent]) {
			return
		}
		e.swap(i, parent)
		i = parent
	}
}

func (e *EVSIDS) siftDown(i int) {
	n := len(e.heap)
	for {
		l, r, smallest := 2*i+1, 2*i+2, i
		if l < n && e.less(e.heap[l], e.heap[smallest]) {
			smallest = l
		}
		if r < n && e.less(e.heap[r], e.heap[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		e.swap(i, smallest)
		i = smallest
	}
}

// Push inserts v into the heap if it is not already present.
func (e *EVSIDS) Push(v Var) {
	if e.pos[v] >= 0 {
		return
	}
	e.heap = append(e.heap, v)
	idx := len(e.heap) - 1
	e.pos[v] = idx
	e.siftUp(idx)
}

// Remove takes v out of the heap (called when it is assigned).
func (e *EVSIDS) Remove(v Var) {
	idx := e.pos[v]
	if idx < 0 {
		return
	}
	last := len(e.heap) - 1
	e.swap(idx, last)
	e.heap = e.heap[:last]
	e.pos[v] = -1
	if idx < len(e.heap) {
		e.siftDown(idx)
		e.siftUp(idx)
	}
}

// update repositions v after its score changed.
func (e *EVSIDS) update(v Var) {
	idx := e.pos[v]
	if idx < 0 {
		return
	}
	e.siftUp(idx)
	e.siftDown(idx)
}

// Top returns the highest-scoring present variable without removing it.
func (e *EVSIDS) Top() (Var, bool) {
	if len(e.heap) == 0 {
		return 0, false
	}
	return e.heap[0], true
}

// Bump increases v's score by the current increment and repositions it,
// rescaling every score when the increment would overflow (§4.3 step 9).
func (e *EVSIDS) Bump(v Var) {
	e.scores[v] += e.inc
	e.update(v)
	if e.scores[v] > evsidsRescaleLimit {
		e.rescale()
	}
}

func (e *EVSIDS) rescale() {
	for i := range e.scores {
		e.scores[i] /= evsidsRescaleLimit
	}
	e.inc /= evsidsRescaleLimit
}

// Decay grows the increment multiplicatively; conventionally called once
// per conflict so that older bumps count for relatively less over time.
func (e *EVSIDS) Decay() {
	e.inc /= e.decay
}

func (e *EVSIDS) Rebuild(vs *VarState) {
	e.heap = e.heap[:0]
	for v := range e.pos {
		e.pos[v] = -1
	}
	for v := 0; v < vs.NumVars(); v++ {
		if vs.Active(Var(v)) && !vs.Assigned(MkLit(Var(v), false)) {
			e.Push(Var(v))
		}
	}
}
