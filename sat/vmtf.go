package sat

// vmtfLink is one node of the doubly-linked VMTF queue (§3 VMTF queue).
type vmtfLink struct {
	prev, next Var
	stamp      uint64
	linked     bool
}

// VMTF is the Variable Move-To-Front decision queue used in focused mode,
// adapted from the teacher's activity-map-based heuristics (heuristics.go)
// into the index-linked structure the spec requires: a doubly-linked list
// over variables ordered by recency, with a search cursor that remembers
// the most recently seen unassigned variable so Next rarely has
// to walk far.
type VMTF struct {
	links   []vmtfLink
	head    Var
	tail    Var
	cursor  Var
	stamp   uint64
	none    bool
}

const vmtfNone Var = -1

func NewVMTF(n int) *VMTF {
	q := &VMTF{links: make([]vmtfLink, n), head: vmtfNone, tail: vmtfNone, cursor: vmtfNone}
	for v := 0; v < n; v++ {
		q.pushBack(Var(v))
	}
	q.cursor = q.tail
	return q
}

func (q *VMTF) Grow(n int) {
	for len(q.links) < n {
		v := Var(len(q.links))
		q.links = append(q.links, vmtfLink{})
		q.pushBack(v)
		if q.cursor == vmtfNone {
			q.cursor = v
		}
	}
}

func (q *VMTF) pushBack(v Var) {
	q.links[v] = vmtfLink{prev: q.tail, next: vmtfNone, linked: true}
	if q.tail != vmtfNone {
		l := q.links[q.tail]
		l.next = v
		q.links[q.tail] = l
	} else {
		q.head = v
	}
	q.tail = v
}

func (q *VMTF) unlink(v Var) {
	l := q.links[v]
	if l.prev != vmtfNone {
		p := q.links[l.prev]
		p.next = l.next
		q.links[l.prev] = p
	} else {
		q.head = l.next
	}
	if l.next != vmtfNone {
		n := q.links[l.next]
		n.prev = l.prev
		q.links[l.next] = n
	} else {
		q.tail = l.prev
	}
	l.linked = false
	q.links[v] = l
}

// MoveToFront bumps v to the front of the queue with a fresh, strictly
// increasing stamp, rescaling the whole list when stamps would saturate.
func (q *VMTF) MoveToFront(v Var) {
	if q.links[v].linked {
		q.unlink(v)
	}
	q.stamp++
	if q.stamp == 0 {
		q.restamp()
	}
	q.pushBack(v)
	q.links[v].stamp = q.stamp
	q.cursor = q.tail
}

// restamp re-walks the list front-to-back assigning dense increasing
// stamps, used when the monotone counter would otherwise overflow.
func (q *VMTF) restamp() {
	s := uint64(0)
	for v := q.head; v != vmtfNone; v = q.links[v].next {
		s++
		l := q.links[v]
		l.stamp = s
		q.links[v] = l
	}
	q.stamp = s
}

// Next advances the search cursor backward (towards the head, i.e. the
// least-recently-bumped variables) until it finds an unassigned, active
// variable, and returns it. Returns vmtfNone if none remain.
func (q *VMTF) Next(vs *VarState) Var {
	for v := q.cursor; v != vmtfNone; v = q.links[v].prev {
		if !vs.Assigned(MkLit(v, false)) && vs.Active(v) {
			q.cursor = v
			return v
		}
	}
	return vmtfNone
}

// ResetCursor restores the cursor to the queue's most-recent end, done on
// entry into focused mode (§4.4 Mode switch).
func (q *VMTF) ResetCursor() { q.cursor = q.tail }
