package sat

import "sync"

// scratchPool reuses the int/Lit scratch buffers conflict analysis and the
// inprocessing passes allocate every call (analyzed stacks, resolvent
// literal buffers, occurrence lists), adapted from the teacher's SATPool
// (pool.go) which pooled the equivalent string-keyed structures. Sizes are
// pre-allocated the same way the teacher did, just retyped to []Lit/[]Var.
type scratchPool struct {
	litSlices   *sync.Pool
	varSlices   *sync.Pool
	refSlices   *sync.Pool
	intSlices   *sync.Pool
}

func newScratchPool() *scratchPool {
	return &scratchPool{
		litSlices: &sync.Pool{New: func() interface{} { return make([]Lit, 0, 16) }},
		varSlices: &sync.Pool{New: func() interface{} { return make([]Var, 0, 16) }},
		refSlices: &sync.Pool{New: func() interface{} { return make([]ClauseRef, 0, 64) }},
		intSlices: &sync.Pool{New: func() interface{} { return make([]int, 0, 64) }},
	}
}

func (p *scratchPool) getLits() []Lit   { return p.litSlices.Get().([]Lit)[:0] }
func (p *scratchPool) putLits(s []Lit)  { p.litSlices.Put(s) } //nolint:staticcheck // pooled, not escaping

func (p *scratchPool) getVars() []Var  { return p.varSlices.Get().([]Var)[:0] }
func (p *scratchPool) putVars(s []Var) { p.varSlices.Put(s) }

func (p *scratchPool) getRefs() []ClauseRef  { return p.refSlices.Get().([]ClauseRef)[:0] }
func (p *scratchPool) putRefs(s []ClauseRef) { p.refSlices.Put(s) }

func (p *scratchPool) getInts() []int  { return p.intSlices.Get().([]int)[:0] }
func (p *scratchPool) putInts(s []int) { p.intSlices.Put(s) }
