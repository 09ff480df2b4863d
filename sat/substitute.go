package sat

// substitute.go implements equivalence substitution (§4.6): the binary
// clause set forms an implication graph (¬a -> b for every binary {a, b});
// literals in the same strongly connected component are logically
// equivalent, so all but one representative per component can be
// eliminated by rewriting every clause.

// binaryImplicationGraph builds, for every literal l, the set of literals
// directly implied by l (i.e. every other literal of a binary clause
// containing ¬l).
func (s *Solver) binaryImplicationGraph() [][]Lit {
	n := len(s.db.Watches.lists)
	graph := make([][]Lit, n)
	for _, pair := range s.db.Binaries() {
		a, b := pair[0], pair[1]
		graph[a.Not()] = append(graph[a.Not()], b)
		graph[b.Not()] = append(graph[b.Not()], a)
	}
	return graph
}

// tarjanSCC computes strongly connected components of the binary
// implication graph using the standard iterative-stack Tarjan algorithm,
// returning each literal's component id.
func tarjanSCC(graph [][]Lit) []int {
	n := len(graph)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for i := range index {
		index[i] = -1
		comp[i] = -1
	}
	var stack []int
	nextIndex := 0
	nextComp := 0

	type frame struct {
		v    int
		iter int
	}
	for start := 0; start < n; start++ {
		if index[start] != -1 {
			continue
		}
		var work []frame
		work = append(work, frame{start, 0})
		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.v
			if top.iter == 0 {
				index[v] = nextIndex
				low[v] = nextIndex
				nextIndex++
				stack = append(stack, v)
				onStack[v] = true
			}
			recursed := false
			for top.iter < len(graph[v]) {
				w := int(graph[v][top.iter])
				top.iter++
				if index[w] == -1 {
					work = append(work, frame{w, 0})
					recursed = true
					break
				} else if onStack[w] {
					if low[w] < low[v] {
						low[v] = low[w]
					}
				}
			}
			if recursed {
				continue
			}
			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = nextComp
					if w == v {
						break
					}
				}
				nextComp++
			}
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if low[v] < low[parent.v] {
					low[parent.v] = low[v]
				}
			}
		}
	}
	return comp
}

// substituteEquivalences finds the binary implication graph's SCCs and
// merges every literal in a non-trivial component onto a single
// representative via VarState.Merge, then rewrites every clause to use
// representatives (§4.6).
func (s *Solver) substituteEquivalences() {
	if s.opts.Substitute == 0 {
		return
	}
	graph := s.binaryImplicationGraph()
	comp := tarjanSCC(graph)

	byComp := make(map[int][]Lit)
	for l, c := range comp {
		if c >= 0 {
			byComp[c] = append(byComp[c], Lit(l))
		}
	}
	merged := 0
	for _, lits := range byComp {
		if len(lits) < 2 {
			continue
		}
		rep := lits[0]
		for _, l := range lits[1:] {
			if l == rep || l == rep.Not() {
				continue
			}
			// ¬l must land in the same component as ¬rep for a clean
			// merge; skip otherwise (defensive: SCCs over this graph are
			// closed under negation by construction, but variables already
			// fixed at level 0 can desync this).
			if comp[l.Not()] != comp[rep.Not()] {
				continue
			}
			s.vars.Merge(l, rep)
			big, small := l, rep
			if big < small {
				big, small = small, big
			}
			s.extension.PushWeakenedClause(big, []Lit{small.Not()})
			s.extension.PushWeakenedClause(big.Not(), []Lit{small})
			s.vars.SetFlag(l.Var(), FlagSubstituted)
			merged++
		}
	}
	if merged == 0 {
		return
	}
	s.rewriteClausesWithRepresentatives()
	s.stats.SubstitutedVars += int64(merged)
	s.log.Debugf(newLogrusFields("merged", merged), "substitution merged %d literals", merged)
}

// rewriteClausesWithRepresentatives replaces every literal by its current
// union-find representative across the whole clause database, dropping
// clauses that become tautological or duplicate-collapsed.
func (s *Solver) rewriteClausesWithRepresentatives() {
	for _, ref := range s.db.Clauses() {
		if s.db.Arena.Garbage(ref) {
			continue
		}
		lits := s.db.Arena.Lits(ref)
		rewritten := make([]Lit, len(lits))
		changed := false
		for i, l := range lits {
			r := s.vars.Representative(l)
			rewritten[i] = r
			if r != l {
				changed = true
			}
		}
		if !changed {
			continue
		}
		s.proof.DeleteClause(lits)
		s.db.MarkGarbage(ref)
		s.addClauseDuringInprocessing(rewritten)
	}
	for _, pair := range s.db.Binaries() {
		a, b := s.vars.Representative(pair[0]), s.vars.Representative(pair[1])
		if a == pair[0] && b == pair[1] {
			continue
		}
		s.db.RemoveBinary(pair[0], pair[1])
		s.addClauseDuringInprocessing([]Lit{a, b})
	}
}
