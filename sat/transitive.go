package sat

// transitive.go implements transitive reduction of the binary implication
// graph (§4.7): a binary clause {a, b} is redundant if ¬a already reaches b
// through some other path of binary clauses, since that path's unit
// propagation would derive b from ¬a anyway.

// transitiveReduce removes every binary clause whose implication is
// already entailed by a longer chain of other binary clauses.
func (s *Solver) transitiveReduce() {
	if s.opts.Transitive == 0 {
		return
	}
	graph := s.binaryImplicationGraph()
	removed := 0
	for _, pair := range s.db.Binaries() {
		a, b := pair[0], pair[1]
		if s.reachableWithout(a.Not(), b, graph, a, b) {
			s.db.RemoveBinary(a, b)
			s.proof.DeleteClause([]Lit{a, b})
			removed++
		}
	}
	s.stats.TransitiveRemoved += int64(removed)
	s.log.Debugf(newLogrusFields("removed", removed), "transitive reduction removed %d binaries", removed)
}

// reachableWithout performs a bounded DFS from start to target over graph,
// skipping the direct edge start->target (the edge under test itself),
// since that edge is exactly what we're asking whether we could do
// without.
func (s *Solver) reachableWithout(start, target Lit, graph [][]Lit, skipA, skipB Lit) bool {
	visited := make(map[Lit]bool)
	var stack []Lit
	for _, next := range graph[start] {
		if next == target && start == skipA.Not() && target == skipB {
			continue // the edge under test
		}
		stack = append(stack, next)
	}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if cur == target {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		stack = append(stack, graph[cur]...)
	}
	return false
}
