package sat

// congruence.go implements gate extraction and congruence closure (§4.10):
// AND and XOR gates (ITE gates are not extracted) are recognized
// syntactically from clause patterns
// already in the database, hashed structurally, and any two gates that
// hash equal (same kind, same, possibly reordered, inputs) have their
// output literals merged via VarState.Merge — the union-find already used
// by substitute.go.

type gateKind uint8

const (
	gateAnd gateKind = iota
	gateXor
)

// gate is one recognized definition output <-> f(inputs).
type gate struct {
	kind   gateKind
	output Lit
	inputs []Lit
}

// gateSignature is a structural hash key: kind plus a canonical
// (sorted, deduplicated) encoding of the input literals, so that two
// syntactically different but logically identical gates collide.
func gateSignature(g gate) string {
	inputs := append([]Lit(nil), g.inputs...)
	sortLits(inputs)
	buf := make([]byte, 0, 4+4*len(inputs))
	buf = append(buf, byte(g.kind))
	for _, l := range inputs {
		buf = append(buf, byte(l), byte(l>>8), byte(l>>16), byte(l>>24))
	}
	return string(buf)
}

func sortLits(lits []Lit) {
	for i := 1; i < len(lits); i++ {
		for j := i; j > 0 && lits[j-1] > lits[j]; j-- {
			lits[j-1], lits[j] = lits[j], lits[j-1]
		}
	}
}

// extractGates scans the dense clause set for the two clause-pattern
// shapes a Tseitin-style AND gate (two binaries {¬o,a},{¬o,b} and the
// ternary {o,¬a,¬b})
// and XOR gate (four ternaries matching o ⊕ a ⊕ b) produce, recovering the
// gate definition when found (§4.10).
func (s *Solver) extractGates() []gate {
	var gates []gate
	if s.opts.CongruenceAnds != 0 {
		gates = append(gates, s.extractAndGates()...)
	}
	if s.opts.CongruenceXors != 0 {
		gates = append(gates, s.extractXorGates()...)
	}
	return gates
}

// extractAndGates looks, for every long clause of size 3 matching
// {o, ¬a, ¬b}, for the two corroborating binaries {¬o,a} and {¬o,b} that
// together define o <-> (a ∧ b).
func (s *Solver) extractAndGates() []gate {
	var out []gate
	for _, ref := range s.db.Clauses() {
		if s.db.Arena.Garbage(ref) || s.db.Arena.Size(ref) != 3 {
			continue
		}
		lits := s.db.Arena.Lits(ref)
		for i := 0; i < 3; i++ {
			o := lits[i]
			a, b := lits[(i+1)%3], lits[(i+2)%3]
			if !a.Signed() || !b.Signed() {
				continue
			}
			if s.hasBinary(o.Not(), a.Not()) && s.hasBinary(o.Not(), b.Not()) {
				out = append(out, gate{kind: gateAnd, output: o, inputs: []Lit{a.Not(), b.Not()}})
			}
		}
	}
	return out
}

// extractXorGates looks for the characteristic four-ternary-clause
// fan-out of a binary XOR gate around a candidate output literal: the base
// clause {o, a, b} plus the three clauses that negate exactly two of its
// literals, which together encode o ⊕ a ⊕ b = 1. Only two-input gates are
// recognized.
func (s *Solver) extractXorGates() []gate {
	var out []gate
	type xorKey struct {
		sig string
		out Lit
	}
	seen := map[xorKey]bool{}
	for _, ref := range s.db.Clauses() {
		if s.db.Arena.Garbage(ref) || s.db.Arena.Size(ref) != 3 {
			continue
		}
		lits := s.db.Arena.Lits(ref)
		o, a, b := lits[0], lits[1], lits[2]
		g := gate{kind: gateXor, output: o, inputs: []Lit{a, b}}
		sig := gateSignature(g)
		if seen[xorKey{sig, o}] {
			continue
		}
		need := [][3]Lit{
			{o, a.Not(), b.Not()},
			{o.Not(), a, b.Not()},
			{o.Not(), a.Not(), b},
		}
		allPresent := true
		for _, n := range need {
			if !s.hasTernary(n[0], n[1], n[2]) {
				allPresent = false
				break
			}
		}
		if allPresent {
			seen[xorKey{sig, o}] = true
			out = append(out, g)
		}
	}
	return out
}

func (s *Solver) hasBinary(a, b Lit) bool {
	for _, w := range s.db.Watches.List(a) {
		if w.Kind == WatchBinary && w.Blocker == b {
			return true
		}
	}
	return false
}

func (s *Solver) hasTernary(a, b, c Lit) bool {
	for _, ref := range s.occurrencesOf(a) {
		lits := s.db.Arena.Lits(ref)
		if len(lits) != 3 {
			continue
		}
		set := map[Lit]bool{lits[0]: true, lits[1]: true, lits[2]: true}
		if set[a] && set[b] && set[c] {
			return true
		}
	}
	return false
}

// congruenceClose extracts gates, groups them by structural signature, and
// merges every gate output sharing a signature with another onto one
// representative (§4.10).
func (s *Solver) congruenceClose() {
	if s.opts.Congruence == 0 {
		return
	}
	s.enterDenseMode()
	gates := s.extractGates()
	byKey := make(map[string][]Lit)
	for _, g := range gates {
		key := gateSignature(g)
		byKey[key] = append(byKey[key], g.output)
	}
	merged := 0
	for _, outputs := range byKey {
		if len(outputs) < 2 {
			continue
		}
		rep := outputs[0]
		for _, o := range outputs[1:] {
			if o == rep {
				continue
			}
			s.vars.Merge(o, rep)
			big, small := o, rep
			if big < small {
				big, small = small, big
			}
			s.extension.PushWeakenedClause(big, []Lit{small.Not()})
			s.extension.PushWeakenedClause(big.Not(), []Lit{small})
			merged++
		}
	}
	if merged == 0 {
		return
	}
	s.rewriteClausesWithRepresentatives()
	s.stats.CongruenceGates += int64(len(gates))
	s.stats.CongruenceMerges += int64(merged)
	s.log.Debugf(newLogrusFields("gates", len(gates), "merged", merged), "congruence closure merged %d literals", merged)
}
