package sat

// extEntry is one witness-led group on the extension stack (§6 Extension
// stack): a witness literal, followed by the remaining literals of the
// clause that was weakened (empty for an eliminated unit).
type extEntry struct {
	witness Lit
	rest    []Lit
}

// ExtensionStack records the weakened clauses and eliminated units that
// BVE, substitution and congruence merges push so a model found over the
// reduced formula can be replayed back into a model of the original one
// (§4.5 "Eliminated clauses are pushed to the extension stack as weakened
// clauses, witness-labelled with v"; §6 Extension stack).
type ExtensionStack struct {
	entries []extEntry
}

func NewExtensionStack() *ExtensionStack { return &ExtensionStack{} }

// PushWeakenedClause records a clause removed by BVE, or one half of an
// equivalence recorded by substitution or a congruence merge: witness is
// the eliminated variable's polarity that made this particular resolvent/
// original clause true, rest is everything else in the clause.
func (e *ExtensionStack) PushWeakenedClause(witness Lit, rest []Lit) {
	cp := append([]Lit(nil), rest...)
	e.entries = append(e.entries, extEntry{witness: witness, rest: cp})
}

// PushUnit records a single eliminated/forced literal with no remaining
// disjuncts (a pure-literal elimination or a substitution-induced unit).
func (e *ExtensionStack) PushUnit(witness Lit) {
	e.entries = append(e.entries, extEntry{witness: witness})
}

// Extend replays the stack in reverse over a model (indexed by Lit,
// nonzero meaning assigned) from the reduced search, flipping witness
// literals whose group is not already satisfied (§6 Model reconstruction:
// "for each witness-led group, if no literal of the group is currently
// true under the model, flip the witness literal's value").
func (e *ExtensionStack) Extend(vals []int8) {
	for i := len(e.entries) - 1; i >= 0; i-- {
		entry := e.entries[i]
		satisfied := vals[entry.witness] > 0
		if !satisfied {
			for _, l := range entry.rest {
				if vals[l] > 0 {
					satisfied = true
					break
				}
			}
		}
		if !satisfied {
			flipLit(vals, entry.witness)
		} else if vals[entry.witness] == 0 {
			// Variable never assigned by search (pure elimination) and the
			// group is already satisfied: default the witness false so later
			// (earlier-pushed) groups see a definite value.
			flipLit(vals, entry.witness.Not())
		}
	}
}

func flipLit(vals []int8, l Lit) {
	vals[l] = 1
	vals[l.Not()] = -1
}

// Model returns the final value array (one per Lit, matching VarState.vals
// layout) after replaying the extension stack over the search assignment.
func (s *Solver) Model() []int8 {
	vals := append([]int8(nil), s.vars.vals...)
	s.extension.Extend(vals)
	return vals
}

// ExternalModel condenses Model's per-Lit array into one entry per
// original variable (index v holds +1/-1 for external variable v+1),
// the form dimacs.WriteModel and model.Format expect.
func (s *Solver) ExternalModel() []int8 {
	vals := s.Model()
	out := make([]int8, s.vars.NumVars())
	for v := 0; v < len(out); v++ {
		out[v] = vals[MkLit(Var(v), false)]
	}
	return out
}
