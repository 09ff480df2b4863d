package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// sweep.go implements SAT sweeping (§4.9): small neighborhoods of the
// variable incidence graph are handed to an embedded, disposable SAT
// solver ("kitten" in the original design) to discover fixed values a
// purely syntactic pass would miss; equivalences between swept variables
// are not detected. The embedded solver
// here is github.com/go-air/gini, the same engine
// operator-framework-operator-lifecycle-manager's dependency resolver
// embeds for its own small-instance solving (pkg/controller/registry/resolver/sat).

// sweepEnvironment wraps a gini instance together with the external<->
// internal variable mapping for one swept neighborhood.
type sweepEnvironment struct {
	solver *gini.Gini
	toGini map[Var]z.Var
	toLit  map[z.Var]Var
}

func newSweepEnvironment() *sweepEnvironment {
	return &sweepEnvironment{
		solver: gini.New(),
		toGini: make(map[Var]z.Var),
		toLit:  make(map[z.Var]Var),
	}
}

func (e *sweepEnvironment) giniVar(v Var) z.Var {
	if g, ok := e.toGini[v]; ok {
		return g
	}
	g := e.solver.Lit().Var()
	e.toGini[v] = g
	e.toLit[g] = v
	return g
}

func (e *sweepEnvironment) giniLit(l Lit) z.Lit {
	g := e.giniVar(l.Var())
	if l.Signed() {
		return g.Neg()
	}
	return g.Pos()
}

// sweep runs one round of sweeping over the first SweepVars active,
// unassigned variables in variable index order, clause-limited by
// SweepClauses per neighborhood (§4.9).
func (s *Solver) sweep() {
	if s.opts.Sweep == 0 && s.opts.PreprocessSweep == 0 {
		return
	}
	s.enterDenseMode()
	swept := 0
	depthLimit := s.opts.SweepDepth
	if depthLimit <= 0 {
		depthLimit = 1
	}
	count := 0
	for v := Var(0); int(v) < s.vars.NumVars() && count < s.opts.SweepVars; v++ {
		if !s.vars.Active(v) || s.vars.Assigned(MkLit(v, false)) {
			continue
		}
		count++
		if s.sweepVariable(v, depthLimit) {
			swept++
		}
	}
	s.stats.SweptBackbones += int64(swept)
	s.log.Debugf(newLogrusFields("swept", swept), "sweep found %d fixed literals", swept)
}

// sweepVariable builds v's depth-bounded clause neighborhood, loads it
// into a fresh gini instance, and checks whether v's two phases are each
// satisfiable; if only one is, v is a fixed (backbone) literal and is
// asserted at the root (§4.9). Equivalences with other variables are not
// checked.
func (s *Solver) sweepVariable(v Var, depth int) bool {
	clauses := s.sweepNeighborhood(v, depth)
	if len(clauses) == 0 || len(clauses) > s.opts.SweepClauses {
		return false
	}
	env := newSweepEnvironment()
	for _, lits := range clauses {
		for _, l := range lits {
			env.solver.Add(env.giniLit(l))
		}
		env.solver.Add(0)
	}

	pos := env.giniLit(MkLit(v, false))
	neg := env.giniLit(MkLit(v, true))

	env.solver.Assume(pos)
	posResult := env.solver.Solve()
	env.solver.Assume(neg)
	negResult := env.solver.Solve()

	if posResult != 1 && negResult == 1 {
		s.assertRootUnit(MkLit(v, true))
		return true
	}
	if negResult != 1 && posResult == 1 {
		s.assertRootUnit(MkLit(v, false))
		return true
	}
	return false
}

// sweepNeighborhood collects the long clauses of every variable reachable
// from v within depth long-clause hops, via the dense occurrence table,
// plus every binary clause whose two variables were both reached; binary
// clauses are not followed as hops.
func (s *Solver) sweepNeighborhood(v Var, depth int) [][]Lit {
	visited := map[Var]bool{v: true}
	frontier := []Var{v}
	var clauseRefs []ClauseRef
	seenRefs := map[ClauseRef]bool{}

	for d := 0; d < depth && len(frontier) > 0; d++ {
		var next []Var
		for _, u := range frontier {
			for _, sign := range []bool{false, true} {
				lit := MkLit(u, sign)
				for _, ref := range s.occurrencesOf(lit) {
					if seenRefs[ref] || s.db.Arena.Garbage(ref) {
						continue
					}
					seenRefs[ref] = true
					clauseRefs = append(clauseRefs, ref)
					if len(clauseRefs) > s.opts.SweepClauses {
						return clauseLits(s.db, clauseRefs)
					}
					for _, other := range s.db.Arena.Lits(ref) {
						if ov := other.Var(); !visited[ov] {
							visited[ov] = true
							next = append(next, ov)
						}
					}
				}
			}
		}
		frontier = next
	}
	out := clauseLits(s.db, clauseRefs)
	for _, pair := range s.db.Binaries() {
		if visited[pair[0].Var()] && visited[pair[1].Var()] {
			out = append(out, []Lit{pair[0], pair[1]})
		}
	}
	return out
}

func clauseLits(db *Database, refs []ClauseRef) [][]Lit {
	out := make([][]Lit, 0, len(refs))
	for _, ref := range refs {
		out = append(out, db.Arena.Lits(ref))
	}
	return out
}
