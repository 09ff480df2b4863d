package sat

import (
	"github.com/sirupsen/logrus"
)

// Status is the outcome of Solve, mirroring the conventional DIMACS exit
// codes named in §6.
type Status int

const (
	Unknown Status = 0
	Satisfiable Status = 10
	Unsatisfiable Status = 20
)

// solverState tracks the coarse lifecycle §7 describes: a freshly built
// solver is CREATED; once inconsistent it stays inconsistent forever.
type solverState uint8

const (
	stateCreated solverState = iota
	stateSolving
	stateInconsistent
	stateSatisfied
	stateUnsatisfiable
)

// searchMode is the focused/stable toggle of §4.4.
type searchMode uint8

const (
	modeFocused searchMode = iota
	modeStable
)

// Solver is the single owning object for all CDCL state (§5 Mutation
// discipline: "all subsystems share one mutable state"). It wires
// together the arena/watch database, trail, decision heuristics, phase
// memory, conflict analyzer and every inprocessing pass.
type Solver struct {
	opts Options
	stats Statistics
	log  *Logger

	vars  *VarState
	db    *Database
	trail *Trail

	vmtf   *VMTF
	evsids *EVSIDS
	phases *Phases
	mode   searchMode

	pool *scratchPool

	extension *ExtensionStack
	proof     ProofSink

	dense denseMode

	state solverState

	conflicts    int64
	lastReduce   int64
	lastRephase  int64
	lastModeSwitch int64
	modeBudget   int64
	nextRestart  int64
	lubyIndex    int64
	lubyU, lubyV int64
	fastGlue, slowGlue float64

	tier1, tier2 int // glue tier boundaries (§4.3 step 5), recomputed periodically

	bestTrailHeight int

	eliminateLimit int64
	probeLimit     int64

	assumeInconsistentUnit bool

	beyondConflicts []Conflict

	// recent learned-clause refs for the eager-subsumption window (§4.3
	// step 10); binary/unit clauses are not windowed.
	recentLearned []ClauseRef
}

// ProofSink is the narrow interface the core emits DRAT-style add/delete
// records through (§6 Proof stream); concrete writers live in package
// proof, outside the core.
type ProofSink interface {
	AddClause(lits []Lit)
	DeleteClause(lits []Lit)
	Flush() error
}

// nullProofSink discards everything; installed by default so the core
// never needs a nil check.
type nullProofSink struct{}

func (nullProofSink) AddClause([]Lit)    {}
func (nullProofSink) DeleteClause([]Lit) {}
func (nullProofSink) Flush() error       { return nil }

// NewSolver creates a solver able to hold numVars variables from the
// start; Grow extends it further, as factoring does when it introduces
// fresh variables. AddClause rejects literals beyond the current size.
func NewSolver(numVars int, opts Options) *Solver {
	if opts.Logger == nil {
		opts.Logger = NewNullLogger()
	}
	s := &Solver{
		opts:      opts,
		log:       opts.Logger,
		vars:      NewVarState(numVars),
		db:        NewDatabase(2 * numVars),
		trail:     NewTrail(),
		vmtf:      NewVMTF(numVars),
		evsids:    NewEVSIDS(numVars),
		phases:    NewPhases(numVars, opts.Phase),
		pool:      newScratchPool(),
		extension: NewExtensionStack(),
		proof:     nullProofSink{},
	}
	s.evsids.Rebuild(s.vars)
	if opts.Stable != 0 {
		s.mode = modeStable
	}
	s.tier1, s.tier2 = 2, 6
	s.resetLubyStable()
	s.modeBudget = int64(opts.ModeInit)
	s.eliminateLimit = 1000
	s.probeLimit = 1000
	return s
}

// SetProofSink installs a non-default proof stream writer (§6).
func (s *Solver) SetProofSink(p ProofSink) {
	if p == nil {
		p = nullProofSink{}
	}
	s.proof = p
}

func (s *Solver) NumVars() int { return s.vars.NumVars() }

// Grow extends the solver to accommodate at least numVars variables.
func (s *Solver) Grow(numVars int) {
	if numVars <= s.vars.NumVars() {
		return
	}
	s.vars.Grow(numVars)
	s.db.Grow(2 * numVars)
	s.vmtf.Grow(numVars)
	s.evsids.Grow(numVars)
	s.phases.Grow(numVars)
}

// AddClause ingests an original clause given as internal literals,
// rejecting duplicate/out-of-range literals per §7 Input error. Clauses of
// size 0 are recorded as the empty clause (immediate UNSAT); size 1
// becomes a root-level unit; size 2 a binary clause; size >= 3 goes to the
// arena.
func (s *Solver) AddClause(lits []Lit) error {
	if s.state != stateCreated {
		return nil
	}
	seen := make(map[Lit]bool, len(lits))
	for _, l := range lits {
		if l < 0 || int(l.Var()) >= s.vars.NumVars() {
			return newInputError("AddClause", "literal out of range", l)
		}
		if seen[l] {
			return newInputError("AddClause", "duplicate literal", l)
		}
		seen[l] = true
	}
	norm, tautological := s.normalizeClause(lits)
	if tautological {
		return nil
	}
	switch len(norm) {
	case 0:
		s.makeInconsistent()
	case 1:
		s.assertRootUnit(norm[0])
	case 2:
		s.db.AddBinary(norm[0], norm[1])
		s.proof.AddClause(norm)
	default:
		ref := s.db.AddLong(norm, false, 0)
		s.proof.AddClause(norm)
		_ = ref
	}
	return nil
}

// normalizeClause removes duplicate literals and detects tautologies
// (l and ¬l both present).
func (s *Solver) normalizeClause(lits []Lit) ([]Lit, bool) {
	seen := map[Lit]bool{}
	out := make([]Lit, 0, len(lits))
	for _, l := range lits {
		if seen[l.Not()] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, false
}

func (s *Solver) makeInconsistent() {
	s.state = stateInconsistent
	s.proof.AddClause(nil)
}

// assertRootUnit installs a level-0 unit, immediately if consistent with
// the current assignment, or flags inconsistency if contradictory (§7).
func (s *Solver) assertRootUnit(lit Lit) {
	if s.vars.False(lit) {
		s.makeInconsistent()
		return
	}
	if s.vars.True(lit) {
		return
	}
	s.assign(lit, unitReason)
}

func (s *Solver) evsidsActive() bool { return s.mode == modeStable }

// Value reports the final model value of external variable v (0-based),
// valid only after Solve returns Satisfiable.
func (s *Solver) Value(v Var) bool {
	return s.Model()[MkLit(v, false)] > 0
}

// newLogrusFields is a small helper so passes can build structured log
// fields without importing logrus directly everywhere.
func newLogrusFields(kv ...interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			f[k] = kv[i+1]
		}
	}
	return f
}
