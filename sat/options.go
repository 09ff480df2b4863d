package sat

// Options is the fixed enumeration of integer-valued tuning parameters
// described in spec.md §6. Every field defaults to the value
// DefaultOptions() sets, following kissat's published defaults
// (original_source/yosys/abc/src/sat/kissat); cmd/cdcl exposes a subset of
// them as --flags via spf13/cobra (SPEC_FULL.md §1.3).
type Options struct {
	Chrono        int // enable chronological backtracking
	ChronoLevels  int // max (back - jump) before preferring chronological backtracking
	Decay         int // EVSIDS decay, percent
	Minimize      int // enable recursive clause minimization
	MinimizeDepth int
	Shrink        int // enable same-level block shrinking
	Bump          int
	BumpReasons   int
	BumpReasonsRate  int
	BumpReasonsLimit int

	EagerSubsume int // window size K for eager subsumption of recent learned clauses

	Eliminate      int
	EliminateOccLim int
	EliminateBound int
	EliminateRounds int

	Forward        int // forward subsumption enabled
	SubsumeClsLim  int
	SubsumeOccLim  int

	Substitute        int
	SubstituteRounds  int
	SubstituteEffort  int

	Sweep            int
	SweepDepth       int
	SweepVars        int
	SweepClauses     int
	SweepMaxDepth    int
	SweepMaxVars     int
	SweepMaxClauses  int
	SweepFlipRounds  int
	SweepComplete    int

	Congruence         int
	CongruenceAnds     int
	CongruenceXors     int
	CongruenceItes     int
	CongruenceAndArity int
	CongruenceXorArity int
	CongruenceXorCounts int

	Transitive     int
	TransitiveKeep int

	Vivify             int
	VivifyIrr          int
	VivifyTier1        int
	VivifyTier2        int
	VivifyTier3        int
	VivifySort         int
	VivifyFocusedTiers int
	VivifyFlipRounds   int

	Factor          int
	FactorSize      int
	FactorHops      int
	FactorStructural int
	FactorInitTicks int
	FactorCandRounds int
	FactorRounds    int

	Reduce     int
	ReduceHigh int
	ReduceLow  int

	Rephase int
	Reorder int
	Warmup  int
	Lucky   int

	ModeInit int // conflicts before the first mode switch
	ModeInt  int // conflicts between subsequent mode switches
	Stable   int // start in stable (1) or focused (0) mode
	Phase    int8 // initial phase, -1/0/+1

	PreprocessCongruence int
	PreprocessBackbone   int
	PreprocessSweep      int
	PreprocessFactor     int
	ProbeRounds          int

	FastEl       int
	FastElRounds int
	FastElOccs   int
	FastElSub    int
	FastElClsLim int
	FastElim     int

	WalkEnabled     int
	WalkRounds      int
	WalkFlipsPerVar int

	// Logger receives structured progress/debug records (SPEC_FULL.md
	// §1.1). A nil Logger installs a discard-everything instance.
	Logger *Logger
	// Debug enables assertion panics on invariant violations (§7); off by
	// default, matching a release build.
	Debug bool
}

// DefaultOptions returns the documented kissat-style defaults.
func DefaultOptions() Options {
	return Options{
		Chrono: 1, ChronoLevels: 100,
		Decay: 95, Minimize: 1, MinimizeDepth: 1000, Shrink: 1,
		Bump: 1, BumpReasons: 1, BumpReasonsRate: 10, BumpReasonsLimit: 10,
		EagerSubsume: 10,
		Eliminate: 1, EliminateOccLim: 2000, EliminateBound: 0, EliminateRounds: 2,
		Forward: 1, SubsumeClsLim: 1000, SubsumeOccLim: 1000,
		Substitute: 1, SubstituteRounds: 2, SubstituteEffort: 10,
		Sweep: 1, SweepDepth: 2, SweepVars: 128, SweepClauses: 2048,
		SweepMaxDepth: 4, SweepMaxVars: 512, SweepMaxClauses: 8192, SweepFlipRounds: 1, SweepComplete: 0,
		Congruence: 1, CongruenceAnds: 1, CongruenceXors: 1, CongruenceItes: 1,
		CongruenceAndArity: 16, CongruenceXorArity: 8, CongruenceXorCounts: 1,
		Transitive: 1, TransitiveKeep: 1,
		Vivify: 1, VivifyIrr: 1, VivifyTier1: 1, VivifyTier2: 1, VivifyTier3: 1,
		VivifySort: 1, VivifyFocusedTiers: 1, VivifyFlipRounds: 1,
		Factor: 1, FactorSize: 3, FactorHops: 4, FactorStructural: 0,
		FactorInitTicks: 100000, FactorCandRounds: 2, FactorRounds: 2,
		Reduce: 1, ReduceHigh: 3, ReduceLow: 2,
		Rephase: 1, Reorder: 1, Warmup: 1, Lucky: 1,
		ModeInit: 1000, ModeInt: 1000, Stable: 1, Phase: 0,
		PreprocessCongruence: 1, PreprocessBackbone: 1, PreprocessSweep: 1,
		PreprocessFactor: 0, ProbeRounds: 1,
		FastEl: 1, FastElRounds: 1, FastElOccs: 100, FastElSub: 1, FastElClsLim: 100, FastElim: 1,
		WalkEnabled: 1, WalkRounds: 1, WalkFlipsPerVar: 40,
		Logger: NewNullLogger(),
	}
}
