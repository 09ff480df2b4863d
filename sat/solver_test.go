package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lightOptions disables the inprocessing passes so small end-to-end cases
// exercise the core CDCL loop deterministically, the same way cmd/cdcl lets
// a caller turn any of these off via flags.
func lightOptions() Options {
	o := DefaultOptions()
	o.Sweep, o.PreprocessSweep = 0, 0
	o.Congruence, o.PreprocessCongruence = 0, 0
	o.Factor, o.PreprocessFactor = 0, 0
	o.WalkEnabled = 0
	o.Eliminate, o.FastEl, o.FastElim = 0, 0, 0
	o.Substitute = 0
	o.Forward = 0
	o.Transitive = 0
	o.Vivify = 0
	o.PreprocessBackbone = 0
	return o
}

func solverWithClauses(t *testing.T, numVars int, opts Options, clauses [][]int) *Solver {
	t.Helper()
	s := NewSolver(numVars, opts)
	for _, c := range clauses {
		ls := make([]Lit, len(c))
		for i, d := range c {
			ls[i] = DimacsToLit(d)
		}
		require.NoError(t, s.AddClause(ls))
	}
	return s
}

func TestSolveUnitClauseSatisfiable(t *testing.T) {
	s := solverWithClauses(t, 1, lightOptions(), [][]int{{1}})
	assert.Equal(t, Satisfiable, s.Solve())
	assert.True(t, s.Value(0))
}

func TestSolveSimpleConflict(t *testing.T) {
	s := solverWithClauses(t, 1, lightOptions(), [][]int{{1}, {-1}})
	assert.Equal(t, Unsatisfiable, s.Solve())
}

func TestSolveTautologyIgnored(t *testing.T) {
	s := solverWithClauses(t, 2, lightOptions(), [][]int{{1, -1, 2}})
	assert.Equal(t, Satisfiable, s.Solve())
}

func TestSolveBinaryChain(t *testing.T) {
	// a -> b -> c, with a asserted: all three must end up true.
	s := solverWithClauses(t, 3, lightOptions(), [][]int{
		{1},
		{-1, 2},
		{-2, 3},
	})
	require.Equal(t, Satisfiable, s.Solve())
	assert.True(t, s.Value(0))
	assert.True(t, s.Value(1))
	assert.True(t, s.Value(2))
}

func TestSolveRequiresConflictDrivenLearning(t *testing.T) {
	// (!a|b) & (!a|!b) & (!a|c) & (!a|!c) forces a false, then b and c free.
	s := solverWithClauses(t, 3, lightOptions(), [][]int{
		{-1, 2},
		{-1, -2},
		{-1, 3},
		{-1, -3},
	})
	require.Equal(t, Satisfiable, s.Solve())
	assert.False(t, s.Value(0))
}

func TestSolvePigeonholeTwoIntoOneUnsat(t *testing.T) {
	// Two pigeons (vars 1,2), one hole: both can't avoid occupying it, and
	// at most one pigeon may hold it.
	s := solverWithClauses(t, 2, lightOptions(), [][]int{
		{1},
		{2},
		{-1, -2},
	})
	assert.Equal(t, Unsatisfiable, s.Solve())
}

func TestSolveEmptyClauseIsImmediatelyUnsat(t *testing.T) {
	s := NewSolver(1, lightOptions())
	require.NoError(t, s.AddClause(nil))
	assert.Equal(t, Unsatisfiable, s.Solve())
}

func TestAddClauseRejectsOutOfRangeLiteral(t *testing.T) {
	s := NewSolver(1, lightOptions())
	err := s.AddClause([]Lit{DimacsToLit(5)})
	require.Error(t, err)
	var ie *InputError
	assert.ErrorAs(t, err, &ie)
}

func TestSolveIdempotentOnRepeatedCall(t *testing.T) {
	s := solverWithClauses(t, 1, lightOptions(), [][]int{{1}})
	first := s.Solve()
	second := s.Solve()
	assert.Equal(t, first, second)
}

func TestExternalModelMatchesValue(t *testing.T) {
	s := solverWithClauses(t, 3, lightOptions(), [][]int{
		{1},
		{-1, 2},
		{-2, 3},
	})
	require.Equal(t, Satisfiable, s.Solve())

	ext := s.ExternalModel()
	require.Len(t, ext, 3)
	for v := 0; v < 3; v++ {
		want := int8(-1)
		if s.Value(Var(v)) {
			want = 1
		}
		assert.Equal(t, want, ext[v])
	}
}

func TestDefaultOptionsSolvesWithFullInprocessing(t *testing.T) {
	// A small instance exercised with every pass enabled: the shape
	// cmd/cdcl runs by default.
	s := solverWithClauses(t, 3, DefaultOptions(), [][]int{
		{1, 2, 3},
		{-1, -2},
		{-2, -3},
		{-1, -3},
	})
	status := s.Solve()
	assert.Contains(t, []Status{Satisfiable, Unsatisfiable}, status)
}
