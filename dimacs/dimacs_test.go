package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/google/go-cmp/cmp"

	"github.com/xDarkicex/cdcl/sat"
)

func TestParseBasic(t *testing.T) {
	input := `c a comment
p cnf 3 2
1 -2 0
2 3 0
`
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, p.NumVars)
	assert.Equal(t, 2, p.NumClauses)
	if diff := cmp.Diff([][]int{{1, -2}, {2, 3}}, p.Clauses); diff != "" {
		t.Errorf("clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAllowsCommentsAfterPreamble(t *testing.T) {
	input := `p cnf 1 1
c trailing comment
1 0
`
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, p.Clauses)
}

func TestParseStopsAtPercent(t *testing.T) {
	input := `p cnf 1 1
1 0
%
0
`
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, p.Clauses)
}

func TestParseRejectsMalformedProblemLine(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 1\n"))
	assert.Error(t, err)
}

func TestParseRejectsDuplicateProblemLine(t *testing.T) {
	input := "p cnf 1 1\np cnf 2 2\n1 0\n"
	_, err := Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseClauseWithoutTrailingZero(t *testing.T) {
	p, err := Parse(strings.NewReader("p cnf 2 1\n1 -2"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, -2}}, p.Clauses)
}

func TestLoadSolverSatisfiable(t *testing.T) {
	p := &Problem{NumVars: 1, NumClauses: 1, Clauses: [][]int{{1}}}
	s, err := LoadSolver(p, sat.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, sat.Satisfiable, s.Solve())
}

func TestLoadSolverGrowsForOutOfDeclaredRangeLiterals(t *testing.T) {
	p := &Problem{NumVars: 1, NumClauses: 1, Clauses: [][]int{{3}}}
	s, err := LoadSolver(p, sat.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, s.NumVars())
}

func TestWriteModel(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteModel(&sb, []int8{1, -1, 1}))
	assert.Equal(t, "v 1 -2 3 0\n", sb.String())
}
