package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/cdcl/sat"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "v 1 -2 3 0", Format([]int8{1, -1, 1}))
}

func TestWrite(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, []int8{1, -1}))
	assert.Equal(t, "v 1 -2 0\n", sb.String())
}

func TestVerifySatisfiedReturnsNegativeOne(t *testing.T) {
	vals := []int8{1, -1, 1}
	clauses := [][]int{{1, 2}, {-2, 3}}
	assert.Equal(t, -1, Verify(vals, clauses))
}

func TestVerifyReturnsFirstUnsatisfiedClauseIndex(t *testing.T) {
	vals := []int8{1, -1}
	clauses := [][]int{{1}, {2}, {-1}}
	assert.Equal(t, 1, Verify(vals, clauses))
}

func TestExternalValue(t *testing.T) {
	s := sat.NewSolver(1, sat.DefaultOptions())
	require.NoError(t, s.AddClause([]sat.Lit{sat.DimacsToLit(1)}))
	require.Equal(t, sat.Satisfiable, s.Solve())
	assert.True(t, ExternalValue(s, 1))
}
