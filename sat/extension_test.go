package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionStackFlipsUnsatisfiedWitness(t *testing.T) {
	e := NewExtensionStack()
	witness := DimacsToLit(1)
	e.PushWeakenedClause(witness, []Lit{DimacsToLit(2)})

	vals := make([]int8, 4)
	vals[DimacsToLit(2)] = -1
	vals[DimacsToLit(2).Not()] = 1

	e.Extend(vals)

	assert.Equal(t, int8(1), vals[witness])
	assert.Equal(t, int8(-1), vals[witness.Not()])
}

func TestExtensionStackLeavesSatisfiedGroupAlone(t *testing.T) {
	e := NewExtensionStack()
	witness := DimacsToLit(1)
	rest := DimacsToLit(2)
	e.PushWeakenedClause(witness, []Lit{rest})

	vals := make([]int8, 4)
	vals[rest] = 1
	vals[rest.Not()] = -1
	vals[witness] = -1
	vals[witness.Not()] = 1

	e.Extend(vals)

	// The clause is already satisfied by `rest`, so witness keeps its
	// search-assigned value.
	assert.Equal(t, int8(-1), vals[witness])
}

func TestExtensionStackSetsUnitWitnessesTrue(t *testing.T) {
	e := NewExtensionStack()
	first := DimacsToLit(1)
	second := DimacsToLit(2)
	e.PushUnit(first)
	e.PushUnit(second)

	vals := make([]int8, 6)

	e.Extend(vals)

	assert.Equal(t, int8(1), vals[first])
	assert.Equal(t, int8(1), vals[second])
}

func TestSolverExternalModelLength(t *testing.T) {
	s := NewSolver(3, lightOptions())
	if err := s.AddClause([]Lit{DimacsToLit(1)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}
	if status := s.Solve(); status != Satisfiable {
		t.Fatalf("expected Satisfiable, got %v", status)
	}

	ext := s.ExternalModel()
	assert.Len(t, ext, 3)
}
