package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarStateAssignUnassign(t *testing.T) {
	vs := NewVarState(4)
	l := MkLit(2, false)

	assert.False(t, vs.Assigned(l))

	vs.assign(l)
	assert.True(t, vs.True(l))
	assert.True(t, vs.False(l.Not()))
	assert.True(t, vs.Assigned(l))

	vs.unassign(l.Var())
	assert.False(t, vs.Assigned(l))
	assert.False(t, vs.Assigned(l.Not()))
}

func TestVarStateFlags(t *testing.T) {
	vs := NewVarState(2)
	v := Var(1)

	assert.True(t, vs.Active(v))

	vs.SetFlag(v, FlagEliminated)
	assert.True(t, vs.HasFlag(v, FlagEliminated))
	assert.True(t, vs.Active(v))

	vs.ClearFlag(v, FlagActive)
	assert.False(t, vs.Active(v))
	assert.True(t, vs.HasFlag(v, FlagEliminated))
}

func TestVarStateGrow(t *testing.T) {
	vs := NewVarState(2)
	vs.Grow(5)
	assert.Equal(t, 5, vs.NumVars())
	assert.True(t, vs.Active(Var(4)))
	assert.False(t, vs.Assigned(MkLit(4, false)))
}

func TestVarStateRepresentativeDefault(t *testing.T) {
	vs := NewVarState(3)
	l := MkLit(1, false)
	assert.Equal(t, l, vs.Representative(l))
}

func TestVarStateMergeSmallerWins(t *testing.T) {
	vs := NewVarState(5)
	a := MkLit(3, false)
	b := MkLit(1, false)

	vs.Merge(a, b)

	assert.Equal(t, b, vs.Representative(a))
	assert.Equal(t, b.Not(), vs.Representative(a.Not()))
	assert.Equal(t, b, vs.Representative(b))
}

func TestVarStateMergeSelf(t *testing.T) {
	vs := NewVarState(2)
	l := MkLit(0, false)
	vs.Merge(l, l)
	assert.Equal(t, l, vs.Representative(l))
}

func TestVarStateMergeChainCompresses(t *testing.T) {
	vs := NewVarState(6)
	a, b, c := MkLit(4, false), MkLit(2, false), MkLit(0, false)

	vs.Merge(a, b) // repr[4] -> 2
	vs.Merge(b, c) // repr[2] -> 0

	assert.Equal(t, c, vs.Representative(a))
	assert.Equal(t, c, vs.Representative(b))
}
