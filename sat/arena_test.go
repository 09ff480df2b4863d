package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lits(ds ...int) []Lit {
	out := make([]Lit, len(ds))
	for i, d := range ds {
		out[i] = DimacsToLit(d)
	}
	return out
}

func TestArenaNewIrredundantClause(t *testing.T) {
	a := NewArena()
	ref := a.NewIrredundantClause(lits(1, -2, 3))

	assert.Equal(t, 3, a.Size(ref))
	assert.False(t, a.Redundant(ref))
	assert.False(t, a.Garbage(ref))
	assert.Equal(t, DimacsToLit(1), a.Lit(ref, 0))
	assert.Equal(t, DimacsToLit(-2), a.Lit(ref, 1))
	assert.Equal(t, DimacsToLit(3), a.Lit(ref, 2))
}

func TestArenaNewRedundantClauseGlue(t *testing.T) {
	a := NewArena()
	ref := a.NewRedundantClause(lits(1, 2, 3), 4)

	assert.True(t, a.Redundant(ref))
	assert.Equal(t, 4, a.Glue(ref))
}

func TestArenaNewClauseRequiresMinimumSize(t *testing.T) {
	a := NewArena()
	assert.Panics(t, func() { a.NewIrredundantClause(lits(1, 2)) })
	assert.Panics(t, func() { a.NewRedundantClause(lits(1), 0) })
}

func TestArenaShrink(t *testing.T) {
	a := NewArena()
	ref := a.NewIrredundantClause(lits(1, 2, 3, 4))

	a.Shrink(ref, 2)

	assert.Equal(t, 2, a.Size(ref))
	assert.True(t, a.Shrunken(ref))
	assert.Equal(t, []Lit{DimacsToLit(1), DimacsToLit(2)}, a.Lits(ref))
}

func TestArenaUsedSaturates(t *testing.T) {
	a := NewArena()
	ref := a.NewIrredundantClause(lits(1, 2, 3))

	for i := 0; i < maxUsed+10; i++ {
		a.BumpUsed(ref)
	}
	assert.Equal(t, maxUsed, a.Used(ref))

	a.SetUsed(ref, -5)
	assert.Equal(t, 0, a.Used(ref))
}

func TestArenaUsedDoesNotDisturbOtherFlags(t *testing.T) {
	a := NewArena()
	ref := a.NewIrredundantClause(lits(1, 2, 3))
	a.MarkReason(ref, true)

	a.SetUsed(ref, 7)

	assert.True(t, a.Reason(ref))
	assert.Equal(t, 7, a.Used(ref))
}

func TestArenaGarbageCollectDropsUnprotectedGarbage(t *testing.T) {
	a := NewArena()
	keep := a.NewIrredundantClause(lits(1, 2, 3))
	drop := a.NewIrredundantClause(lits(4, 5, 6))
	a.MarkGarbage(drop)

	relocate := a.GarbageCollect(nil)

	newKeep, ok := relocate[keep]
	assert.True(t, ok)
	_, dropped := relocate[drop]
	assert.False(t, dropped)
	assert.Equal(t, []Lit{DimacsToLit(1), DimacsToLit(2), DimacsToLit(3)}, a.Lits(newKeep))
}

func TestArenaGarbageCollectProtectsReasons(t *testing.T) {
	a := NewArena()
	protected := a.NewIrredundantClause(lits(1, 2, 3))
	a.MarkGarbage(protected)

	relocate := a.GarbageCollect(func(ref ClauseRef) bool { return ref == protected })

	_, ok := relocate[protected]
	assert.True(t, ok)
}
