package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseAddBinaryCounts(t *testing.T) {
	d := NewDatabase(8)
	d.AddBinary(DimacsToLit(1), DimacsToLit(2))

	assert.Equal(t, 1, d.NumIrredundant)
	assert.Len(t, d.Binaries(), 1)
}

func TestDatabaseBinariesCanonicalOrder(t *testing.T) {
	d := NewDatabase(8)
	a, b := DimacsToLit(1), DimacsToLit(-2)
	d.AddBinary(a, b)

	pairs := d.Binaries()
	assert.Len(t, pairs, 1)
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	assert.Equal(t, [2]Lit{lo, hi}, pairs[0])
}

func TestDatabaseAddLongWatchesBothEnds(t *testing.T) {
	d := NewDatabase(8)
	ref := d.AddLong(lits(1, 2, 3), false, 0)

	assert.Len(t, d.Watches.List(DimacsToLit(1)), 1)
	assert.Len(t, d.Watches.List(DimacsToLit(2)), 1)
	assert.Equal(t, 1, d.NumIrredundant)
	assert.Contains(t, d.Clauses(), ref)
}

func TestDatabaseMarkGarbageRemovesWatchesAndCount(t *testing.T) {
	d := NewDatabase(8)
	ref := d.AddLong(lits(1, 2, 3), true, 2)
	assert.Equal(t, 1, d.NumRedundant)

	d.MarkGarbage(ref)

	assert.Equal(t, 0, d.NumRedundant)
	assert.Empty(t, d.Watches.List(DimacsToLit(1)))
	assert.NotContains(t, d.Clauses(), ref)
}

func TestDatabaseRelocateUpdatesClausesAndWatches(t *testing.T) {
	d := NewDatabase(8)
	keep := d.AddLong(lits(1, 2, 3), false, 0)
	drop := d.AddLong(lits(4, 5, 6), false, 0)
	d.MarkGarbage(drop)

	relocate := d.Arena.GarbageCollect(nil)
	d.Relocate(relocate)

	newRef := relocate[keep]
	assert.Contains(t, d.Clauses(), newRef)
	assert.Equal(t, 1, len(d.Clauses()))
}
