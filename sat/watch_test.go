package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchesAddBinary(t *testing.T) {
	w := NewWatches(8)
	a, b := DimacsToLit(1), DimacsToLit(2)

	w.AddBinary(a, b)

	list := w.List(a)
	assert.Len(t, list, 1)
	assert.Equal(t, WatchBinary, list[0].Kind)
	assert.Equal(t, b, list[0].Blocker)
}

func TestWatchesRemoveBinary(t *testing.T) {
	w := NewWatches(8)
	a, b := DimacsToLit(1), DimacsToLit(2)
	w.AddBinary(a, b)

	w.RemoveBinary(a, b)

	assert.Empty(t, w.List(a))
}

func TestWatchesAddLongAndRemoveLong(t *testing.T) {
	w := NewWatches(8)
	l0, l1 := DimacsToLit(1), DimacsToLit(2)
	ref := ClauseRef(10)

	w.AddLong(l0, l1, ref)
	assert.Len(t, w.List(l0), 1)

	w.RemoveLong(l0, ref)
	assert.Empty(t, w.List(l0))
}

func TestWatchesClearAllLongKeepsBinaries(t *testing.T) {
	w := NewWatches(8)
	l := DimacsToLit(1)
	w.AddBinary(l, DimacsToLit(2))
	w.AddLong(l, DimacsToLit(3), ClauseRef(5))

	w.ClearAllLong()

	list := w.List(l)
	assert.Len(t, list, 1)
	assert.Equal(t, WatchBinary, list[0].Kind)
}

func TestWatchesRelocateDropsMissingAndRewritesSurvivors(t *testing.T) {
	w := NewWatches(8)
	l := DimacsToLit(1)
	w.AddBinary(l, DimacsToLit(2))
	w.AddLong(l, DimacsToLit(3), ClauseRef(1))
	w.AddLong(l, DimacsToLit(4), ClauseRef(2))

	w.Relocate(map[ClauseRef]ClauseRef{ClauseRef(1): ClauseRef(100)})

	list := w.List(l)
	var sawBinary, sawRelocated bool
	for _, wt := range list {
		if wt.Kind == WatchBinary {
			sawBinary = true
		}
		if wt.Kind == WatchLong {
			assert.Equal(t, ClauseRef(100), wt.Ref)
			sawRelocated = true
		}
	}
	assert.True(t, sawBinary)
	assert.True(t, sawRelocated)
	assert.Len(t, list, 2)
}
