package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMkLitEncoding(t *testing.T) {
	cases := []struct {
		v        Var
		negated  bool
		wantLit  Lit
		wantSign bool
	}{
		{0, false, 0, false},
		{0, true, 1, true},
		{1, false, 2, false},
		{1, true, 3, true},
		{41, false, 82, false},
	}
	for _, c := range cases {
		l := MkLit(c.v, c.negated)
		assert.Equal(t, c.wantLit, l)
		assert.Equal(t, c.v, l.Var())
		assert.Equal(t, c.wantSign, l.Signed())
	}
}

func TestLitNot(t *testing.T) {
	l := MkLit(5, false)
	assert.Equal(t, MkLit(5, true), l.Not())
	assert.Equal(t, l, l.Not().Not())
}

func TestLitDimacs(t *testing.T) {
	assert.Equal(t, 1, MkLit(0, false).Dimacs())
	assert.Equal(t, -1, MkLit(0, true).Dimacs())
	assert.Equal(t, 42, MkLit(41, false).Dimacs())
	assert.Equal(t, -42, MkLit(41, true).Dimacs())
}

func TestDimacsToLit(t *testing.T) {
	assert.Equal(t, MkLit(0, false), DimacsToLit(1))
	assert.Equal(t, MkLit(0, true), DimacsToLit(-1))
	assert.Equal(t, MkLit(99, false), DimacsToLit(100))
	assert.Equal(t, MkLit(99, true), DimacsToLit(-100))
}

func TestDimacsLitRoundTrip(t *testing.T) {
	for _, d := range []int{1, -1, 7, -7, 256, -256} {
		l := DimacsToLit(d)
		assert.Equal(t, d, l.Dimacs())
	}
}
