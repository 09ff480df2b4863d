package sat

import "fmt"

// Var is a 0-based internal variable index, in [0, NumVars).
type Var int32

// Lit is a 0-based internal literal: lit = 2*var + sign, so the two
// literals of a variable are adjacent and complementary literals differ
// only in their low bit (lit ^ 1).
type Lit int32

// InvalidLit is the arena sentinel written into a shrunken clause's
// vacated tail slot (§4.1 invariant iii).
const InvalidLit Lit = -1

// LitNull is returned where no literal applies (e.g. the decision literal
// of the root frame).
const LitNull Lit = -2

// MkLit builds the literal for variable v with the given sign (true means
// negated).
func MkLit(v Var, negated bool) Lit {
	if negated {
		return Lit(2*int32(v) + 1)
	}
	return Lit(2 * int32(v))
}

// Var returns the variable underlying a literal.
func (l Lit) Var() Var { return Var(int32(l) >> 1) }

// Signed reports whether the literal is the negative polarity of its variable.
func (l Lit) Signed() bool { return int32(l)&1 != 0 }

// Not returns the complementary literal.
func (l Lit) Not() Lit { return l ^ 1 }

// Dimacs renders the literal using the solver's external numbering, where
// variable v (0-based) is printed as external number v+1.
func (l Lit) Dimacs() int {
	n := int(l.Var()) + 1
	if l.Signed() {
		return -n
	}
	return n
}

func (l Lit) String() string {
	if l == InvalidLit {
		return "<invalid>"
	}
	return fmt.Sprintf("%d", l.Dimacs())
}

// DimacsToLit converts an external DIMACS literal (nonzero, ±n) to an
// internal Lit, 0-based. This is the one piece of external<->internal
// bookkeeping the core itself performs directly on ingestion (§6); the
// richer import/export table living across eliminated/substituted
// variables belongs to the external dimacs/proof collaborators.
func DimacsToLit(d int) Lit {
	if d > 0 {
		return MkLit(Var(d-1), false)
	}
	return MkLit(Var(-d-1), true)
}
