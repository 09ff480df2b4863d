package sat

import (
	"fmt"

	"github.com/pkg/errors"
)

// InputError reports a malformed clause rejected at ingestion (§7 Input
// error). The solver stays in the CREATED state when one is returned.
// Shaped after the teacher's core.LogicError (Op/Message), wrapped with
// github.com/pkg/errors at the package boundary so callers get a stack
// trace on %+v (SPEC_FULL.md §1.2).
type InputError struct {
	Op      string
	Lit     Lit
	Message string
}

func (e *InputError) Error() string {
	if e.Lit != LitNull {
		return fmt.Sprintf("sat: %s: %s (literal %s)", e.Op, e.Message, e.Lit)
	}
	return fmt.Sprintf("sat: %s: %s", e.Op, e.Message)
}

func newInputError(op, message string, lit Lit) error {
	return errors.WithStack(&InputError{Op: op, Lit: lit, Message: message})
}

// assert panics with a *fmt.Sprintf message when cond is false and
// Options.Debug is set; in release builds (Debug == false) the invariant
// is assumed true by construction and assert is a no-op (§7 "Invariant
// violation in debug builds").
func assert(debug bool, cond bool, format string, args ...interface{}) {
	if debug && !cond {
		panic(fmt.Sprintf("sat: assertion failed: "+format, args...))
	}
}
