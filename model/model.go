// Package model renders a solver's model and checks it against the
// original clause set, the external-facing counterpart to the internal
// extension-stack reconstruction in sat.Solver.Model.
package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/xDarkicex/cdcl/sat"
)

// Format renders vals (as returned by sat.Solver.ExternalModel) as a DIMACS "v"
// line: one signed literal per variable, 1-based, terminated by 0.
func Format(vals []int8) string {
	var sb strings.Builder
	sb.WriteString("v")
	for i, v := range vals {
		n := i + 1
		if v < 0 {
			n = -n
		}
		fmt.Fprintf(&sb, " %d", n)
	}
	sb.WriteString(" 0")
	return sb.String()
}

// Write prints the formatted model to w, followed by a newline.
func Write(w io.Writer, vals []int8) error {
	_, err := fmt.Fprintln(w, Format(vals))
	return err
}

// Verify checks that vals satisfies every clause in clauses, where each
// clause is a slice of external ±n DIMACS literals (the same form fed to
// dimacs.Problem.Clauses). It returns the index of the first unsatisfied
// clause, or -1 if every clause is satisfied.
func Verify(vals []int8, clauses [][]int) int {
	value := func(n int) int8 {
		idx := n
		if idx < 0 {
			idx = -idx
		}
		idx--
		if idx >= len(vals) {
			return 0
		}
		v := vals[idx]
		if n < 0 {
			return -v
		}
		return v
	}
	for ci, clause := range clauses {
		satisfied := false
		for _, lit := range clause {
			if value(lit) > 0 {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return ci
		}
	}
	return -1
}

// ExternalValue reports the final truth value of variable external (1-based
// external numbering)
// from a sat.Solver once Solve has returned Satisfiable.
func ExternalValue(s *sat.Solver, external int) bool {
	return s.Value(sat.Var(external - 1))
}
