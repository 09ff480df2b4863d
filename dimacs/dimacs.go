// Package dimacs reads and writes the DIMACS CNF text format, translating
// between external ±n literals and the solver's internal sat.Lit encoding.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xDarkicex/cdcl/sat"
)

// Problem is a fully parsed CNF instance: the declared variable/clause
// counts from the "p cnf" line and every clause as external DIMACS
// literals. LoadSolver sizes the solver to at least NumVars; NumClauses is
// not checked against the clauses read.
type Problem struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int
}

// Parse reads a DIMACS CNF stream. A few conventional relaxations are
// accepted, matching what real-world CNF producers emit: comment lines may
// appear anywhere, not only in the preamble, and a trailing "%" line ends
// the formula early.
func Parse(r io.Reader) (*Problem, error) {
	var p Problem
	var clause []int
	seenProblemLine := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(p.Clauses) > 0 {
				return nil, errors.New("dimacs: problem line appears after clauses")
			}
			if seenProblemLine {
				return nil, errors.New("dimacs: multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, errors.Errorf("dimacs: malformed problem line %q", line)
			}
			nv, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrap(err, "dimacs: parsing #vars")
			}
			nc, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrap(err, "dimacs: parsing #clauses")
			}
			p.NumVars, p.NumClauses = nv, nc
			seenProblemLine = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: invalid literal %q", field)
			}
			if n == 0 {
				p.Clauses = append(p.Clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: reading input")
	}
	if len(clause) > 0 {
		p.Clauses = append(p.Clauses, clause)
	}
	return &p, nil
}

// LoadSolver builds a sat.Solver sized for the problem and ingests every
// clause, translating external ±n literals via sat.DimacsToLit.
func LoadSolver(p *Problem, opts sat.Options) (*sat.Solver, error) {
	numVars := p.NumVars
	for _, clause := range p.Clauses {
		for _, lit := range clause {
			if n := abs(lit); n > numVars {
				numVars = n
			}
		}
	}
	s := sat.NewSolver(numVars, opts)
	for _, clause := range p.Clauses {
		lits := make([]sat.Lit, len(clause))
		for i, lit := range clause {
			lits[i] = sat.DimacsToLit(lit)
		}
		if err := s.AddClause(lits); err != nil {
			return nil, errors.Wrap(err, "dimacs: loading clause")
		}
	}
	return s, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// WriteModel prints a satisfying assignment in the conventional "v" line
// format: one signed literal per variable, terminated by a trailing 0.
func WriteModel(w io.Writer, model []int8) error {
	var sb strings.Builder
	sb.WriteString("v")
	for i, val := range model {
		n := i + 1
		if val < 0 {
			n = -n
		}
		fmt.Fprintf(&sb, " %d", n)
	}
	sb.WriteString(" 0\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
