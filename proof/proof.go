// Package proof implements a DRAT proof writer satisfying sat.ProofSink,
// the external collaborator §6 describes behind the core's narrow
// add/delete interface.
package proof

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/xDarkicex/cdcl/sat"
)

// DRATWriter emits clause addition/deletion records in the standard
// (binary-free, plain text) DRAT format: an added clause is its literals
// followed by "0"; a deleted clause is "d" followed by its literals and a
// trailing "0".
type DRATWriter struct {
	w   *bufio.Writer
	err error
}

// NewDRATWriter wraps w, buffering output the way most proof producers do
// since proofs can run to many millions of lines.
func NewDRATWriter(w io.Writer) *DRATWriter {
	return &DRATWriter{w: bufio.NewWriterSize(w, 1<<20)}
}

func (d *DRATWriter) AddClause(lits []sat.Lit) {
	if d.err != nil {
		return
	}
	d.writeLine(lits, false)
}

func (d *DRATWriter) DeleteClause(lits []sat.Lit) {
	if d.err != nil {
		return
	}
	d.writeLine(lits, true)
}

func (d *DRATWriter) writeLine(lits []sat.Lit, deletion bool) {
	if deletion {
		if _, err := d.w.WriteString("d "); err != nil {
			d.err = err
			return
		}
	}
	for _, l := range lits {
		if _, err := d.w.WriteString(itoa(l.Dimacs())); err != nil {
			d.err = err
			return
		}
		if err := d.w.WriteByte(' '); err != nil {
			d.err = err
			return
		}
	}
	if _, err := d.w.WriteString("0\n"); err != nil {
		d.err = err
	}
}

// Flush writes any buffered proof lines to the underlying writer.
func (d *DRATWriter) Flush() error {
	if d.err != nil {
		return errors.Wrap(d.err, "proof: writing DRAT record")
	}
	if err := d.w.Flush(); err != nil {
		return errors.Wrap(err, "proof: flushing DRAT writer")
	}
	return nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
