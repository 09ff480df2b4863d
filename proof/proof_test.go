package proof

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/cdcl/sat"
)

func TestDRATWriterAddClause(t *testing.T) {
	var buf bytes.Buffer
	w := NewDRATWriter(&buf)

	w.AddClause([]sat.Lit{sat.DimacsToLit(1), sat.DimacsToLit(-2)})
	require.NoError(t, w.Flush())

	assert.Equal(t, "1 -2 0\n", buf.String())
}

func TestDRATWriterDeleteClause(t *testing.T) {
	var buf bytes.Buffer
	w := NewDRATWriter(&buf)

	w.DeleteClause([]sat.Lit{sat.DimacsToLit(3)})
	require.NoError(t, w.Flush())

	assert.Equal(t, "d 3 0\n", buf.String())
}

func TestDRATWriterEmptyClauseMeansUnsat(t *testing.T) {
	var buf bytes.Buffer
	w := NewDRATWriter(&buf)

	w.AddClause(nil)
	require.NoError(t, w.Flush())

	assert.Equal(t, "0\n", buf.String())
}

func TestDRATWriterMultipleRecords(t *testing.T) {
	var buf bytes.Buffer
	w := NewDRATWriter(&buf)

	w.AddClause([]sat.Lit{sat.DimacsToLit(1)})
	w.AddClause([]sat.Lit{sat.DimacsToLit(2), sat.DimacsToLit(-3)})
	w.DeleteClause([]sat.Lit{sat.DimacsToLit(1)})
	require.NoError(t, w.Flush())

	assert.Equal(t, "1 0\n2 -3 0\nd 1 0\n", buf.String())
}
