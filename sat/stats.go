package sat

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Entry so every subsystem can log structured
// fields without allocating in the hot loop when logging is disabled
// (SPEC_FULL.md §1.1). A nil-output logrus.Logger is used by
// NewNullLogger so passes can log unconditionally without a nil check.
type Logger struct {
	entry *logrus.Entry
}

// NewNullLogger builds a Logger that discards everything, the default
// installed by DefaultOptions so passes never need a nil check.
func NewNullLogger() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{entry: logrus.NewEntry(l)}
}

// NewLogger wraps an existing logrus.Logger, e.g. one cmd/cdcl configured
// from --verbose.
func NewLogger(l *logrus.Logger) *Logger {
	return &Logger{entry: logrus.NewEntry(l)}
}

func (lg *Logger) with(fields logrus.Fields) *logrus.Entry {
	if lg == nil || lg.entry == nil {
		return logrus.NewEntry(logrus.New())
	}
	return lg.entry.WithFields(fields)
}

func (lg *Logger) Debugf(fields logrus.Fields, format string, args ...interface{}) {
	lg.with(fields).Debugf(format, args...)
}

func (lg *Logger) Infof(fields logrus.Fields, format string, args ...interface{}) {
	lg.with(fields).Infof(format, args...)
}

// Statistics accumulates the counters every pass contributes to (§2
// component list "rough share" figures are per-pass; these are the
// runtime counters each pass actually increments).
type Statistics struct {
	Decisions     int64
	Propagations  int64
	Conflicts     int64
	Restarts      int64
	Reductions    int64
	Rephases      int64
	ModeSwitches  int64

	SearchTicks       int64
	SearchPropagations int64
	ProbingTicks      int64

	LearnedUnits   int64
	LearnedBinary  int64
	LearnedLong    int64
	Minimized      int64
	Shrunk         int64

	EliminatedVars   int64
	SubstitutedVars  int64
	SubsumedClauses  int64
	VivifiedClauses  int64
	BackboneUnits    int64
	TransitiveRemoved int64
	SweptBackbones   int64
	SweptEquivalences int64
	CongruenceGates  int64
	CongruenceMerges int64
	FactoredVars     int64
	WalkFlips        int64
}
