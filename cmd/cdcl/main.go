// Command cdcl is a DIMACS CNF solver driving package sat, reporting the
// conventional SAT/UNSAT output and optionally writing a DRAT proof.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/cdcl/dimacs"
	"github.com/xDarkicex/cdcl/model"
	"github.com/xDarkicex/cdcl/proof"
	"github.com/xDarkicex/cdcl/sat"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	proofPath string
	verbose   bool
	opts      = sat.DefaultOptions()
)

var rootCmd = &cobra.Command{
	Use:   "cdcl [input.cnf]",
	Short: "A CDCL SAT solver with inprocessing",
	Long: `cdcl reads a single problem specification in the DIMACS CNF format and
reports SAT with a satisfying assignment or UNSAT. If no input file is
given, cdcl reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&proofPath, "proof", "", "write a DRAT proof to this path")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	flags.IntVar(&opts.Chrono, "chrono", opts.Chrono, "enable chronological backtracking")
	flags.IntVar(&opts.ChronoLevels, "chrono-levels", opts.ChronoLevels, "max back-jump gap before chronological backtracking")
	flags.IntVar(&opts.Minimize, "minimize", opts.Minimize, "enable recursive clause minimization")
	flags.IntVar(&opts.Shrink, "shrink", opts.Shrink, "enable same-level block shrinking")
	flags.IntVar(&opts.Bump, "bump", opts.Bump, "enable VMTF/EVSIDS bumping")
	flags.IntVar(&opts.EagerSubsume, "eager-subsume", opts.EagerSubsume, "window size for eager subsumption of learned clauses")
	flags.IntVar(&opts.Eliminate, "eliminate", opts.Eliminate, "enable bounded variable elimination")
	flags.IntVar(&opts.EliminateOccLim, "eliminate-occ-limit", opts.EliminateOccLim, "max occurrences for an elimination candidate")
	flags.IntVar(&opts.Forward, "forward-subsume", opts.Forward, "enable forward subsumption")
	flags.IntVar(&opts.Substitute, "substitute", opts.Substitute, "enable equivalence substitution")
	flags.IntVar(&opts.Sweep, "sweep", opts.Sweep, "enable SAT sweeping")
	flags.IntVar(&opts.SweepVars, "sweep-vars", opts.SweepVars, "variables examined per sweep round")
	flags.IntVar(&opts.Congruence, "congruence", opts.Congruence, "enable gate congruence closure")
	flags.IntVar(&opts.Transitive, "transitive", opts.Transitive, "enable transitive reduction of binary clauses")
	flags.IntVar(&opts.Vivify, "vivify", opts.Vivify, "enable clause vivification")
	flags.IntVar(&opts.Factor, "factor", opts.Factor, "enable structural factoring")
	flags.IntVar(&opts.Reduce, "reduce", opts.Reduce, "enable periodic clause database reduction")
	flags.IntVar(&opts.Rephase, "rephase", opts.Rephase, "enable phase rotation")
	flags.IntVar(&opts.Warmup, "warmup", opts.Warmup, "enable the pre-search warmup propagation pass")
	flags.IntVar(&opts.Stable, "stable", opts.Stable, "start in stable (EVSIDS/Luby) mode instead of focused (VMTF)")
	flags.IntVar(&opts.WalkEnabled, "walk", opts.WalkEnabled, "enable local-search rephasing")
}

func run(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	opts.Logger = sat.NewLogger(logger)
	opts.Debug = verbose

	var r = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	problem, err := dimacs.Parse(r)
	if err != nil {
		return err
	}

	s, err := dimacs.LoadSolver(problem, opts)
	if err != nil {
		return err
	}

	if proofPath != "" {
		f, err := os.Create(proofPath)
		if err != nil {
			return err
		}
		defer f.Close()
		writer := proof.NewDRATWriter(f)
		s.SetProofSink(writer)
		defer writer.Flush()
	}

	switch s.Solve() {
	case sat.Unsatisfiable:
		fmt.Println("UNSAT")
	case sat.Satisfiable:
		fmt.Println("SAT")
		return model.Write(os.Stdout, s.ExternalModel())
	default:
		fmt.Println("UNKNOWN")
	}
	return nil
}
