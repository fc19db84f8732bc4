// Package main is tsv, the TinyScript verifier CLI: parse, format,
// check a program against a policy, score a batch against ground
// truth, or serve an LSP session.
package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDepth        int
	flagTimeout      int
	flagStepBound    int
	flagSourcePrefix string
	flagNoColor      bool
	flagSolverPath   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tsv",
		Short: "Bounded symbolic verifier for TinyScript programs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagNoColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().IntVar(&flagDepth, "depth", 1, "loop unrolling bound for the box transformer")
	root.PersistentFlags().IntVar(&flagTimeout, "timeout", 10, "solver timeout in seconds")
	root.PersistentFlags().IntVar(&flagStepBound, "step-bound", 100, "runtime-policy step bound")
	root.PersistentFlags().StringVar(&flagSourcePrefix, "source-prefix", "sec_", "taint-policy tainted-variable name prefix")
	root.PersistentFlags().StringVar(&flagSolverPath, "solver", "", "path to the SMT-LIB2 solver binary (default: z3 on PATH)")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newLSPCmd())

	root.SilenceUsage = true
	root.SilenceErrors = true
	return root
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("%v", r)
			os.Exit(70)
		}
	}()

	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	logrus.Error(err)

	var de *dataErr
	if errors.As(err, &de) {
		os.Exit(65)
	}
	os.Exit(64)
}
