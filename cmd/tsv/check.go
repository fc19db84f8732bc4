package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tsverify/internal/driver"
	"tsverify/internal/parser"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <policy> <file>",
		Short: "Check a TinyScript program against a policy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], args[1])
		},
	}
	return cmd
}

func runCheck(policyName, path string) error {
	policy, err := driver.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	prog, err := parser.ParseFile(path)
	if err != nil {
		return dataError(err)
	}

	opts := driver.Options{
		Depth:          flagDepth,
		TimeoutSeconds: flagTimeout,
		StepBound:      flagStepBound,
		SourcePrefix:   flagSourcePrefix,
		SolverPath:     flagSolverPath,
		Logger:         logrus.StandardLogger(),
	}

	result, ce, err := driver.Check(prog, policy, opts)
	if err != nil {
		return dataError(err)
	}

	printResult(path, policy, result, ce)

	switch result.Verdict {
	case driver.Satisfies:
		os.Exit(0)
	case driver.Violates:
		os.Exit(1)
	default:
		os.Exit(2)
	}
	return nil
}

func printResult(path string, policy driver.Policy, result driver.Result, ce *driver.Counterexample) {
	label := color.New(color.Bold).Sprint(result.Verdict)
	switch result.Verdict {
	case driver.Satisfies:
		label = color.New(color.Bold, color.FgGreen).Sprint(result.Verdict)
	case driver.Violates:
		label = color.New(color.Bold, color.FgRed).Sprint(result.Verdict)
	case driver.Unknown:
		label = color.New(color.Bold, color.FgYellow).Sprint(result.Verdict)
	}

	fmt.Printf("%s [%s] %s: %s\n", label, policy, path, result.Message)
	if ce != nil {
		fmt.Println("  inputs:", ce.Inputs)
		fmt.Println("  output trace:", ce.Trace)
		fmt.Println("  final state:", ce.FinalState)
	}
}
