package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tsverify/internal/driver"
	"tsverify/internal/groundtruth"
	"tsverify/internal/parser"
)

func newScoreCmd() *cobra.Command {
	var truthPath string
	cmd := &cobra.Command{
		Use:   "score <dir>",
		Short: "Score check results for every *.ts file in a directory against ground truth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if truthPath == "" {
				return fmt.Errorf("--truth is required")
			}
			return runScore(truthPath, args[0])
		},
	}
	cmd.Flags().StringVar(&truthPath, "truth", "", "path to the ground-truth JSON file")
	return cmd
}

func runScore(truthPath, dir string) error {
	truth, err := groundtruth.Load(truthPath)
	if err != nil {
		return dataError(err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.ts"))
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

	var reports []groundtruth.Report
	for _, file := range files {
		caseName := strings.TrimSuffix(filepath.Base(file), ".ts")
		entry, ok := truth[caseName]
		if !ok {
			fmt.Printf("skip %s: no ground truth entry\n", caseName)
			continue
		}

		prog, err := parser.ParseFile(file)
		if err != nil {
			fmt.Printf("%s: parse error: %v\n", caseName, err)
			continue
		}

		for _, policy := range []driver.Policy{driver.RuntimePolicy, driver.DefusePolicy, driver.TaintPolicy} {
			result, _, err := driver.Check(prog, policy, opts)
			if err != nil {
				fmt.Printf("%s [%s]: error: %v\n", caseName, policy, err)
				continue
			}
			want := entry.ForPolicy(policy)
			points := groundtruth.Score(result.Verdict, want)
			reports = append(reports, groundtruth.Report{
				Case: caseName, Policy: policy, Predicted: result.Verdict, Truth: want, Points: points,
			})
			fmt.Printf("%-24s %-8s predicted=%-10s truth=%-10s points=%.2f\n",
				caseName, policy, result.Verdict, want, points)
		}
	}

	points, max := groundtruth.Summarize(reports)
	fmt.Printf("\ntotal: %.2f / %.2f\n", points, max)
	return nil
}
