package smt

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CheckStatus is the solver's verdict on a single query.
type CheckStatus int

const (
	Sat CheckStatus = iota
	Unsat
	Unknown
	SolverTimeout
)

func (s CheckStatus) String() string {
	switch s {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	case SolverTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// CheckResult is what a solver run returns: the verdict plus the raw
// model text when sat, for counterexample replay.
type CheckResult struct {
	Status CheckStatus
	Model  string
}

// Solver wraps an external SMT-LIB2 solver binary (z3 by default,
// anything accepting "-in" on stdin works), the same invocation shape
// as the contract verifier's runZ3.
type Solver struct {
	Path string
}

// NewSolver resolves path on $PATH, defaulting to "z3".
func NewSolver(path string) (*Solver, error) {
	if path == "" {
		path = "z3"
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("solver %q not found on PATH: %w", path, err)
	}
	return &Solver{Path: resolved}, nil
}

// Check runs q against the solver with the given wall-clock timeout.
func (s *Solver) Check(ctx context.Context, q *Query, timeout time.Duration) (CheckResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Path, "-in")
	cmd.Stdin = strings.NewReader(q.SMTLIB2())
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return CheckResult{Status: SolverTimeout}, nil
	}
	if err != nil {
		return CheckResult{}, fmt.Errorf("solver invocation failed: %w (stderr: %s)", err, errBuf.String())
	}

	text := out.String()
	firstLine := strings.SplitN(strings.TrimSpace(text), "\n", 2)[0]
	switch strings.TrimSpace(firstLine) {
	case "unsat":
		return CheckResult{Status: Unsat}, nil
	case "sat":
		return CheckResult{Status: Sat, Model: text}, nil
	case "timeout":
		return CheckResult{Status: SolverTimeout}, nil
	default:
		return CheckResult{Status: Unknown, Model: text}, nil
	}
}
