// Package driver runs the end-to-end check: instrument, transform
// through the box modality with strict=true, dispatch the negated VC
// to an SMT solver, and map sat/unsat/unknown to the three-valued
// verdict. For the runtime policy a sat result is only reported as
// Violates once the reference interpreter confirms the model's trace
// actually consumes more than the step bound — a bounded unrolling can
// otherwise manufacture a sat witness purely from the "loop exhausted
// its budget" leaf with no real over-long execution behind it.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"tsverify/internal/ast"
	"tsverify/internal/box"
	"tsverify/internal/encoder"
	"tsverify/internal/instrument"
	"tsverify/internal/interp"
	"tsverify/internal/smt"
)

// Policy names the three instrumentations this verifier supports.
type Policy int

const (
	RuntimePolicy Policy = iota
	DefusePolicy
	TaintPolicy
)

// ParsePolicy accepts the CLI's policy names.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "runtime":
		return RuntimePolicy, nil
	case "defuse":
		return DefusePolicy, nil
	case "taint":
		return TaintPolicy, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want runtime, defuse, or taint)", s)
	}
}

func (p Policy) String() string {
	switch p {
	case RuntimePolicy:
		return "runtime"
	case DefusePolicy:
		return "defuse"
	case TaintPolicy:
		return "taint"
	default:
		return "unknown"
	}
}

// Verdict is the three-valued result a check can reach.
type Verdict string

const (
	Satisfies Verdict = "Satisfies"
	Violates  Verdict = "Violates"
	Unknown   Verdict = "Unknown"
)

// Options configures a single check.
type Options struct {
	Depth          int
	TimeoutSeconds int
	StepBound      int
	SourcePrefix   string
	SolverPath     string
	Logger         *logrus.Logger
}

// Result is a check's outcome.
type Result struct {
	Verdict Verdict
	Message string
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

// Check instruments prog for policy, computes its bounded box VC under
// strict=true, and asks an SMT solver whether the VC's negation is
// satisfiable.
func Check(prog ast.Program, policy Policy, opts Options) (Result, *Counterexample, error) {
	log := opts.logger().WithFields(logrus.Fields{"policy": policy, "depth": opts.Depth})

	instrumented, post := instrumentFor(policy, prog, opts)

	solver, err := smt.NewSolver(opts.SolverPath)
	if err != nil {
		return Result{}, nil, err
	}
	ctx := context.Background()
	timeout := time.Duration(opts.TimeoutSeconds) * time.Second

	vc := box.Box(instrumented, post, opts.Depth, true)
	log.Debug("checking VC")
	res, err := runQuery(ctx, solver, vc, timeout)
	if err != nil {
		return Result{}, nil, err
	}

	switch res.Status {
	case smt.SolverTimeout, smt.Unknown:
		return Result{Verdict: Unknown, Message: "solver could not decide the query within the timeout"}, nil, nil

	case smt.Unsat:
		return Result{Verdict: Satisfies, Message: "no violation within the unrolling bound"}, nil, nil
	}

	// res.Status == smt.Sat: a witness exists, but under strict=true it
	// may only exist because a loop ran out of unrolling budget. Replay
	// it through the interpreter to see what actually happens.
	model := smt.ParseModel(res.Model)
	ce, confirmed := replay(prog, instrumented, post, policy, opts, model)

	if policy == RuntimePolicy {
		// The runtime spec calls for this check specifically: a sat
		// result without a replayed trace that truly exceeds the step
		// bound is Unknown, not Violates.
		if !confirmed {
			return Result{Verdict: Unknown, Message: "model did not replay to a trace exceeding the step bound"}, nil, nil
		}
		return Result{Verdict: Violates, Message: "reproduced by the reference interpreter"}, ce, nil
	}

	if confirmed {
		return Result{Verdict: Violates, Message: "reproduced by the reference interpreter"}, ce, nil
	}
	return Result{Verdict: Violates, Message: "solver found a violation (interpreter replay was inconclusive)"}, nil, nil
}

func runQuery(ctx context.Context, solver *smt.Solver, vc ast.Formula, timeout time.Duration) (smt.CheckResult, error) {
	neg := &ast.Not{Operand: vc}
	smtTerm := smt.Simplify(encoder.Formula(neg))
	q := smt.NewQuery(smtTerm)
	return solver.Check(ctx, q, timeout)
}

func instrumentFor(policy Policy, prog ast.Program, opts Options) (ast.Program, ast.Formula) {
	switch policy {
	case RuntimePolicy:
		return instrument.Runtime(prog, opts.StepBound)
	case DefusePolicy:
		return instrument.Defuse(prog)
	case TaintPolicy:
		return instrument.Taint(prog, opts.SourcePrefix)
	default:
		panic("internal error: unknown Policy in instrumentFor")
	}
}

// initialStateFromModel seeds an ast.State with every non-ghost
// binding the solver's model assigned; ghost state is recomputed by
// replaying the instrumented program itself.
func initialStateFromModel(model map[string]int64) ast.State {
	s := ast.NewState()
	for name, v := range model {
		if !ast.IsReservedName(name) {
			s = s.Set(name, v)
		}
	}
	return s
}
