package driver

import (
	"fmt"

	"tsverify/internal/ast"
	"tsverify/internal/interp"
)

// Counterexample is a concrete, interpreter-confirmed violation: the
// inputs the solver found plus the trace and final state the
// interpreter produced from them. It mirrors the shape surfaced by
// other static analyzers' formal-verification reports, trimmed to what
// this verifier can actually reconstruct (no symbolic call stack,
// since TinyScript has no calls).
type Counterexample struct {
	Inputs     map[string]int64
	Trace      []int64
	FinalState map[string]int64
	Note       string
}

// replay seeds an initial state from the solver's model, runs the
// program through the reference interpreter, and checks that the run
// actually exhibits the violation the model predicted — rejecting a
// model that only exists because the box transformer gave an exhausted
// loop the benefit of the doubt. The runtime policy replays the
// original program, so the interpreter's step count is the count of
// its elementary statements and not of the #steps increments too;
// the other policies replay the instrumented program, whose ghost
// state their postcondition reads.
func replay(original, instrumented ast.Program, post ast.Formula, policy Policy, opts Options, model map[string]int64) (*Counterexample, bool) {
	init := initialStateFromModel(model)
	stepCap := replayStepCap(policy, opts)

	target := instrumented
	if policy == RuntimePolicy {
		target = original
	}
	result := interp.Run(target, init, stepCap)

	violated, note := checkViolation(result, post, policy, opts)
	if !violated {
		return nil, false
	}

	return &Counterexample{
		Inputs:     snapshotInputs(init),
		Trace:      result.Output,
		FinalState: snapshotFinal(result.State),
		Note:       note,
	}, true
}

// effectiveStepBound is the step bound replay and confirmation agree on:
// opts.StepBound, or a generous default when the caller left it unset.
func effectiveStepBound(opts Options) int {
	if opts.StepBound <= 0 {
		return 10000
	}
	return opts.StepBound
}

func replayStepCap(policy Policy, opts Options) int {
	bound := effectiveStepBound(opts)
	if policy == RuntimePolicy {
		// §4.4/§4.5: replay with a step cap of exactly N+1 so a trace
		// that merely exceeds the bound — without running forever —
		// is still observed to cross it, not masked by extra headroom.
		return bound + 1
	}
	// Give defuse/taint instrumentation, which adds several statements
	// per original one, generous headroom over the raw step bound.
	return bound*8 + 1000
}

func checkViolation(result interp.Result, post ast.Formula, policy Policy, opts Options) (bool, string) {
	switch policy {
	case RuntimePolicy:
		// A trace confirms the runtime violation whenever it consumes
		// more than the step bound, whether the interpreter hit its
		// cap mid-run (StepLimitExceeded) or the program happened to
		// terminate right at or past the overflow (Terminated with
		// Steps > StepBound).
		if result.Steps > effectiveStepBound(opts) {
			return true, fmt.Sprintf("interpreter exceeded the step bound after %d steps", result.Steps)
		}
		return false, ""

	default:
		if result.Status != interp.Terminated {
			return false, ""
		}
		ok, err := interp.EvalFormula(post, result.State)
		if err != nil {
			return false, ""
		}
		if ok {
			return false, ""
		}
		return true, fmt.Sprintf("terminated after %d steps with the postcondition false", result.Steps)
	}
}

func snapshotInputs(s ast.State) map[string]int64 {
	out := make(map[string]int64, len(s))
	for k, v := range s {
		if !ast.IsReservedName(k) {
			out[k] = v
		}
	}
	return out
}

func snapshotFinal(s ast.State) map[string]int64 {
	out := make(map[string]int64, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
