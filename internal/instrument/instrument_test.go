package instrument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tsverify/internal/ast"
	"tsverify/internal/instrument"
	"tsverify/internal/interp"
)

func v(name string) *ast.Var { return &ast.Var{Name: name} }
func c(n int64) *ast.Const   { return &ast.Const{Value: n} }

func run(t *testing.T, p ast.Program, init ast.State, bound int) interp.Result {
	t.Helper()
	return interp.Run(p, init, bound)
}

func TestCollectVarsSplitsAssignedAndRead(t *testing.T) {
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "x", Expr: c(1)},
		&ast.Assign{Name: "y", Expr: v("x")},
		&ast.Output{Expr: v("y")},
	)
	assigned, read := instrument.CollectVars(p)
	assert.Equal(t, []string{"x", "y"}, assigned)
	assert.Equal(t, []string{"x", "y"}, read)
}

func TestRuntimeInstrumentationCountsElementarySteps(t *testing.T) {
	// Three elementary statements: two assigns and an output.
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "x", Expr: c(1)},
		&ast.Assign{Name: "y", Expr: c(2)},
		&ast.Output{Expr: v("y")},
	)
	instrumented, post := instrument.Runtime(p, 100)

	res := run(t, instrumented, ast.NewState(), 1000)
	assert.Equal(t, interp.Terminated, res.Status)

	ok, err := interp.EvalFormula(post, res.State)
	assert.NoError(t, err)
	assert.True(t, ok, "3 steps should satisfy #steps < 101")

	steps, _ := res.State.Get("#steps")
	assert.Equal(t, int64(3), steps)
}

func TestRuntimeInstrumentationWhileCostsOnlyBodySteps(t *testing.T) {
	// i := 0; while (i<5) do i := i+1 done -- 1 (i := 0) + 5 body
	// assigns = 6 elementary steps; the ghost #steps := 0 initialisation
	// does not count, and the while construct itself is free per spec
	// §4.3.1 and §9.
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "i", Expr: c(0)},
		&ast.While{
			Cond: &ast.Lt{Left: v("i"), Right: c(5)},
			Body: &ast.Assign{Name: "i", Expr: &ast.Sum{Left: v("i"), Right: c(1)}},
		},
	)
	instrumented, _ := instrument.Runtime(p, 100)
	res := run(t, instrumented, ast.NewState(), 1000)
	assert.Equal(t, interp.Terminated, res.Status)
	steps, _ := res.State.Get("#steps")
	assert.Equal(t, int64(6), steps)
}

func TestDefuseFlagsUseBeforeAssignment(t *testing.T) {
	// output y -- y is never assigned in source. A satisfying SMT
	// model would still give the free variable y some value, so the
	// replay init binds y directly rather than leaving it unbound.
	p := &ast.Output{Expr: v("y")}
	instrumented, post := instrument.Defuse(p)
	init := ast.NewState().Set("y", 42)
	res := run(t, instrumented, init, 1000)
	assert.Equal(t, interp.Terminated, res.Status)

	ok, err := interp.EvalFormula(post, res.State)
	assert.NoError(t, err)
	assert.False(t, ok, "reading an undefined variable must violate #violation == 0")
}

func TestDefuseAllowsDefineThenUse(t *testing.T) {
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "x", Expr: c(1)},
		&ast.Output{Expr: v("x")},
	)
	instrumented, post := instrument.Defuse(p)
	res := run(t, instrumented, ast.NewState(), 1000)
	ok, _ := interp.EvalFormula(post, res.State)
	assert.True(t, ok)
}

func TestDefuseFlagsUndefinedBranchVariable(t *testing.T) {
	// if (x<0) then y := 1 else skip endif; output y -- on the x>=0
	// branch y is read undefined.
	p := ast.SeqAll(ast.Position{},
		&ast.If{
			Cond: &ast.Lt{Left: v("x"), Right: c(0)},
			Then: &ast.Assign{Name: "y", Expr: c(1)},
			Else: &ast.Skip{},
		},
		&ast.Output{Expr: v("y")},
	)
	instrumented, post := instrument.Defuse(p)
	init := ast.NewState().Set("x", 5).Set("y", 0)
	res := run(t, instrumented, init, 1000)
	ok, _ := interp.EvalFormula(post, res.State)
	assert.False(t, ok, "the x>=0 branch never defines y before it is output")
}

func TestTaintPropagatesFromSourcePrefix(t *testing.T) {
	// sec_a := 7; output sec_a -- a source-named variable stays
	// tainted even though 7 is itself a clean literal: the name
	// identifies a sensitive channel, so every write to it counts as a
	// fresh read from that channel.
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "sec_a", Expr: c(7)},
		&ast.Output{Expr: v("sec_a")},
	)
	instrumented, post := instrument.Taint(p, "sec_")
	res := run(t, instrumented, ast.NewState(), 1000)
	ok, err := interp.EvalFormula(post, res.State)
	assert.NoError(t, err)
	assert.False(t, ok, "outputting a tainted source variable must leak")
}

func TestTaintPropagatesThroughExpression(t *testing.T) {
	// sec_a := 3; b := sec_a + 1; output b
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "sec_a", Expr: c(3)},
		&ast.Assign{Name: "b", Expr: &ast.Sum{Left: v("sec_a"), Right: c(1)}},
		&ast.Output{Expr: v("b")},
	)
	instrumented, post := instrument.Taint(p, "sec_")
	res := run(t, instrumented, ast.NewState(), 1000)
	ok, _ := interp.EvalFormula(post, res.State)
	assert.False(t, ok, "taint must propagate through an arithmetic expression")
}

func TestTaintDoesNotLeakUntaintedOutput(t *testing.T) {
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "x", Expr: c(1)},
		&ast.Output{Expr: v("x")},
	)
	instrumented, post := instrument.Taint(p, "sec_")
	res := run(t, instrumented, ast.NewState(), 1000)
	ok, _ := interp.EvalFormula(post, res.State)
	assert.True(t, ok)
}

func TestTaintIgnoresImplicitFlow(t *testing.T) {
	// if (sec_a == 1) then y := 1 else y := 0 endif; output y -- the
	// branch condition is tainted but explicit-flow-only taint must
	// not flag this.
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "sec_a", Expr: c(1)},
		&ast.If{
			Cond: &ast.Eq{Left: v("sec_a"), Right: c(1)},
			Then: &ast.Assign{Name: "y", Expr: c(1)},
			Else: &ast.Assign{Name: "y", Expr: c(0)},
		},
		&ast.Output{Expr: v("y")},
	)
	instrumented, post := instrument.Taint(p, "sec_")
	res := run(t, instrumented, ast.NewState(), 1000)
	ok, _ := interp.EvalFormula(post, res.State)
	assert.True(t, ok, "implicit flow through a branch condition is out of scope for this policy")
}

func TestTaintOrdinaryVariableClearsOnCleanReassignment(t *testing.T) {
	// b := sec_a; b := 5; output b -- reassigning a non-source
	// variable with a clean literal must clear its taint, unlike a
	// source-named variable which can never be cleaned this way.
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "sec_a", Expr: c(1)},
		&ast.Assign{Name: "b", Expr: v("sec_a")},
		&ast.Assign{Name: "b", Expr: c(5)},
		&ast.Output{Expr: v("b")},
	)
	instrumented, post := instrument.Taint(p, "sec_")
	res := run(t, instrumented, ast.NewState(), 1000)
	ok, _ := interp.EvalFormula(post, res.State)
	assert.True(t, ok, "b was cleaned by its second, clean assignment")
}

func TestTaintSurvivesSelfReferentialAssignment(t *testing.T) {
	// sec_a := 1; b := sec_a; b := b + 1; output b -- b's second
	// assignment reads its own (already tainted) value on the
	// right-hand side; the rewrite must not zero b's flag before that
	// self-read sees it.
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "sec_a", Expr: c(1)},
		&ast.Assign{Name: "b", Expr: v("sec_a")},
		&ast.Assign{Name: "b", Expr: &ast.Sum{Left: v("b"), Right: c(1)}},
		&ast.Output{Expr: v("b")},
	)
	instrumented, post := instrument.Taint(p, "sec_")
	res := run(t, instrumented, ast.NewState(), 1000)
	ok, _ := interp.EvalFormula(post, res.State)
	assert.False(t, ok, "b is still derived from sec_a after a self-referential reassignment")
}

func TestDefFlagAndTaintFlagNaming(t *testing.T) {
	assert.Equal(t, "#def_x", instrument.DefFlag("x"))
	assert.Equal(t, "#tnt_x", instrument.TaintFlag("x"))
}
