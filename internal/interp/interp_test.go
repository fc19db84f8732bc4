package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tsverify/internal/ast"
	"tsverify/internal/interp"
)

func v(name string) *ast.Var { return &ast.Var{Name: name} }
func c(n int64) *ast.Const   { return &ast.Const{Value: n} }

func TestRunSkipTerminatesAndCostsOneStep(t *testing.T) {
	res := interp.Run(&ast.Skip{}, ast.NewState(), 10)
	assert.Equal(t, interp.Terminated, res.Status)
	assert.Equal(t, 1, res.Steps)
}

func TestRunAbortNeverTerminates(t *testing.T) {
	res := interp.Run(&ast.Abort{}, ast.NewState(), 10)
	assert.Equal(t, interp.Aborted, res.Status)
}

func TestRunAssignUpdatesState(t *testing.T) {
	p := &ast.Assign{Name: "x", Expr: &ast.Sum{Left: c(2), Right: c(3)}}
	res := interp.Run(p, ast.NewState(), 10)
	assert.Equal(t, interp.Terminated, res.Status)
	got, ok := res.State.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(5), got)
}

func TestRunOutputRecordsTraceAndStdout(t *testing.T) {
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "x", Expr: c(9)},
		&ast.Output{Expr: v("x")},
	)
	res := interp.Run(p, ast.NewState(), 10)
	assert.Equal(t, interp.Terminated, res.Status)
	assert.Equal(t, []int64{9}, res.Output)
	stdout, ok := res.State.Get(ast.StdoutVar)
	assert.True(t, ok)
	assert.Equal(t, int64(9), stdout)
}

func TestRunUnboundVariableReadIsRuntimeError(t *testing.T) {
	res := interp.Run(&ast.Output{Expr: v("never_assigned")}, ast.NewState(), 10)
	assert.Equal(t, interp.RuntimeError, res.Status)
}

func TestRunIfTakesTrueBranch(t *testing.T) {
	p := &ast.If{
		Cond: &ast.Lt{Left: c(0), Right: c(1)},
		Then: &ast.Assign{Name: "y", Expr: c(1)},
		Else: &ast.Assign{Name: "y", Expr: c(2)},
	}
	res := interp.Run(p, ast.NewState(), 10)
	got, _ := res.State.Get("y")
	assert.Equal(t, int64(1), got)
}

func TestRunWhileLoopsUntilConditionFalse(t *testing.T) {
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "i", Expr: c(0)},
		&ast.While{
			Cond: &ast.Lt{Left: v("i"), Right: c(5)},
			Body: &ast.Assign{Name: "i", Expr: &ast.Sum{Left: v("i"), Right: c(1)}},
		},
	)
	res := interp.Run(p, ast.NewState(), 1000)
	assert.Equal(t, interp.Terminated, res.Status)
	got, _ := res.State.Get("i")
	assert.Equal(t, int64(5), got)
}

func TestRunWhileChargesOnlyBodySteps(t *testing.T) {
	// Per spec §9: entering/re-testing a while costs nothing, only the
	// body's elementary statements consume the step budget. i:=0 (1
	// step) + 5 body assigns (5 steps) == 6 total, regardless of the 6
	// condition evaluations the loop performs.
	p := ast.SeqAll(ast.Position{},
		&ast.Assign{Name: "i", Expr: c(0)},
		&ast.While{
			Cond: &ast.Lt{Left: v("i"), Right: c(5)},
			Body: &ast.Assign{Name: "i", Expr: &ast.Sum{Left: v("i"), Right: c(1)}},
		},
	)
	res := interp.Run(p, ast.NewState(), 1000)
	assert.Equal(t, 6, res.Steps)
}

func TestRunStepLimitExceeded(t *testing.T) {
	p := &ast.While{Cond: &ast.True{}, Body: &ast.Skip{}}
	res := interp.Run(p, ast.NewState(), 50)
	assert.Equal(t, interp.StepLimitExceeded, res.Status)
	assert.Equal(t, 50, res.Steps)
}

func TestEvalTermArithmetic(t *testing.T) {
	s := ast.NewState().Set("x", 10)
	got, err := interp.EvalTerm(&ast.Difference{Left: v("x"), Right: c(3)}, s)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestEvalFormulaShortCircuitsAnd(t *testing.T) {
	got, err := interp.EvalFormula(&ast.And{Left: &ast.False{}, Right: &ast.True{}}, ast.NewState())
	assert.NoError(t, err)
	assert.False(t, got)
}

func TestEvalFormulaImplies(t *testing.T) {
	got, err := interp.EvalFormula(&ast.Implies{Left: &ast.False{}, Right: &ast.False{}}, ast.NewState())
	assert.NoError(t, err)
	assert.True(t, got, "false implies anything")
}
