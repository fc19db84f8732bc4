package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tsverify/internal/ast"
	"tsverify/internal/encoder"
	"tsverify/internal/smt"
)

func TestTermEncodesArithmeticHomomorphically(t *testing.T) {
	term := &ast.Sum{
		Left:  &ast.Const{Value: 2},
		Right: &ast.Product{Left: &ast.Var{Name: "x"}, Right: &ast.Const{Value: 3}},
	}
	got := encoder.Term(term)
	want := smt.Add{
		L: smt.IntLit{Value: 2},
		R: smt.Mul{L: smt.Const{Name: "x", Sort: smt.SortInt}, R: smt.IntLit{Value: 3}},
	}
	assert.Equal(t, want, got)
}

func TestFormulaEncodesConnectives(t *testing.T) {
	f := &ast.And{
		Left:  &ast.Lt{Left: &ast.Var{Name: "x"}, Right: &ast.Const{Value: 0}},
		Right: &ast.Not{Operand: &ast.Eq{Left: &ast.Var{Name: "y"}, Right: &ast.Const{Value: 1}}},
	}
	got := encoder.Formula(f)
	want := smt.And{
		L: smt.Lt{L: smt.Const{Name: "x", Sort: smt.SortInt}, R: smt.IntLit{Value: 0}},
		R: smt.Not{X: smt.Eq{L: smt.Const{Name: "y", Sort: smt.SortInt}, R: smt.IntLit{Value: 1}}},
	}
	assert.Equal(t, want, got)
}

func TestFormulaEncodesTrueFalseAndImplies(t *testing.T) {
	f := &ast.Implies{Left: &ast.True{}, Right: &ast.False{}}
	got := encoder.Formula(f)
	want := smt.Implies{L: smt.BoolLit{Value: true}, R: smt.BoolLit{Value: false}}
	assert.Equal(t, want, got)
}

func TestEveryVariableInternsToSameNamedConstant(t *testing.T) {
	f := &ast.Eq{Left: &ast.Var{Name: "x"}, Right: &ast.Var{Name: "x"}}
	got := encoder.Formula(f).(smt.Eq)
	assert.Equal(t, got.L, got.R)
}
