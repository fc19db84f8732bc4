// Package encoder maps internal/ast Terms and Formulas onto the
// internal/smt query language. Every TinyScript variable, source or
// ghost, is integer-sorted: the language has no other value type, so
// ghost boolean flags are represented as 0/1 integers compared with
// Eq, the same representation internal/instrument uses when it
// introduces them.
package encoder

import (
	"fmt"

	"tsverify/internal/ast"
	"tsverify/internal/smt"
)

// Term lowers an ast.Term to an smt.Term.
func Term(t ast.Term) smt.Term {
	switch n := t.(type) {
	case *ast.Const:
		return smt.IntLit{Value: n.Value}
	case *ast.Var:
		return smt.Const{Name: n.Name, Sort: smt.SortInt}
	case *ast.Sum:
		return smt.Add{L: Term(n.Left), R: Term(n.Right)}
	case *ast.Difference:
		return smt.Sub{L: Term(n.Left), R: Term(n.Right)}
	case *ast.Product:
		return smt.Mul{L: Term(n.Left), R: Term(n.Right)}
	default:
		panic(fmt.Sprintf("internal error: unknown Term variant %T in encoder", t))
	}
}

// Formula lowers an ast.Formula to an smt.Term of boolean sort.
func Formula(f ast.Formula) smt.Term {
	switch n := f.(type) {
	case *ast.True:
		return smt.BoolLit{Value: true}
	case *ast.False:
		return smt.BoolLit{Value: false}
	case *ast.Not:
		return smt.Not{X: Formula(n.Operand)}
	case *ast.And:
		return smt.And{L: Formula(n.Left), R: Formula(n.Right)}
	case *ast.Or:
		return smt.Or{L: Formula(n.Left), R: Formula(n.Right)}
	case *ast.Implies:
		return smt.Implies{L: Formula(n.Left), R: Formula(n.Right)}
	case *ast.Eq:
		return smt.Eq{L: Term(n.Left), R: Term(n.Right)}
	case *ast.Lt:
		return smt.Lt{L: Term(n.Left), R: Term(n.Right)}
	default:
		panic(fmt.Sprintf("internal error: unknown Formula variant %T in encoder", f))
	}
}
