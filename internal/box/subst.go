package box

import "tsverify/internal/ast"

// SubstTerm replaces every occurrence of Var(name) in t with repl.
// TinyScript terms have no binders, so this is ordinary (not
// capture-avoiding) substitution.
func SubstTerm(t ast.Term, name string, repl ast.Term) ast.Term {
	switch n := t.(type) {
	case *ast.Const:
		return n
	case *ast.Var:
		if n.Name == name {
			return repl
		}
		return n
	case *ast.Sum:
		return &ast.Sum{Left: SubstTerm(n.Left, name, repl), Right: SubstTerm(n.Right, name, repl), Position: n.Position}
	case *ast.Difference:
		return &ast.Difference{Left: SubstTerm(n.Left, name, repl), Right: SubstTerm(n.Right, name, repl), Position: n.Position}
	case *ast.Product:
		return &ast.Product{Left: SubstTerm(n.Left, name, repl), Right: SubstTerm(n.Right, name, repl), Position: n.Position}
	default:
		panic("internal error: unknown Term variant in SubstTerm")
	}
}

// SubstFormula replaces every occurrence of Var(name) with repl
// throughout f.
func SubstFormula(f ast.Formula, name string, repl ast.Term) ast.Formula {
	switch n := f.(type) {
	case *ast.True:
		return n
	case *ast.False:
		return n
	case *ast.Not:
		return &ast.Not{Operand: SubstFormula(n.Operand, name, repl), Position: n.Position}
	case *ast.And:
		return &ast.And{Left: SubstFormula(n.Left, name, repl), Right: SubstFormula(n.Right, name, repl), Position: n.Position}
	case *ast.Or:
		return &ast.Or{Left: SubstFormula(n.Left, name, repl), Right: SubstFormula(n.Right, name, repl), Position: n.Position}
	case *ast.Implies:
		return &ast.Implies{Left: SubstFormula(n.Left, name, repl), Right: SubstFormula(n.Right, name, repl), Position: n.Position}
	case *ast.Eq:
		return &ast.Eq{Left: SubstTerm(n.Left, name, repl), Right: SubstTerm(n.Right, name, repl), Position: n.Position}
	case *ast.Lt:
		return &ast.Lt{Left: SubstTerm(n.Left, name, repl), Right: SubstTerm(n.Right, name, repl), Position: n.Position}
	default:
		panic("internal error: unknown Formula variant in SubstFormula")
	}
}
