// Package instrument rewrites a program and postcondition pair into an
// instrumented form whose box-modality VC is valid exactly when the
// program complies with one of three policies: a runtime step bound,
// define-before-use, and taint non-interference.
package instrument

import "tsverify/internal/ast"

// CollectVars walks p once and returns the set of assigned variables
// and the set of read variables, each deduplicated in first-seen
// order. Defuse and taint instrumentation both call it: a ghost flag
// is introduced per variable in either set, and every read site is
// where the flag is consulted.
func CollectVars(p ast.Program) (assigned, read []string) {
	var a, r []string
	walk(p, &a, &r)
	return ast.Dedupe(a), ast.Dedupe(r)
}

func walk(p ast.Program, assigned, read *[]string) {
	switch n := p.(type) {
	case *ast.Skip, *ast.Abort:
	case *ast.Assign:
		*assigned = append(*assigned, n.Name)
		*read = append(*read, ast.TermVars(n.Expr)...)
	case *ast.Output:
		*read = append(*read, ast.TermVars(n.Expr)...)
	case *ast.Seq:
		walk(n.Left, assigned, read)
		walk(n.Right, assigned, read)
	case *ast.If:
		*read = append(*read, ast.FormulaVars(n.Cond)...)
		walk(n.Then, assigned, read)
		walk(n.Else, assigned, read)
	case *ast.While:
		*read = append(*read, ast.FormulaVars(n.Cond)...)
		walk(n.Body, assigned, read)
	default:
		panic("internal error: unknown Program variant in instrument.CollectVars")
	}
}
