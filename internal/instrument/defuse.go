package instrument

import "tsverify/internal/ast"

// DefFlag is the ghost variable name tracking whether v has been
// assigned yet.
func DefFlag(v string) string { return "#def_" + v }

// Defuse rewrites p into a program that maintains one #def_v flag per
// variable and a #violation flag that latches to 1 the first time a
// variable is read before any assignment to it reached that point. It
// returns the rewritten program and the postcondition ("#violation ==
// 0") whose VC is valid exactly when p never reads before defining.
//
// A while loop's guard is re-read on every iteration, so the check for
// its variables is run both before the loop (covering the first test)
// and at the end of the body (covering every subsequent test) — this
// keeps the check aligned with how Box unrolls the loop, rather than
// needing a separate instrumented loop condition.
func Defuse(p ast.Program) (ast.Program, ast.Formula) {
	assigned, read := CollectVars(p)
	allVars := ast.Dedupe(append(append([]string{}, assigned...), read...))

	pos := p.Pos()
	var prelude []ast.Program
	for _, v := range allVars {
		prelude = append(prelude, &ast.Assign{Name: DefFlag(v), Expr: &ast.Const{Value: 0, Position: pos}, Position: pos})
	}
	prelude = append(prelude, &ast.Assign{Name: "#violation", Expr: &ast.Const{Value: 0, Position: pos}, Position: pos})

	body := defuseRewrite(p)
	instrumented := ast.SeqAll(pos, append(prelude, body)...)
	post := &ast.Eq{Left: &ast.Var{Name: "#violation", Position: pos}, Right: &ast.Const{Value: 0, Position: pos}, Position: pos}
	return instrumented, post
}

func checkReads(pos ast.Position, vars []string) ast.Program {
	stmts := make([]ast.Program, 0, len(vars))
	for _, v := range vars {
		cond := &ast.Eq{Left: &ast.Var{Name: DefFlag(v), Position: pos}, Right: &ast.Const{Value: 0, Position: pos}, Position: pos}
		then := &ast.Assign{Name: "#violation", Expr: &ast.Const{Value: 1, Position: pos}, Position: pos}
		stmts = append(stmts, &ast.If{Cond: cond, Then: then, Else: &ast.Skip{Position: pos}, Position: pos})
	}
	return ast.SeqAll(pos, stmts...)
}

func defuseRewrite(p ast.Program) ast.Program {
	pos := p.Pos()
	switch n := p.(type) {
	case *ast.Skip, *ast.Abort:
		return n

	case *ast.Assign:
		checks := checkReads(pos, ast.TermVars(n.Expr))
		markDef := &ast.Assign{Name: DefFlag(n.Name), Expr: &ast.Const{Value: 1, Position: pos}, Position: pos}
		return ast.SeqAll(pos, checks, n, markDef)

	case *ast.Output:
		checks := checkReads(pos, ast.TermVars(n.Expr))
		return ast.SeqAll(pos, checks, n)

	case *ast.Seq:
		return &ast.Seq{Left: defuseRewrite(n.Left), Right: defuseRewrite(n.Right), Position: pos}

	case *ast.If:
		checks := checkReads(pos, ast.FormulaVars(n.Cond))
		rewritten := &ast.If{Cond: n.Cond, Then: defuseRewrite(n.Then), Else: defuseRewrite(n.Else), Position: pos}
		return ast.SeqAll(pos, checks, rewritten)

	case *ast.While:
		checks := checkReads(pos, ast.FormulaVars(n.Cond))
		newBody := ast.SeqAll(pos, defuseRewrite(n.Body), checks)
		rewritten := &ast.While{Cond: n.Cond, Body: newBody, Position: pos}
		return ast.SeqAll(pos, checks, rewritten)

	default:
		panic("internal error: unknown Program variant in instrument.Defuse")
	}
}
