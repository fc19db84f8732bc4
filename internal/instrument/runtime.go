package instrument

import "tsverify/internal/ast"

// Runtime rewrites p so a ghost "#steps" counter is incremented after
// every elementary statement (skip, assign, output, abort) — the same
// statements interp.Run charges against its step budget — and returns
// the postcondition "#steps < stepBound+1" asserting the count never
// exceeds stepBound. Entering or re-testing a while loop's condition
// costs nothing, matching interp's accounting.
func Runtime(p ast.Program, stepBound int) (ast.Program, ast.Formula) {
	pos := p.Pos()
	init := &ast.Assign{Name: "#steps", Expr: &ast.Const{Value: 0, Position: pos}, Position: pos}
	body := runtimeRewrite(p)
	instrumented := ast.SeqAll(pos, init, body)
	post := &ast.Lt{
		Left:     &ast.Var{Name: "#steps", Position: pos},
		Right:    &ast.Const{Value: int64(stepBound) + 1, Position: pos},
		Position: pos,
	}
	return instrumented, post
}

func incrStep(pos ast.Position) ast.Program {
	return &ast.Assign{
		Name:     "#steps",
		Expr:     &ast.Sum{Left: &ast.Var{Name: "#steps", Position: pos}, Right: &ast.Const{Value: 1, Position: pos}, Position: pos},
		Position: pos,
	}
}

func runtimeRewrite(p ast.Program) ast.Program {
	pos := p.Pos()
	switch n := p.(type) {
	case *ast.Skip, *ast.Assign, *ast.Output, *ast.Abort:
		return ast.SeqAll(pos, n, incrStep(pos))

	case *ast.Seq:
		return &ast.Seq{Left: runtimeRewrite(n.Left), Right: runtimeRewrite(n.Right), Position: pos}

	case *ast.If:
		return &ast.If{Cond: n.Cond, Then: runtimeRewrite(n.Then), Else: runtimeRewrite(n.Else), Position: pos}

	case *ast.While:
		return &ast.While{Cond: n.Cond, Body: runtimeRewrite(n.Body), Position: pos}

	default:
		panic("internal error: unknown Program variant in instrument.Runtime")
	}
}
