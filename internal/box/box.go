// Package box implements the bounded box-modality transformer: given
// a program α, a postcondition φ, an unrolling depth d and a strict
// flag, it produces a verification condition whose validity implies
// every terminating run of α (within d loop unrollings) ends in a
// state satisfying φ.
package box

import "tsverify/internal/ast"

// Box computes [α]φ, unrolling any while loop at most depth times. At
// depth zero a loop's residual obligation collapses to False when
// strict (treat "ran out of budget" as a potential violation) or True
// when not (treat it as out of scope for this check). internal/driver
// always calls with strict=true per §4.4; the runtime policy's extra
// leniency for an unconfirmed overflow is applied afterward, by the
// driver's interpreter-replay step, not by loosening strict here.
func Box(p ast.Program, phi ast.Formula, depth int, strict bool) ast.Formula {
	switch n := p.(type) {
	case *ast.Skip:
		return phi

	case *ast.Abort:
		return &ast.True{Position: n.Position}

	case *ast.Assign:
		return SubstFormula(phi, n.Name, n.Expr)

	case *ast.Output:
		return SubstFormula(phi, ast.StdoutVar, n.Expr)

	case *ast.Seq:
		return Box(n.Left, Box(n.Right, phi, depth, strict), depth, strict)

	case *ast.If:
		thenBranch := &ast.Implies{Left: n.Cond, Right: Box(n.Then, phi, depth, strict), Position: n.Position}
		elseBranch := &ast.Implies{
			Left:     &ast.Not{Operand: n.Cond, Position: n.Position},
			Right:    Box(n.Else, phi, depth, strict),
			Position: n.Position,
		}
		return &ast.And{Left: thenBranch, Right: elseBranch, Position: n.Position}

	case *ast.While:
		return boxWhile(n, phi, depth, strict)

	default:
		panic("internal error: unknown Program variant in Box")
	}
}

func boxWhile(w *ast.While, phi ast.Formula, depth int, strict bool) ast.Formula {
	if depth <= 0 {
		if strict {
			return &ast.False{Position: w.Position}
		}
		return &ast.True{Position: w.Position}
	}
	// §4.2's Seq axiom hands both sides of "α ; while..." the same
	// depth — only the recursive while itself decrements the budget —
	// so the loop body is boxed at the undiminished depth here.
	bodyThenRest := Box(w.Body, boxWhile(w, phi, depth-1, strict), depth, strict)
	enter := &ast.Implies{Left: w.Cond, Right: bodyThenRest, Position: w.Position}
	exit := &ast.Implies{
		Left:     &ast.Not{Operand: w.Cond, Position: w.Position},
		Right:    phi,
		Position: w.Position,
	}
	return &ast.And{Left: enter, Right: exit, Position: w.Position}
}
