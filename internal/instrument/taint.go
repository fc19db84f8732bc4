package instrument

import (
	"strings"

	"tsverify/internal/ast"
)

// TaintFlag is the ghost variable name tracking whether v currently
// holds data derived from a source variable.
func TaintFlag(v string) string { return "#tnt_" + v }

// rhsTaintScratch is a single ghost flag reused across every ordinary
// assignment's rewrite to hold the OR over the right-hand side's
// operand taints before it is copied onto the assigned variable's own
// flag. It is live only between the two statements of one rewritten
// assignment, so reuse across assignments is safe, and its name
// (no underscore after "tnt") can never collide with a TaintFlag(v)
// for any source variable v.
const rhsTaintScratch = "#tntrhs"

// Taint rewrites p into a program that tracks explicit-flow taint only
// — propagation through assignment right-hand sides, never through a
// branch or loop condition — and a #leak flag that latches to 1 the
// first time a tainted value reaches output. sourcePrefix names the
// variables treated as tainted from the start (spec's --source-prefix
// flag); every other variable starts untainted.
//
// Implicit flow (branching on a tainted condition, then writing an
// untainted variable differently in each branch) is out of scope by
// construction: If and While rewriting never touches a condition's
// taint, only its own body/branches.
func Taint(p ast.Program, sourcePrefix string) (ast.Program, ast.Formula) {
	assigned, read := CollectVars(p)
	allVars := ast.Dedupe(append(append([]string{}, assigned...), read...))

	pos := p.Pos()
	var prelude []ast.Program
	for _, v := range allVars {
		init := int64(0)
		if strings.HasPrefix(v, sourcePrefix) {
			init = 1
		}
		prelude = append(prelude, &ast.Assign{Name: TaintFlag(v), Expr: &ast.Const{Value: init, Position: pos}, Position: pos})
	}
	prelude = append(prelude, &ast.Assign{Name: "#leak", Expr: &ast.Const{Value: 0, Position: pos}, Position: pos})

	body := taintRewrite(p, sourcePrefix)
	instrumented := ast.SeqAll(pos, append(prelude, body)...)
	post := &ast.Eq{Left: &ast.Var{Name: "#leak", Position: pos}, Right: &ast.Const{Value: 0, Position: pos}, Position: pos}
	return instrumented, post
}

// taintSourceCheck builds "if (#tnt_v == 1) then target := 1 else skip
// endif" for each v, the imperative OR this language has no boolean
// expression form to write directly.
func taintSourceCheck(pos ast.Position, vars []string, target string) []ast.Program {
	stmts := make([]ast.Program, 0, len(vars))
	for _, v := range vars {
		cond := &ast.Eq{Left: &ast.Var{Name: TaintFlag(v), Position: pos}, Right: &ast.Const{Value: 1, Position: pos}, Position: pos}
		then := &ast.Assign{Name: target, Expr: &ast.Const{Value: 1, Position: pos}, Position: pos}
		stmts = append(stmts, &ast.If{Cond: cond, Then: then, Else: &ast.Skip{Position: pos}, Position: pos})
	}
	return stmts
}

// taintRewrite walks p, threading sourcePrefix down so Assign can tell
// whether the variable being written is itself a source: a source
// name is always retainted on every write (it names a sensitive
// channel, not merely a value that happened to start out sensitive),
// while an ordinary variable's taint is purely the OR of its
// right-hand side's current taint, and so clears when reassigned a
// clean expression.
func taintRewrite(p ast.Program, sourcePrefix string) ast.Program {
	pos := p.Pos()
	switch n := p.(type) {
	case *ast.Skip, *ast.Abort:
		return n

	case *ast.Assign:
		if strings.HasPrefix(n.Name, sourcePrefix) {
			return ast.SeqAll(pos, n, &ast.Assign{Name: TaintFlag(n.Name), Expr: &ast.Const{Value: 1, Position: pos}, Position: pos})
		}
		// Accumulate the OR over the right-hand side's operands into a
		// scratch flag before touching #tnt_<name> itself, so a
		// self-referential assignment like "x := x + 1" reads its own
		// pre-assignment taint rather than a flag this same rewrite
		// already zeroed.
		stmts := []ast.Program{n, &ast.Assign{Name: rhsTaintScratch, Expr: &ast.Const{Value: 0, Position: pos}, Position: pos}}
		stmts = append(stmts, taintSourceCheck(pos, ast.TermVars(n.Expr), rhsTaintScratch)...)
		stmts = append(stmts, &ast.Assign{Name: TaintFlag(n.Name), Expr: &ast.Var{Name: rhsTaintScratch, Position: pos}, Position: pos})
		return ast.SeqAll(pos, stmts...)

	case *ast.Output:
		stmts := []ast.Program{n}
		stmts = append(stmts, taintSourceCheck(pos, ast.TermVars(n.Expr), "#leak")...)
		return ast.SeqAll(pos, stmts...)

	case *ast.Seq:
		return &ast.Seq{Left: taintRewrite(n.Left, sourcePrefix), Right: taintRewrite(n.Right, sourcePrefix), Position: pos}

	case *ast.If:
		return &ast.If{Cond: n.Cond, Then: taintRewrite(n.Then, sourcePrefix), Else: taintRewrite(n.Else, sourcePrefix), Position: pos}

	case *ast.While:
		return &ast.While{Cond: n.Cond, Body: taintRewrite(n.Body, sourcePrefix), Position: pos}

	default:
		panic("internal error: unknown Program variant in instrument.Taint")
	}
}
