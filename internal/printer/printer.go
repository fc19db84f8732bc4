// Package printer renders ast trees back to TinyScript source,
// following the layout the original lab's pretty-printer used:
// semicolon-newline statement separators and two-space indent for
// if/while bodies. Parentheses are reinserted wherever precedence
// would otherwise change the parse, since the ast stores no parens of
// its own.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"tsverify/internal/ast"
)

const indentUnit = "  "

// Program renders p as canonical TinyScript source, with no trailing
// newline.
func Program(p ast.Program) string {
	var b strings.Builder
	writeProgram(&b, p, 0)
	return b.String()
}

// Term renders t with minimal necessary parenthesization.
func Term(t ast.Term) string { return termPrec(t, 0) }

// Formula renders f with minimal necessary parenthesization.
func Formula(f ast.Formula) string { return formulaPrec(f, 0) }

func writeProgram(b *strings.Builder, p ast.Program, level int) {
	stmts := flattenSeq(p)
	for i, s := range stmts {
		if i > 0 {
			b.WriteString(";\n")
		}
		b.WriteString(strings.Repeat(indentUnit, level))
		writeStmt(b, s, level)
	}
}

// flattenSeq recovers the original statement list from a
// left-associative Seq chain, in source order.
func flattenSeq(p ast.Program) []ast.Program {
	seq, ok := p.(*ast.Seq)
	if !ok {
		return []ast.Program{p}
	}
	return append(flattenSeq(seq.Left), seq.Right)
}

func writeStmt(b *strings.Builder, p ast.Program, level int) {
	switch n := p.(type) {
	case *ast.Skip:
		b.WriteString("skip")
	case *ast.Abort:
		b.WriteString("abort")
	case *ast.Output:
		b.WriteString("output ")
		b.WriteString(Term(n.Expr))
	case *ast.Assign:
		b.WriteString(n.Name)
		b.WriteString(" := ")
		b.WriteString(Term(n.Expr))
	case *ast.If:
		fmt.Fprintf(b, "if (%s) then\n", Formula(n.Cond))
		writeProgram(b, n.Then, level+1)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(indentUnit, level))
		b.WriteString("else\n")
		writeProgram(b, n.Else, level+1)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(indentUnit, level))
		b.WriteString("endif")
	case *ast.While:
		fmt.Fprintf(b, "while (%s) do\n", Formula(n.Cond))
		writeProgram(b, n.Body, level+1)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(indentUnit, level))
		b.WriteString("done")
	case *ast.Seq:
		// Reached when a Seq is the right child of its parent:
		// flattenSeq only unrolls left-nested chains and passes such a
		// right child on whole.
		writeProgram(b, n, level)
	default:
		panic(fmt.Sprintf("internal error: unknown Program variant %T in printer", p))
	}
}

// termPrec levels: atoms 3, Product 2, Sum/Difference 1.
func termPrec(t ast.Term, minPrec int) string {
	var s string
	prec := 3
	switch n := t.(type) {
	case *ast.Const:
		s = strconv.FormatInt(n.Value, 10)
	case *ast.Var:
		s = n.Name
	case *ast.Sum:
		prec = 1
		s = termPrec(n.Left, 1) + " + " + termPrec(n.Right, 2)
	case *ast.Difference:
		prec = 1
		s = termPrec(n.Left, 1) + " - " + termPrec(n.Right, 2)
	case *ast.Product:
		prec = 2
		s = termPrec(n.Left, 2) + " * " + termPrec(n.Right, 3)
	default:
		panic(fmt.Sprintf("internal error: unknown Term variant %T in printer", t))
	}
	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}

// formulaPrec levels: atoms/compare 5, Not 4, And 3, Or 2, Implies 1.
func formulaPrec(f ast.Formula, minPrec int) string {
	var s string
	prec := 5
	switch n := f.(type) {
	case *ast.True:
		s = "true"
	case *ast.False:
		s = "false"
	case *ast.Eq:
		s = Term(n.Left) + " == " + Term(n.Right)
	case *ast.Lt:
		s = Term(n.Left) + " < " + Term(n.Right)
	case *ast.Not:
		prec = 4
		s = "!" + formulaPrec(n.Operand, 5)
	case *ast.And:
		prec = 3
		s = formulaPrec(n.Left, 3) + " && " + formulaPrec(n.Right, 4)
	case *ast.Or:
		prec = 2
		s = formulaPrec(n.Left, 2) + " || " + formulaPrec(n.Right, 3)
	case *ast.Implies:
		prec = 1
		s = formulaPrec(n.Left, 1) + " -> " + formulaPrec(n.Right, 2)
	default:
		panic(fmt.Sprintf("internal error: unknown Formula variant %T in printer", f))
	}
	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}
