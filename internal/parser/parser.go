// Package parser converts the participle concrete syntax tree in
// grammar/ into the internal/ast sum types, left-folding each
// precedence tier's flat operator list into a proper binary tree and
// rejecting source identifiers reserved for ghost state.
package parser

import (
	"fmt"
	"os"
	"strconv"

	"tsverify/grammar"
	"tsverify/internal/ast"
	"tsverify/internal/diag"
)

// ParseFile parses and converts a TinyScript source file.
func ParseFile(path string) (ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ParseString parses and converts source text; name labels positions.
func ParseString(name, source string) (ast.Program, error) {
	cst, err := grammar.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	return Convert(source, cst)
}

// Convert lowers a parsed CST into an ast.Program, validating along
// the way that no source identifier begins with '#'. src is the
// original text, used only to render diagnostics.
func Convert(src string, cst *grammar.CProgram) (ast.Program, error) {
	c := &converter{bag: &diag.Bag{}}
	prog := c.program(cst)
	if c.bag.HasErrors() {
		return nil, fmt.Errorf("%s", c.bag.Format(src))
	}
	return prog, nil
}

type converter struct {
	bag *diag.Bag
}

func pos(p grammar.Pos) ast.Position {
	return ast.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func (c *converter) checkName(name string, at ast.Position) {
	if ast.IsReservedName(name) {
		c.bag.Errorf(at, "identifier %q is reserved for instrumentation and cannot appear in source", name)
	}
}

func (c *converter) program(p *grammar.CProgram) ast.Program {
	if len(p.Stmts) == 0 {
		return &ast.Skip{Position: pos(p.Pos)}
	}
	stmts := make([]ast.Program, len(p.Stmts))
	for i, s := range p.Stmts {
		stmts[i] = c.stmt(s)
	}
	return ast.SeqAll(pos(p.Pos), stmts...)
}

func (c *converter) stmt(s *grammar.CStmt) ast.Program {
	p := pos(s.Pos)
	switch {
	case s.Skip != nil:
		return &ast.Skip{Position: pos(s.Skip.Pos)}
	case s.Abort != nil:
		return &ast.Abort{Position: pos(s.Abort.Pos)}
	case s.Output != nil:
		return &ast.Output{Expr: c.term(s.Output.Expr), Position: pos(s.Output.Pos)}
	case s.Assign != nil:
		c.checkName(s.Assign.Name, pos(s.Assign.Pos))
		return &ast.Assign{Name: s.Assign.Name, Expr: c.term(s.Assign.Expr), Position: pos(s.Assign.Pos)}
	case s.If != nil:
		return &ast.If{
			Cond:     c.formula(s.If.Cond),
			Then:     c.program(s.If.Then),
			Else:     c.program(s.If.Else),
			Position: pos(s.If.Pos),
		}
	case s.While != nil:
		return &ast.While{
			Cond:     c.formula(s.While.Cond),
			Body:     c.program(s.While.Body),
			Position: pos(s.While.Pos),
		}
	}
	diag.Internalf("empty CStmt alternative at %s", p)
	panic("unreachable")
}

// formula lowers the -> tier (left-associative, lowest precedence).
func (c *converter) formula(f *grammar.CFormula) ast.Formula {
	result := c.andFormula(f.First)
	for _, r := range f.Rest {
		result = &ast.Implies{Left: result, Right: c.andFormula(r), Position: pos(f.Pos)}
	}
	return result
}

// andFormula lowers the || tier.
func (c *converter) andFormula(f *grammar.CAndFormula) ast.Formula {
	result := c.orFormula(f.First)
	for _, r := range f.Rest {
		result = &ast.Or{Left: result, Right: c.orFormula(r), Position: pos(f.Pos)}
	}
	return result
}

// orFormula lowers the && tier.
func (c *converter) orFormula(f *grammar.COrFormula) ast.Formula {
	result := c.notFormula(f.First)
	for _, r := range f.Rest {
		result = &ast.And{Left: result, Right: c.notFormula(r), Position: pos(f.Pos)}
	}
	return result
}

func (c *converter) notFormula(f *grammar.CNotFormula) ast.Formula {
	result := c.formulaAtom(f.Atom)
	for range f.Bangs {
		result = &ast.Not{Operand: result, Position: pos(f.Pos)}
	}
	return result
}

func (c *converter) formulaAtom(a *grammar.CFormulaAtom) ast.Formula {
	p := pos(a.Pos)
	switch {
	case a.True:
		return &ast.True{Position: p}
	case a.False:
		return &ast.False{Position: p}
	case a.Paren != nil:
		return c.formula(a.Paren)
	case a.Compare != nil:
		left := c.term(a.Compare.Left)
		right := c.term(a.Compare.Right)
		cp := pos(a.Compare.Pos)
		if a.Compare.Op == "==" {
			return &ast.Eq{Left: left, Right: right, Position: cp}
		}
		return &ast.Lt{Left: left, Right: right, Position: cp}
	}
	diag.Internalf("empty CFormulaAtom alternative at %s", p)
	panic("unreachable")
}

// term lowers the + - tier.
func (c *converter) term(t *grammar.CTerm) ast.Term {
	result := c.mulTerm(t.First)
	for _, op := range t.Rest {
		right := c.mulTerm(op.Right)
		if op.Op == "+" {
			result = &ast.Sum{Left: result, Right: right, Position: pos(t.Pos)}
		} else {
			result = &ast.Difference{Left: result, Right: right, Position: pos(t.Pos)}
		}
	}
	return result
}

// mulTerm lowers the * tier, the highest-precedence term operator.
func (c *converter) mulTerm(m *grammar.CMulTerm) ast.Term {
	result := c.atomTerm(m.First)
	for _, r := range m.Rest {
		result = &ast.Product{Left: result, Right: c.atomTerm(r), Position: pos(m.Pos)}
	}
	return result
}

func (c *converter) atomTerm(a *grammar.CAtomTerm) ast.Term {
	p := pos(a.Pos)
	switch {
	case a.Negative != nil:
		n, err := strconv.ParseInt(*a.Negative, 10, 64)
		if err != nil {
			c.bag.Errorf(p, "integer literal %q out of range", *a.Negative)
			return &ast.Const{Value: 0, Position: p}
		}
		return &ast.Const{Value: -n, Position: p}
	case a.Number != nil:
		n, err := strconv.ParseInt(*a.Number, 10, 64)
		if err != nil {
			c.bag.Errorf(p, "integer literal %q out of range", *a.Number)
			return &ast.Const{Value: 0, Position: p}
		}
		return &ast.Const{Value: n, Position: p}
	case a.Ident != nil:
		c.checkName(*a.Ident, p)
		return &ast.Var{Name: *a.Ident, Position: p}
	case a.Paren != nil:
		return c.term(a.Paren)
	}
	diag.Internalf("empty CAtomTerm alternative at %s", p)
	panic("unreachable")
}
