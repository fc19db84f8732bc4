package grammar

import "strings"

// String methods below render the CST back to source text. They exist
// for debugging and tests; internal/printer renders the canonical form
// from the ast package instead, since that's the tree policies and the
// box transformer actually operate on.

func (p *CProgram) String() string {
	parts := make([]string, len(p.Stmts))
	for i, s := range p.Stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}

func (s *CStmt) String() string {
	switch {
	case s.Skip != nil:
		return "skip"
	case s.Abort != nil:
		return "abort"
	case s.Output != nil:
		return "output " + s.Output.Expr.String()
	case s.Assign != nil:
		return s.Assign.Name + " := " + s.Assign.Expr.String()
	case s.If != nil:
		return "if (" + s.If.Cond.String() + ") then " + s.If.Then.String() + " else " + s.If.Else.String() + " endif"
	case s.While != nil:
		return "while (" + s.While.Cond.String() + ") do " + s.While.Body.String() + " done"
	}
	return ""
}

func (f *CFormula) String() string {
	parts := make([]string, 0, len(f.Rest)+1)
	parts = append(parts, f.First.String())
	for _, r := range f.Rest {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " -> ")
}

func (f *CAndFormula) String() string {
	parts := make([]string, 0, len(f.Rest)+1)
	parts = append(parts, f.First.String())
	for _, r := range f.Rest {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " || ")
}

func (f *COrFormula) String() string {
	parts := make([]string, 0, len(f.Rest)+1)
	parts = append(parts, f.First.String())
	for _, r := range f.Rest {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " && ")
}

func (f *CNotFormula) String() string {
	return strings.Repeat("!", len(f.Bangs)) + f.Atom.String()
}

func (f *CFormulaAtom) String() string {
	switch {
	case f.True:
		return "true"
	case f.False:
		return "false"
	case f.Paren != nil:
		return "(" + f.Paren.String() + ")"
	case f.Compare != nil:
		return f.Compare.String()
	}
	return ""
}

func (c *CCompare) String() string {
	return c.Left.String() + " " + c.Op + " " + c.Right.String()
}

func (t *CTerm) String() string {
	s := t.First.String()
	for _, op := range t.Rest {
		s += " " + op.Op + " " + op.Right.String()
	}
	return s
}

func (m *CMulTerm) String() string {
	parts := make([]string, 0, len(m.Rest)+1)
	parts = append(parts, m.First.String())
	for _, r := range m.Rest {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " * ")
}

func (a *CAtomTerm) String() string {
	switch {
	case a.Negative != nil:
		return "-" + *a.Negative
	case a.Number != nil:
		return *a.Number
	case a.Ident != nil:
		return *a.Ident
	case a.Paren != nil:
		return "(" + a.Paren.String() + ")"
	}
	return ""
}
