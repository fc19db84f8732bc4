package ast

import "fmt"

// Term is the sum type of arithmetic expressions: Const, Var, Sum,
// Difference, Product. All arithmetic is over mathematical integers.
type Term interface {
	Node
	termNode()
	// Equal reports structural equality, ignoring source positions.
	Equal(Term) bool
	// Hash returns a structural hash consistent with Equal: equal terms
	// hash equal.
	Hash() uint64
}

// Node is implemented by every AST node (Term, Formula, Program) so
// passes can report a position without a type switch.
type Node interface {
	Pos() Position
	String() string
}

// Const is an integer literal.
type Const struct {
	Value    int64
	Position Position
}

func (c *Const) Pos() Position   { return c.Position }
func (c *Const) termNode()       {}
func (c *Const) String() string  { return fmt.Sprintf("%d", c.Value) }
func (c *Const) Equal(t Term) bool {
	o, ok := t.(*Const)
	return ok && o.Value == c.Value
}
func (c *Const) Hash() uint64 { return hashCombine(hashTag(tagConst), uint64(c.Value)) }

// Var is a reference to a named integer variable. Names reserved for
// instrumentation ghost state begin with '#' (see internal/instrument).
type Var struct {
	Name     string
	Position Position
}

func (v *Var) Pos() Position  { return v.Position }
func (v *Var) termNode()      {}
func (v *Var) String() string { return v.Name }
func (v *Var) Equal(t Term) bool {
	o, ok := t.(*Var)
	return ok && o.Name == v.Name
}
func (v *Var) Hash() uint64 { return hashCombine(hashTag(tagVar), hashString(v.Name)) }

// Sum is l + r.
type Sum struct {
	Left, Right Term
	Position    Position
}

func (s *Sum) Pos() Position   { return s.Position }
func (s *Sum) termNode()       {}
func (s *Sum) String() string  { return fmt.Sprintf("(%s + %s)", s.Left, s.Right) }
func (s *Sum) Equal(t Term) bool {
	o, ok := t.(*Sum)
	return ok && s.Left.Equal(o.Left) && s.Right.Equal(o.Right)
}
func (s *Sum) Hash() uint64 { return hashCombine(hashTag(tagSum), s.Left.Hash(), s.Right.Hash()) }

// Difference is l - r.
type Difference struct {
	Left, Right Term
	Position    Position
}

func (d *Difference) Pos() Position  { return d.Position }
func (d *Difference) termNode()      {}
func (d *Difference) String() string { return fmt.Sprintf("(%s - %s)", d.Left, d.Right) }
func (d *Difference) Equal(t Term) bool {
	o, ok := t.(*Difference)
	return ok && d.Left.Equal(o.Left) && d.Right.Equal(o.Right)
}
func (d *Difference) Hash() uint64 {
	return hashCombine(hashTag(tagDifference), d.Left.Hash(), d.Right.Hash())
}

// Product is l * r. When both operands are non-constant this produces
// a nonlinear constraint once encoded; the solver may then answer
// unknown (see spec Open Questions).
type Product struct {
	Left, Right Term
	Position    Position
}

func (p *Product) Pos() Position  { return p.Position }
func (p *Product) termNode()      {}
func (p *Product) String() string { return fmt.Sprintf("(%s * %s)", p.Left, p.Right) }
func (p *Product) Equal(t Term) bool {
	o, ok := t.(*Product)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}
func (p *Product) Hash() uint64 {
	return hashCombine(hashTag(tagProduct), p.Left.Hash(), p.Right.Hash())
}

// IsNonlinear reports whether a Product multiplies two non-constant
// operands, the one case the encoder cannot keep linear.
func IsNonlinear(t Term) bool {
	p, ok := t.(*Product)
	if !ok {
		return false
	}
	_, lc := p.Left.(*Const)
	_, rc := p.Right.(*Const)
	return !lc && !rc
}
