package ast

import "fmt"

// Formula is the sum type of quantifier-free propositions over Terms:
// True, False, Not, And, Or, Implies, Eq, Lt.
type Formula interface {
	Node
	formulaNode()
	Equal(Formula) bool
	Hash() uint64
}

// True is the constant ⊤.
type True struct{ Position Position }

func (t *True) Pos() Position  { return t.Position }
func (t *True) formulaNode()   {}
func (t *True) String() string { return "true" }
func (t *True) Equal(f Formula) bool {
	_, ok := f.(*True)
	return ok
}
func (t *True) Hash() uint64 { return hashTag(tagTrue) }

// False is the constant ⊥.
type False struct{ Position Position }

func (f *False) Pos() Position  { return f.Position }
func (f *False) formulaNode()   {}
func (f *False) String() string { return "false" }
func (f *False) Equal(o Formula) bool {
	_, ok := o.(*False)
	return ok
}
func (f *False) Hash() uint64 { return hashTag(tagFalse) }

// Not is ¬φ.
type Not struct {
	Operand  Formula
	Position Position
}

func (n *Not) Pos() Position  { return n.Position }
func (n *Not) formulaNode()   {}
func (n *Not) String() string { return fmt.Sprintf("!%s", n.Operand) }
func (n *Not) Equal(f Formula) bool {
	o, ok := f.(*Not)
	return ok && n.Operand.Equal(o.Operand)
}
func (n *Not) Hash() uint64 { return hashCombine(hashTag(tagNot), n.Operand.Hash()) }

// And is p ∧ q.
type And struct {
	Left, Right Formula
	Position    Position
}

func (a *And) Pos() Position  { return a.Position }
func (a *And) formulaNode()   {}
func (a *And) String() string { return fmt.Sprintf("(%s && %s)", a.Left, a.Right) }
func (a *And) Equal(f Formula) bool {
	o, ok := f.(*And)
	return ok && a.Left.Equal(o.Left) && a.Right.Equal(o.Right)
}
func (a *And) Hash() uint64 { return hashCombine(hashTag(tagAnd), a.Left.Hash(), a.Right.Hash()) }

// Or is p ∨ q.
type Or struct {
	Left, Right Formula
	Position    Position
}

func (o *Or) Pos() Position  { return o.Position }
func (o *Or) formulaNode()   {}
func (o *Or) String() string { return fmt.Sprintf("(%s || %s)", o.Left, o.Right) }
func (o *Or) Equal(f Formula) bool {
	other, ok := f.(*Or)
	return ok && o.Left.Equal(other.Left) && o.Right.Equal(other.Right)
}
func (o *Or) Hash() uint64 { return hashCombine(hashTag(tagOr), o.Left.Hash(), o.Right.Hash()) }

// Implies is p → q.
type Implies struct {
	Left, Right Formula
	Position    Position
}

func (i *Implies) Pos() Position  { return i.Position }
func (i *Implies) formulaNode()   {}
func (i *Implies) String() string { return fmt.Sprintf("(%s -> %s)", i.Left, i.Right) }
func (i *Implies) Equal(f Formula) bool {
	o, ok := f.(*Implies)
	return ok && i.Left.Equal(o.Left) && i.Right.Equal(o.Right)
}
func (i *Implies) Hash() uint64 {
	return hashCombine(hashTag(tagImplies), i.Left.Hash(), i.Right.Hash())
}

// Eq is l == r over terms.
type Eq struct {
	Left, Right Term
	Position    Position
}

func (e *Eq) Pos() Position  { return e.Position }
func (e *Eq) formulaNode()   {}
func (e *Eq) String() string { return fmt.Sprintf("%s == %s", e.Left, e.Right) }
func (e *Eq) Equal(f Formula) bool {
	o, ok := f.(*Eq)
	return ok && e.Left.Equal(o.Left) && e.Right.Equal(o.Right)
}
func (e *Eq) Hash() uint64 { return hashCombine(hashTag(tagEq), e.Left.Hash(), e.Right.Hash()) }

// Lt is l < r over terms (strict order).
type Lt struct {
	Left, Right Term
	Position    Position
}

func (l *Lt) Pos() Position  { return l.Position }
func (l *Lt) formulaNode()   {}
func (l *Lt) String() string { return fmt.Sprintf("%s < %s", l.Left, l.Right) }
func (l *Lt) Equal(f Formula) bool {
	o, ok := f.(*Lt)
	return ok && l.Left.Equal(o.Left) && l.Right.Equal(o.Right)
}
func (l *Lt) Hash() uint64 { return hashCombine(hashTag(tagLt), l.Left.Hash(), l.Right.Hash()) }
