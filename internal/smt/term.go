// Package smt is the query layer between the box transformer and an
// external SMT solver: a small typed term language, an SMT-LIB2
// serializer, constant-folding simplification, and a solver process
// wrapper, grounded on the intent compiler's verify package.
package smt

import "fmt"

// Sort is the SMT-LIB sort of a declared constant.
type Sort int

const (
	SortInt Sort = iota
	SortBool
)

func (s Sort) String() string {
	if s == SortBool {
		return "Bool"
	}
	return "Int"
}

// Term is the SMT query language: integer and boolean expressions
// share one interface since VCs mix both under equalities and
// comparisons.
type Term interface {
	smtNode()
	String() string
}

type IntLit struct{ Value int64 }

func (IntLit) smtNode() {}
func (t IntLit) String() string {
	if t.Value < 0 {
		return fmt.Sprintf("(- %d)", -t.Value)
	}
	return fmt.Sprintf("%d", t.Value)
}

type BoolLit struct{ Value bool }

func (BoolLit) smtNode() {}
func (t BoolLit) String() string {
	if t.Value {
		return "true"
	}
	return "false"
}

// Const is a declared, uninterpreted constant (either the current
// program variable or a ghost-state variable introduced during
// instrumentation).
type Const struct {
	Name string
	Sort Sort
}

func (Const) smtNode()        {}
func (c Const) String() string { return c.Name }

type Add struct{ L, R Term }

func (Add) smtNode()         {}
func (t Add) String() string { return fmt.Sprintf("(+ %s %s)", t.L, t.R) }

type Sub struct{ L, R Term }

func (Sub) smtNode()         {}
func (t Sub) String() string { return fmt.Sprintf("(- %s %s)", t.L, t.R) }

type Mul struct{ L, R Term }

func (Mul) smtNode()         {}
func (t Mul) String() string { return fmt.Sprintf("(* %s %s)", t.L, t.R) }

type Eq struct{ L, R Term }

func (Eq) smtNode()         {}
func (t Eq) String() string { return fmt.Sprintf("(= %s %s)", t.L, t.R) }

type Lt struct{ L, R Term }

func (Lt) smtNode()         {}
func (t Lt) String() string { return fmt.Sprintf("(< %s %s)", t.L, t.R) }

type Not struct{ X Term }

func (Not) smtNode()         {}
func (t Not) String() string { return fmt.Sprintf("(not %s)", t.X) }

type And struct{ L, R Term }

func (And) smtNode()         {}
func (t And) String() string { return fmt.Sprintf("(and %s %s)", t.L, t.R) }

type Or struct{ L, R Term }

func (Or) smtNode()         {}
func (t Or) String() string { return fmt.Sprintf("(or %s %s)", t.L, t.R) }

type Implies struct{ L, R Term }

func (Implies) smtNode()         {}
func (t Implies) String() string { return fmt.Sprintf("(=> %s %s)", t.L, t.R) }
