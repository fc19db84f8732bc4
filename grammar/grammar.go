// Package grammar holds the participle concrete syntax tree for
// TinyScript. Precedence is encoded as separate grammar tiers (one
// struct per binding level) rather than a single flat operator list,
// so "a + b * c" and "a || b && c" parse with the right shape without
// a separate climbing pass over the operator list.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Pos is the position type participle stamps onto every node that
// embeds it; internal/parser copies it into ast.Position.
type Pos = lexer.Position

// CProgram is a semicolon-separated statement list, left-associative.
// The flat Stmts list is left-folded into a tree by internal/parser.
type CProgram struct {
	Stmts []*CStmt `@@ { ";" @@ }`
	Pos   Pos
}

type CStmt struct {
	Skip   *CSkip   `  @@`
	Abort  *CAbort  `| @@`
	Output *COutput `| @@`
	If     *CIf     `| @@`
	While  *CWhile  `| @@`
	Assign *CAssign `| @@`
	Pos    Pos
}

type CSkip struct {
	Kw  string `@"skip"`
	Pos Pos
}

type CAbort struct {
	Kw  string `@"abort"`
	Pos Pos
}

type COutput struct {
	Kw   string  `"output"`
	Expr *CTerm  `@@`
	Pos  Pos
}

type CAssign struct {
	Name string `@Ident ":="`
	Expr *CTerm `@@`
	Pos  Pos
}

type CIf struct {
	Cond *CFormula  `"if" "(" @@ ")"`
	Then *CProgram  `"then" @@`
	Else *CProgram  `"else" @@ "endif"`
	Pos  Pos
}

type CWhile struct {
	Cond *CFormula `"while" "(" @@ ")"`
	Body *CProgram `"do" @@ "done"`
	Pos  Pos
}

// --- Formula tiers, low to high precedence: -> || && ! (==,<) ---

type CFormula struct {
	First *CAndFormula   `@@`
	Rest  []*CAndFormula `{ "->" @@ }`
	Pos   Pos
}

type CAndFormula struct {
	First *COrFormula   `@@`
	Rest  []*COrFormula `{ "||" @@ }`
	Pos   Pos
}

// COrFormula is the && tier; named for its position under CAndFormula,
// not its operator (it sits where historical "and" review comments
// called the || tier "Or", the name stuck during the TS port).
type COrFormula struct {
	First *CNotFormula   `@@`
	Rest  []*CNotFormula `{ "&&" @@ }`
	Pos   Pos
}

type CNotFormula struct {
	Bangs []string      `{ @"!" }`
	Atom  *CFormulaAtom `@@`
	Pos   Pos
}

type CFormulaAtom struct {
	True    bool       `(  @"true"`
	False   bool       ` | @"false"`
	Paren   *CFormula  ` | "(" @@ ")"`
	Compare *CCompare  ` | @@ )`
	Pos     Pos
}

type CCompare struct {
	Left  *CTerm `@@`
	Op    string `@( "==" | "<" )`
	Right *CTerm `@@`
	Pos   Pos
}

// --- Term tiers, low to high precedence: + - then * ---

type CTerm struct {
	First *CMulTerm   `@@`
	Rest  []*CAddOp   `{ @@ }`
	Pos   Pos
}

type CAddOp struct {
	Op    string    `@( "+" | "-" )`
	Right *CMulTerm `@@`
}

type CMulTerm struct {
	First *CAtomTerm `@@`
	Rest  []*CAtomTerm `{ "*" @@ }`
	Pos   Pos
}

// CAtomTerm's Negative alternative handles a leading '-' directly on a
// literal (int ::= '-'? [0-9]+): the lexer's Integer rule never
// consumes the sign itself, since doing so would swallow the '-'
// operator in ordinary subtraction like "3 - 2" before CAddOp ever
// sees it.
type CAtomTerm struct {
	Negative *string `(  "-" @Integer`
	Number   *string ` | @Integer`
	Ident    *string ` | @Ident`
	Paren    *CTerm  ` | "(" @@ ")" )`
	Pos      Pos
}
