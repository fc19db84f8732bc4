package smt

import (
	"fmt"
	"sort"
	"strings"
)

// Query is a single check-sat request: a set of declared constants and
// one assertion. The driver builds the assertion as the negation of a
// verification condition, so unsat means the VC is valid.
type Query struct {
	Consts map[string]Sort
	Assert Term
}

// NewQuery collects every Const reachable from t and records it, the
// same way the contract verifier's TranslateContract walks an
// expression tree before emitting declare-consts.
func NewQuery(t Term) *Query {
	q := &Query{Consts: map[string]Sort{}}
	collectConsts(t, q.Consts)
	q.Assert = t
	return q
}

func collectConsts(t Term, out map[string]Sort) {
	switch n := t.(type) {
	case Const:
		out[n.Name] = n.Sort
	case Add:
		collectConsts(n.L, out)
		collectConsts(n.R, out)
	case Sub:
		collectConsts(n.L, out)
		collectConsts(n.R, out)
	case Mul:
		collectConsts(n.L, out)
		collectConsts(n.R, out)
	case Eq:
		collectConsts(n.L, out)
		collectConsts(n.R, out)
	case Lt:
		collectConsts(n.L, out)
		collectConsts(n.R, out)
	case Not:
		collectConsts(n.X, out)
	case And:
		collectConsts(n.L, out)
		collectConsts(n.R, out)
	case Or:
		collectConsts(n.L, out)
		collectConsts(n.R, out)
	case Implies:
		collectConsts(n.L, out)
		collectConsts(n.R, out)
	}
}

// SMTLIB2 renders the query as an SMT-LIB2 script ending in
// "(check-sat)" followed by "(get-model)" so a sat result can be
// replayed through the interpreter.
func (q *Query) SMTLIB2() string {
	var b strings.Builder
	b.WriteString("(set-logic QF_LIA)\n")

	names := make([]string, 0, len(q.Consts))
	for name := range q.Consts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "(declare-const %s %s)\n", smtIdent(name), q.Consts[name])
	}

	fmt.Fprintf(&b, "(assert %s)\n", rewriteIdents(q.Assert))
	b.WriteString("(check-sat)\n")
	b.WriteString("(get-model)\n")
	return b.String()
}

// smtIdent rewrites TinyScript identifiers (which may contain '#') to
// a legal SMT-LIB symbol.
func smtIdent(name string) string {
	return "v_" + strings.ReplaceAll(name, "#", "hash_")
}

func rewriteIdents(t Term) Term {
	switch n := t.(type) {
	case Const:
		return Const{Name: smtIdent(n.Name), Sort: n.Sort}
	case Add:
		return Add{rewriteIdents(n.L), rewriteIdents(n.R)}
	case Sub:
		return Sub{rewriteIdents(n.L), rewriteIdents(n.R)}
	case Mul:
		return Mul{rewriteIdents(n.L), rewriteIdents(n.R)}
	case Eq:
		return Eq{rewriteIdents(n.L), rewriteIdents(n.R)}
	case Lt:
		return Lt{rewriteIdents(n.L), rewriteIdents(n.R)}
	case Not:
		return Not{rewriteIdents(n.X)}
	case And:
		return And{rewriteIdents(n.L), rewriteIdents(n.R)}
	case Or:
		return Or{rewriteIdents(n.L), rewriteIdents(n.R)}
	case Implies:
		return Implies{rewriteIdents(n.L), rewriteIdents(n.R)}
	default:
		return t
	}
}

// UnsmtIdent reverses smtIdent, used when parsing a model back out.
func UnsmtIdent(symbol string) string {
	name := strings.TrimPrefix(symbol, "v_")
	return strings.ReplaceAll(name, "hash_", "#")
}
