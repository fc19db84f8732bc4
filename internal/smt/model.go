package smt

import (
	"regexp"
	"strconv"
)

// defineFunRe matches z3's "(define-fun v_x () Int 5)" / "(define-fun
// v_y () Int (- 3))" model lines; it is not a general S-expression
// parser, only enough to recover the integer values this verifier's
// queries ever produce.
var defineFunRe = regexp.MustCompile(`\(define-fun\s+(\S+)\s+\(\)\s+Int\s+(\(-\s*\d+\)|-?\d+)\)`)

// ParseModel extracts variable bindings from a solver's (get-model)
// output, keyed by the original TinyScript variable name.
func ParseModel(text string) map[string]int64 {
	out := map[string]int64{}
	for _, m := range defineFunRe.FindAllStringSubmatch(text, -1) {
		name := UnsmtIdent(m[1])
		out[name] = parseSignedInt(m[2])
	}
	return out
}

func parseSignedInt(s string) int64 {
	if len(s) > 0 && s[0] == '(' {
		// "(- N)"
		digits := regexp.MustCompile(`\d+`).FindString(s)
		n, _ := strconv.ParseInt(digits, 10, 64)
		return -n
	}
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
