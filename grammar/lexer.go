package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// TSLexer tokenizes TinyScript source. Keywords are not lexed
// separately; they ride on Ident and are matched as string literals in
// the grammar, the same trick the contract lexer used for "module" and
// "struct".
var TSLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},

		// Identifiers: '#' is allowed so instrumented/ghost programs
		// round-trip through the same grammar as source programs; the
		// parser package rejects a leading '#' in source files.
		{"Ident", `[A-Za-z_#][A-Za-z0-9_]*`, nil},

		{"Integer", `[0-9]+`, nil},

		{"Operator", `(:=|->|\|\||&&|==|!=|<=|[!<+\-*;()])`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
