package grammar

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var tsParser = participle.MustBuild[CProgram](
	participle.Lexer(TSLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

// ParseFile reads path and parses it as a TinyScript program, returning
// the concrete syntax tree. Syntax errors are reported to stderr in a
// caret-annotated form before the error is returned.
func ParseFile(path string) (*CProgram, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ParseString parses source text; name is used only for diagnostics.
func ParseString(name, source string) (*CProgram, error) {
	prog, err := tsParser.ParseString(name, source)
	if err != nil {
		reportParseError(source, err)
		return nil, err
	}
	return prog, nil
}

func reportParseError(src string, err error) {
	red := color.New(color.FgRed)
	pe, ok := err.(participle.Error)
	if !ok {
		red.Fprintf(os.Stderr, "unexpected error: %s\n", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		red.Fprintf(os.Stderr, "syntax error at unknown location: %s\n", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	red.Fprintf(os.Stderr, "syntax error in %s at line %d, column %d:\n", pos.Filename, pos.Line, pos.Column)
	fmt.Fprintln(os.Stderr, line)
	color.New(color.FgHiRed).Fprintln(os.Stderr, caret)
	fmt.Fprintf(os.Stderr, "-> %s\n", pe.Message())
}
