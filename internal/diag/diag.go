// Package diag collects and renders source diagnostics in the
// caret-annotated style used across the CLI, merging the contract
// compiler's colorized reporter with a plain collection type for
// errors gathered during CST-to-AST conversion.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tsverify/internal/ast"
)

// Severity distinguishes a hard error (parsing/conversion cannot
// proceed) from a warning (conversion proceeds, output is still
// usable).
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported problem, anchored at a source position.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      ast.Position
}

// Bag accumulates diagnostics during a single parse/convert pass.
type Bag struct {
	items []Diagnostic
}

func (b *Bag) Errorf(pos ast.Position, format string, args ...interface{}) {
	b.items = append(b.items, Diagnostic{Severity: Error, Message: fmt.Sprintf(format, args...), Pos: pos})
}

func (b *Bag) Warnf(pos ast.Position, format string, args ...interface{}) {
	b.items = append(b.items, Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...), Pos: pos})
}

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

func (b *Bag) All() []Diagnostic { return b.items }

func (b *Bag) Count() int { return len(b.items) }

// Format renders every diagnostic against src in a caret-annotated
// form, colorized the way the contract compiler's reporter does.
func (b *Bag) Format(src string) string {
	lines := strings.Split(src, "\n")
	var out strings.Builder
	for _, d := range b.items {
		label := color.New(color.Bold, color.FgRed).Sprint("error")
		if d.Severity == Warning {
			label = color.New(color.Bold, color.FgYellow).Sprint("warning")
		}
		fmt.Fprintf(&out, "%s: %s\n", label, d.Message)
		fmt.Fprintf(&out, "  --> %s:%d:%d\n", d.Pos.Filename, d.Pos.Line, d.Pos.Column)
		if d.Pos.Line >= 1 && d.Pos.Line <= len(lines) {
			line := lines[d.Pos.Line-1]
			gutter := fmt.Sprintf("%d", d.Pos.Line)
			fmt.Fprintf(&out, "%s | %s\n", gutter, line)
			caret := strings.Repeat(" ", d.Pos.Column-1) + color.New(color.Bold, color.FgRed).Sprint("^")
			fmt.Fprintf(&out, "%s | %s\n", strings.Repeat(" ", len(gutter)), caret)
		}
	}
	return out.String()
}

// Internalf panics with an "internal error" prefix. It is the only
// acceptable response to an invariant violation deep in a transform
// pass; cmd/tsv recovers it at the top level and exits 70.
func Internalf(format string, args ...interface{}) {
	panic(fmt.Sprintf("internal error: %s", fmt.Sprintf(format, args...)))
}
