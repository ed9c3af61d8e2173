package coqparser

import (
	"fmt"
	"strings"
)

// Pos represents a position in Coq source with line and column numbers.
// Line and column are 1-indexed, as reported by the editor.
type Pos struct {
	Line, Col int
}

// Compare orders positions line first, then column.
func (p Pos) Compare(other Pos) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Col < other.Col:
		return -1
	case p.Col > other.Col:
		return 1
	}
	return 0
}

func (p Pos) Less(other Pos) bool {
	return p.Compare(other) < 0
}

// AtLeast reports whether p lies at or after target. A strictly greater
// line always qualifies, whatever the columns are.
func (p Pos) AtLeast(target Pos) bool {
	return p.Compare(target) >= 0
}

func (p Pos) String() string {
	return fmt.Sprintf("%d.%d", p.Line, p.Col)
}

// Span is a range of source, inclusive on both ends.
type Span struct {
	Begin, End Pos
}

func (s Span) String() string {
	return s.Begin.String() + "," + s.End.String()
}

// Statement is one terminated unit of Coq source: a sentence ending in a dot,
// a bullet, or a subproof brace. Text is the exact slice covered by Span.
type Statement struct {
	Span
	Text string
}

// String renders the statement the way the editor plugin reads it:
//
//	<beginLine>.<beginCol>,<endLine>.<endCol> "<escaped text>"
func (s Statement) String() string {
	return fmt.Sprintf("%s \"%s\"", s.Span, Escape(s.Text))
}

var escaper = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

// Escape makes text safe to put between double quotes on a single line.
// Only `"` and newline are touched.
func Escape(text string) string {
	return escaper.Replace(text)
}
