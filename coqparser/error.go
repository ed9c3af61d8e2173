package coqparser

import "fmt"

// NonUTF8Error is returned when the source contains a byte sequence that is
// not valid UTF-8.
type NonUTF8Error struct {
	Pos Pos
}

func (e NonUTF8Error) Error() string {
	return fmt.Sprintf("%d:%d invalid UTF-8 in source", e.Pos.Line, e.Pos.Col)
}
