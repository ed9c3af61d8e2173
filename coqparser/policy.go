package coqparser

import "fmt"

// StopPolicy decides when the scanner has emitted enough statements.
// Reached is asked after every emission with the end of the statement just
// emitted and the number of statements emitted so far.
type StopPolicy interface {
	Reached(end Pos, emitted int) bool
	fmt.Stringer
}

type nextPolicy struct{}

// Next stops after exactly one statement.
func Next() StopPolicy {
	return nextPolicy{}
}

func (nextPolicy) Reached(Pos, int) bool {
	return true
}

func (nextPolicy) String() string {
	return "next"
}

type untilPolicy struct {
	target Pos
}

// Until stops at the first statement whose end lies at or after target.
func Until(target Pos) StopPolicy {
	return untilPolicy{target: target}
}

func (p untilPolicy) Reached(end Pos, _ int) bool {
	return end.AtLeast(p.target)
}

func (p untilPolicy) String() string {
	return "to " + p.target.String()
}

type neverPolicy struct{}

// Never scans until the source is exhausted.
func Never() StopPolicy {
	return neverPolicy{}
}

func (neverPolicy) Reached(Pos, int) bool {
	return false
}

func (neverPolicy) String() string {
	return "all"
}
