package coqparser

import (
	"context"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Sink receives statements in source order, as soon as each is complete.
// Returning an error aborts the scan.
type Sink interface {
	Emit(st Statement) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(st Statement) error

func (f SinkFunc) Emit(st Statement) error {
	return f(st)
}

// Scan pulls runes from source until it is exhausted or policy is satisfied,
// passing every statement found to sink. Unread input is left in source.
// It returns the number of statements emitted.
//
// Statement text must be an exact slice of the source, so a byte that is
// not valid UTF-8 stops the scan with a NonUTF8Error. Statements completed
// before it have already been passed to sink.
func Scan(ctx context.Context, source io.RuneReader, start Pos, policy StopPolicy, sink Sink, opts ...Option) (int, error) {
	s := NewScanner(start, policy, sink, opts...)
	for {
		if err := ctx.Err(); err != nil {
			return s.Emitted(), err
		}
		r, size, err := source.ReadRune()
		if err == io.EOF {
			return s.Emitted(), s.Finish()
		}
		if err != nil {
			return s.Emitted(), errors.Wrapf(err, "reading source at %s", s.Pos())
		}
		if r == utf8.RuneError && size == 1 {
			return s.Emitted(), NonUTF8Error{Pos: s.Pos()}
		}
		stop, err := s.Feed(r)
		if err != nil {
			return s.Emitted(), err
		}
		if stop {
			return s.Emitted(), nil
		}
	}
}

var errBreak = errors.New("iteration stopped by consumer")

// All returns the statements of source as a lazy sequence. Runes are only
// read from source as the sequence is consumed. A read failure is yielded
// once, as the last element.
func All(source io.RuneReader, start Pos, policy StopPolicy, opts ...Option) iter.Seq2[Statement, error] {
	return func(yield func(Statement, error) bool) {
		sink := SinkFunc(func(st Statement) error {
			if !yield(st, nil) {
				return errBreak
			}
			return nil
		})
		_, err := Scan(context.Background(), source, start, policy, sink, opts...)
		if err != nil && errors.Cause(err) != errBreak {
			yield(Statement{}, err)
		}
	}
}

// Collect scans all of source and returns the statements found.
func Collect(source io.RuneReader, start Pos, policy StopPolicy, opts ...Option) ([]Statement, error) {
	var result []Statement
	for st, err := range All(source, start, policy, opts...) {
		if err != nil {
			return result, err
		}
		result = append(result, st)
	}
	return result, nil
}
