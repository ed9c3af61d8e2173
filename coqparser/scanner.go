package coqparser

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/smasher164/xid"
	"github.com/vippsas/coqstep/coqparser/internal/utils"
)

// Scanner is a stack-based automaton splitting Coq source into statements.
//
// The scanner is fed one rune at a time and never looks ahead; a terminator
// candidate (a dot, a bullet run) is held as a frame on the stack until the
// following rune decides it. When that rune ends the statement, the boundary
// is placed before it and the same rune is dispatched again against the
// exposed state.
//
// Handled constructs:
//   - Strings ("...") with backslash escapes
//   - Nested comments ((* ... (* ... *) ... *))
//   - Qualified identifiers (Foo.Bar.baz) and the `..` notation
//   - Bullets (-, +, * runs) at the start of a statement
//   - Subproof braces ({ and }) at the start of a statement
type Scanner struct {
	states stateStack

	pos  Pos // Position of the next rune to be fed
	last Pos // Position of the last rune fed

	// atLineStart is true while only whitespace, comments, dots, bullets
	// and braces have been seen since the last emitted statement.
	atLineStart bool

	text  strings.Builder // Source consumed since the last emitted statement
	begin Pos             // Where the statement in progress starts

	policy  StopPolicy
	sink    Sink
	logger  logrus.FieldLogger
	emitted int
	stopped bool

	subproofDepth int // Number of `{` not yet matched by a `}`
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sends emission and end-of-stream decisions to logger at Debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner whose first rune sits at start. Every
// completed statement is passed to sink, until policy is satisfied.
func NewScanner(start Pos, policy StopPolicy, sink Sink, opts ...Option) *Scanner {
	s := &Scanner{
		pos:         start,
		last:        start,
		begin:       start,
		atLineStart: true,
		policy:      policy,
		sink:        sink,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		s.logger = logger
	}
	return s
}

// Pos returns the position of the next rune to be fed.
func (s *Scanner) Pos() Pos {
	return s.pos
}

// Emitted returns the number of statements handed to the sink so far.
func (s *Scanner) Emitted() int {
	return s.emitted
}

// Stopped reports whether the stop policy was satisfied, the sink failed or
// Finish was called. A stopped scanner ignores further input.
func (s *Scanner) Stopped() bool {
	return s.stopped
}

// Pending returns the text consumed since the last emitted statement.
func (s *Scanner) Pending() string {
	return s.text.String()
}

// State returns the frame governing the next rune.
func (s *Scanner) State() ParseState {
	return s.states.peek()
}

// Depth returns the number of open frames on the state stack.
func (s *Scanner) Depth() int {
	return s.states.depth()
}

// SubproofDepth returns the number of subproof braces currently open.
func (s *Scanner) SubproofDepth() int {
	return s.subproofDepth
}

// Feed processes one rune of source. It returns stop == true once the
// scanner will not accept more input.
func (s *Scanner) Feed(r rune) (stop bool, err error) {
	if s.stopped {
		return true, nil
	}
	s.text.WriteRune(r)

	// Each pass either settles the rune or pops a frame, so the loop is
	// bounded by the stack depth.
	for {
		utils.DPrint("%s %q %s\n", s.pos, r, &s.states)
		again, err := s.dispatch(r)
		if err != nil {
			return true, err
		}
		if s.stopped {
			return true, nil
		}
		if !again {
			break
		}
	}

	s.advance(r)
	return false, nil
}

// Finish tells the scanner the source is exhausted.
//
// A dot or bullet run still waiting for its next rune is terminated by the
// end of input. If no statement was emitted at all, everything consumed is
// emitted as one statement. Otherwise text left under an unterminated
// string or comment is dropped.
func (s *Scanner) Finish() error {
	if s.stopped {
		return nil
	}
	s.stopped = true

	switch s.states.peek().Kind {
	case DotSeen, WhitespaceDotSeen, Bullet:
		s.states.pop()
		return s.emit(s.text.String(), s.last)
	}

	if s.emitted == 0 && s.text.Len() > 0 {
		s.logger.WithFields(logrus.Fields{
			"line": s.last.Line,
			"col":  s.last.Col,
		}).Debug("no statement boundary found before end of input, emitting everything")
		return s.emit(s.text.String(), s.last)
	}

	if s.states.inStringOrComment() {
		s.logger.WithFields(logrus.Fields{
			"state":   s.states.String(),
			"pending": s.text.Len(),
		}).Debug("end of input inside unterminated string or comment")
	}
	return nil
}

// dispatch interprets r under the top frame. It returns again == true when
// r must be dispatched once more against the frame now exposed.
func (s *Scanner) dispatch(r rune) (again bool, err error) {
	top := s.states.peek()

	switch top.Kind {
	case Bare:
		return false, s.bare(r)

	case InString:
		switch r {
		case '"':
			s.states.pop()
		case '\\':
			s.states.push(ParseState{Kind: InStringEscape})
		}

	case InStringEscape:
		s.states.pop()

	case CommentOpening:
		if r == '*' {
			s.states.replace(ParseState{Kind: InComment, AtLineStart: top.AtLineStart})
			return false, nil
		}
		// a lone `(`
		s.states.pop()
		if s.states.peek().Kind == Bare {
			s.atLineStart = false
		}
		return true, nil

	case InComment:
		switch r {
		case '*':
			s.states.push(ParseState{Kind: CommentClosing, AtLineStart: top.AtLineStart})
		case '(':
			s.states.push(ParseState{Kind: CommentOpening, AtLineStart: top.AtLineStart})
		}

	case CommentClosing:
		if r == ')' {
			s.states.pop()
			s.states.pop()
			if s.states.peek().Kind == Bare {
				s.atLineStart = top.AtLineStart
			}
			return false, nil
		}
		// still inside; `**)` must close, so look at r again
		s.states.pop()
		return true, nil

	case Bullet:
		if r == top.Bullet {
			return false, nil
		}
		if err := s.emitBefore(r); err != nil {
			return false, err
		}
		s.states.pop()
		return true, nil

	case DotSeen:
		switch {
		case isIdentStart(r):
			s.states.pop()
			return true, nil
		case r == '.':
			s.states.pop()
			s.atLineStart = false
			return false, nil
		}
		if err := s.emitBefore(r); err != nil {
			return false, err
		}
		s.states.pop()
		return true, nil

	case WhitespaceSeen:
		if r == '.' {
			s.states.replace(ParseState{Kind: WhitespaceDotSeen})
			s.atLineStart = false
			return false, nil
		}
		s.states.pop()
		return true, nil

	case WhitespaceDotSeen:
		if r == '.' {
			s.states.pop()
			s.atLineStart = false
			return false, nil
		}
		if err := s.emitBefore(r); err != nil {
			return false, err
		}
		s.states.pop()
		return true, nil
	}
	return false, nil
}

func (s *Scanner) bare(r rune) error {
	switch {
	case r == '(':
		s.states.push(ParseState{Kind: CommentOpening, AtLineStart: s.atLineStart})
	case r == '"':
		s.states.push(ParseState{Kind: InString})
		s.atLineStart = false
	case r == '.':
		s.states.push(ParseState{Kind: DotSeen})
	case isBullet(r) && s.atLineStart:
		s.states.push(ParseState{Kind: Bullet, Bullet: r})
	case r == '{' && s.atLineStart:
		s.subproofDepth++
		return s.emitThrough()
	case r == '}' && s.atLineStart:
		if s.subproofDepth > 0 {
			s.subproofDepth--
		}
		return s.emitThrough()
	case unicode.IsSpace(r):
		s.states.push(ParseState{Kind: WhitespaceSeen})
	default:
		s.atLineStart = false
	}
	return nil
}

// emitThrough emits everything up to and including the current rune.
func (s *Scanner) emitThrough() error {
	return s.emit(s.text.String(), s.pos)
}

// emitBefore emits everything up to the rune before r, which stays buffered
// as the first rune of the next statement. The rune before is always a dot
// or bullet character on the same line as r.
func (s *Scanner) emitBefore(r rune) error {
	text := s.text.String()
	text = text[:len(text)-utf8.RuneLen(r)]
	end := Pos{Line: s.pos.Line, Col: s.pos.Col - 1}
	err := s.emit(text, end)
	s.text.WriteRune(r)
	return err
}

func (s *Scanner) emit(text string, end Pos) error {
	st := Statement{Span: Span{Begin: s.begin, End: end}, Text: text}
	s.emitted++

	if strings.HasSuffix(text, "\n") {
		s.begin = Pos{Line: end.Line + 1, Col: 1}
	} else {
		s.begin = Pos{Line: end.Line, Col: end.Col + 1}
	}
	s.text.Reset()
	s.atLineStart = true

	s.logger.WithFields(logrus.Fields{
		"line": end.Line,
		"col":  end.Col,
	}).Debugf("statement %d: %s", s.emitted, st.Span)

	if err := s.sink.Emit(st); err != nil {
		s.stopped = true
		return errors.Wrapf(err, "emitting statement at %s", st.Span)
	}
	if s.policy.Reached(end, s.emitted) {
		s.logger.WithField("policy", s.policy.String()).Debug("stop policy reached")
		s.stopped = true
	}
	return nil
}

func (s *Scanner) advance(r rune) {
	s.last = s.pos
	if r == '\n' {
		s.pos.Line++
		s.pos.Col = 1
	} else {
		s.pos.Col++
	}
}

func isBullet(r rune) bool {
	return r == '-' || r == '+' || r == '*'
}

// isIdentStart reports whether a dot followed by r is the inside of a
// qualified identifier rather than a statement end.
func isIdentStart(r rune) bool {
	return xid.Start(r)
}
