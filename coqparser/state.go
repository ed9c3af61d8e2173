package coqparser

import "fmt"

// ParseState is one frame of the scanner's state stack. Only the payload
// fields relevant to Kind are meaningful.
type ParseState struct {
	Kind StateKind

	// AtLineStart is set for CommentOpening, InComment and CommentClosing.
	AtLineStart bool
	// Bullet is set for the Bullet kind: one of '-', '+', '*'.
	Bullet rune
}

func (p ParseState) String() string {
	switch p.Kind {
	case CommentOpening, InComment, CommentClosing:
		return fmt.Sprintf("%s(%t)", p.Kind, p.AtLineStart)
	case Bullet:
		return fmt.Sprintf("%s(%q)", p.Kind, p.Bullet)
	default:
		return p.Kind.String()
	}
}

// IsComment reports whether the frame belongs to an open comment.
func (p ParseState) IsComment() bool {
	switch p.Kind {
	case CommentOpening, InComment, CommentClosing:
		return true
	}
	return false
}

// stateStack is a LIFO of frames. An empty stack peeks as Bare.
type stateStack struct {
	frames []ParseState
}

func (s *stateStack) push(st ParseState) {
	s.frames = append(s.frames, st)
}

func (s *stateStack) peek() ParseState {
	if len(s.frames) == 0 {
		return ParseState{Kind: Bare}
	}
	return s.frames[len(s.frames)-1]
}

// pop removes the top frame. Popping an empty stack is a no-op that
// returns Bare.
func (s *stateStack) pop() ParseState {
	top := s.peek()
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
	return top
}

// replace swaps the top frame for st, or pushes st onto an empty stack.
func (s *stateStack) replace(st ParseState) {
	s.pop()
	s.push(st)
}

func (s *stateStack) depth() int {
	return len(s.frames)
}

// inStringOrComment reports whether any frame on the stack is part of an
// open string or comment.
func (s *stateStack) inStringOrComment() bool {
	for _, f := range s.frames {
		if f.IsComment() || f.Kind == InString || f.Kind == InStringEscape {
			return true
		}
	}
	return false
}

func (s *stateStack) String() string {
	return fmt.Sprintf("%v", s.frames)
}
