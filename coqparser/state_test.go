package coqparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateStack(t *testing.T) {
	var s stateStack
	assert.Equal(t, Bare, s.peek().Kind)
	assert.Equal(t, Bare, s.pop().Kind)
	assert.Equal(t, 0, s.depth())

	s.push(ParseState{Kind: InComment, AtLineStart: true})
	s.push(ParseState{Kind: CommentClosing, AtLineStart: true})
	assert.Equal(t, 2, s.depth())
	assert.True(t, s.inStringOrComment())

	s.replace(ParseState{Kind: CommentOpening})
	assert.Equal(t, 2, s.depth())
	assert.Equal(t, CommentOpening, s.peek().Kind)

	assert.Equal(t, CommentOpening, s.pop().Kind)
	assert.Equal(t, InComment, s.pop().Kind)
	assert.False(t, s.inStringOrComment())

	s.replace(ParseState{Kind: DotSeen})
	assert.Equal(t, 1, s.depth())
	assert.False(t, s.inStringOrComment())

	s.push(ParseState{Kind: InStringEscape})
	assert.True(t, s.inStringOrComment())
}

func TestParseState_String(t *testing.T) {
	assert.Equal(t, "InComment(true)", ParseState{Kind: InComment, AtLineStart: true}.String())
	assert.Equal(t, "Bullet('+')", ParseState{Kind: Bullet, Bullet: '+'}.String())
	assert.Equal(t, "WhitespaceDotSeen", ParseState{Kind: WhitespaceDotSeen}.String())
	assert.Equal(t, "Bare", StateKind(0).String())
}

func TestParseState_IsComment(t *testing.T) {
	for k := Bare; k != lastStateKind; k++ {
		expected := k == CommentOpening || k == InComment || k == CommentClosing
		assert.Equal(t, expected, ParseState{Kind: k}.IsComment(), k.String())
	}
}
