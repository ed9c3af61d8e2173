package coqparser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPos_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Pos
		expected int
	}{
		{"equal", pos(3, 4), pos(3, 4), 0},
		{"earlier column", pos(3, 2), pos(3, 4), -1},
		{"later column", pos(3, 9), pos(3, 4), 1},
		{"later line, smaller column", pos(4, 1), pos(3, 80), 1},
		{"earlier line, larger column", pos(2, 80), pos(3, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, tt.expected < 0, tt.a.Less(tt.b))
			assert.Equal(t, tt.expected >= 0, tt.a.AtLeast(tt.b))
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `plain`, Escape("plain"))
	assert.Equal(t, `say \"hi\"`, Escape(`say "hi"`))
	assert.Equal(t, `a\nb`, Escape("a\nb"))
	// backslashes and tabs are left alone
	assert.Equal(t, "\\t\t\\", Escape("\\t\t\\"))
}

func TestStatement_String(t *testing.T) {
	st := stmt(1, 7, 2, 3, "\n\"a\".")
	assert.Equal(t, `1.7,2.3 "\n\"a\"."`, st.String())
}

func TestStatementWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewStatementWriter(&buf)

	require.NoError(t, w.Emit(stmt(1, 1, 1, 8, "Lemma a.")))
	// every statement is flushed immediately
	assert.Equal(t, "1.1,1.8 \"Lemma a.\"\n", buf.String())

	require.NoError(t, w.Emit(stmt(1, 9, 2, 6, "\nProof.")))
	require.NoError(t, w.Close())
	assert.Equal(t, "1.1,1.8 \"Lemma a.\"\n1.9,2.6 \"\\nProof.\"\n\n", buf.String())
}

func TestStopPolicy(t *testing.T) {
	assert.True(t, Next().Reached(pos(1, 1), 1))
	assert.False(t, Never().Reached(pos(99, 99), 99))

	until := Until(pos(5, 10))
	assert.False(t, until.Reached(pos(5, 9), 1))
	assert.True(t, until.Reached(pos(5, 10), 1))
	assert.True(t, until.Reached(pos(6, 1), 1))
	assert.Equal(t, "to 5.10", until.String())
}
