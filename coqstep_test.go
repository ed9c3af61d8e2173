package coqstep

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vippsas/coqstep/coqparser"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestParseRequest(t *testing.T) {
	t.Run("next", func(t *testing.T) {
		req, err := ParseRequest([]string{"3", "5", "next"})
		require.NoError(t, err)
		assert.Equal(t, Request{Start: coqparser.Pos{Line: 3, Col: 5}, Mode: ModeNext}, req)
		assert.Equal(t, "next", req.Policy().String())
	})

	t.Run("to", func(t *testing.T) {
		req, err := ParseRequest([]string{"1", "1", "to", "10", "2"})
		require.NoError(t, err)
		assert.Equal(t, Request{
			Start:  coqparser.Pos{Line: 1, Col: 1},
			Mode:   ModeTo,
			Target: coqparser.Pos{Line: 10, Col: 2},
		}, req)
		assert.Equal(t, "to 10.2", req.Policy().String())
	})

	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no arguments", nil, true},
		{"too few", []string{"1", "1"}, true},
		{"four", []string{"1", "1", "to", "2"}, true},
		{"too many", []string{"1", "1", "to", "2", "2", "2"}, true},
		{"next with target", []string{"1", "1", "next", "2", "2"}, true},
		{"to without target", []string{"1", "1", "to"}, true},
		{"unknown mode", []string{"1", "1", "prev"}, false},
		{"bad line", []string{"x", "1", "next"}, false},
		{"zero column", []string{"1", "0", "next"}, false},
		{"negative target", []string{"1", "1", "to", "-2", "1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest(tt.args)
			require.Error(t, err)
			if tt.usage {
				assert.IsType(t, UsageError{}, err)
			} else {
				assert.IsType(t, InvalidArgumentError{}, err)
			}
		})
	}
}

func TestStep_Next(t *testing.T) {
	var out bytes.Buffer
	req := Request{Start: coqparser.Pos{Line: 4, Col: 1}, Mode: ModeNext}
	err := Step(context.Background(), strings.NewReader("Lemma a. Proof. Qed."), &out, req, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "4.1,4.8 \"Lemma a.\"\n\n", out.String())
}

func TestStep_To(t *testing.T) {
	var out bytes.Buffer
	req := Request{Start: coqparser.Pos{Line: 1, Col: 1}, Mode: ModeTo, Target: coqparser.Pos{Line: 2, Col: 1}}
	err := Step(context.Background(), strings.NewReader("A.\nB.\nC.\n"), &out, req, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "1.1,1.2 \"A.\"\n1.3,2.2 \"\\nB.\"\n\n", out.String())
}

func TestStep_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	req := Request{Start: coqparser.Pos{Line: 1, Col: 1}, Mode: ModeNext}
	require.NoError(t, Step(context.Background(), strings.NewReader(""), &out, req, testLogger()))
	assert.Equal(t, "\n", out.String())
}

func TestSplit(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Split(context.Background(), strings.NewReader("- a.\n- \"b\".\n"), &out, testLogger()))
	assert.Equal(t, strings.Join([]string{
		`1.1,1.1 "-"`,
		`1.2,1.4 " a."`,
		`1.5,2.1 "\n-"`,
		`2.2,2.6 " \"b\"."`,
		``,
		``,
	}, "\n"), out.String())
}
