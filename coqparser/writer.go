package coqparser

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// StatementWriter is a Sink writing one line per statement in the format
// read by the editor plugin. Each line is flushed as soon as it is written,
// so the editor can start sending the first statement to Coq while the
// rest of the buffer is being scanned.
type StatementWriter struct {
	w *bufio.Writer
}

func NewStatementWriter(w io.Writer) *StatementWriter {
	return &StatementWriter{w: bufio.NewWriter(w)}
}

func (sw *StatementWriter) Emit(st Statement) error {
	if _, err := sw.w.WriteString(st.String() + "\n"); err != nil {
		return errors.Wrap(err, "writing statement")
	}
	return sw.w.Flush()
}

// Close writes the blank line that marks the end of the output.
func (sw *StatementWriter) Close() error {
	if err := sw.w.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "writing end marker")
	}
	return sw.w.Flush()
}
