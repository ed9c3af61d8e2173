package coqstep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/coqstep/coqparser"
)

// Mode is the stop mode requested by the editor.
type Mode string

const (
	ModeNext Mode = "next"
	ModeTo   Mode = "to"
)

// Request is one invocation: where the text on stdin starts in the editor
// buffer, and how far to scan.
type Request struct {
	Start  coqparser.Pos
	Mode   Mode
	Target coqparser.Pos // only for ModeTo
}

// Policy returns the stop policy for the request.
func (r Request) Policy() coqparser.StopPolicy {
	if r.Mode == ModeTo {
		return coqparser.Until(r.Target)
	}
	return coqparser.Next()
}

func (r Request) String() string {
	if r.Mode == ModeTo {
		return fmt.Sprintf("%s %s %s", r.Start, r.Mode, r.Target)
	}
	return fmt.Sprintf("%s %s", r.Start, r.Mode)
}

// ParseRequest reads the positional arguments
//
//	<line> <col> next
//	<line> <col> to <line> <col>
func ParseRequest(args []string) (Request, error) {
	if len(args) != 3 && len(args) != 5 {
		return Request{}, UsageError{Got: len(args)}
	}

	var (
		req Request
		err error
	)
	if req.Start, err = parsePos(args[0], args[1]); err != nil {
		return Request{}, err
	}

	req.Mode = Mode(args[2])
	switch {
	case req.Mode == ModeNext && len(args) == 3:
	case req.Mode == ModeTo && len(args) == 5:
		if req.Target, err = parsePos(args[3], args[4]); err != nil {
			return Request{}, err
		}
	case req.Mode == ModeNext || req.Mode == ModeTo:
		return Request{}, UsageError{Got: len(args)}
	default:
		return Request{}, InvalidArgumentError{Name: "mode", Value: args[2], Message: "expected 'next' or 'to'"}
	}
	return req, nil
}

func parsePos(line, col string) (coqparser.Pos, error) {
	l, err := parsePositive("line", line)
	if err != nil {
		return coqparser.Pos{}, err
	}
	c, err := parsePositive("column", col)
	if err != nil {
		return coqparser.Pos{}, err
	}
	return coqparser.Pos{Line: l, Col: c}, nil
}

func parsePositive(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, InvalidArgumentError{Name: name, Value: value, Message: "not a number"}
	}
	if n < 1 {
		return 0, InvalidArgumentError{Name: name, Value: value, Message: "must be 1 or greater"}
	}
	return n, nil
}

// Step scans source according to req and writes the statements found to
// out, followed by the blank end marker. The end marker is written even if
// no statement was found.
func Step(ctx context.Context, source io.Reader, out io.Writer, req Request, logger logrus.FieldLogger) error {
	return run(ctx, source, out, req.Start, req.Policy(), logger.WithField("request", req.String()))
}

// Split writes every statement of source, starting at line 1, column 1.
func Split(ctx context.Context, source io.Reader, out io.Writer, logger logrus.FieldLogger) error {
	return run(ctx, source, out, coqparser.Pos{Line: 1, Col: 1}, coqparser.Never(), logger)
}

func run(ctx context.Context, source io.Reader, out io.Writer, start coqparser.Pos, policy coqparser.StopPolicy, logger logrus.FieldLogger) error {
	w := coqparser.NewStatementWriter(out)
	n, err := coqparser.Scan(ctx, bufio.NewReader(source), start, policy, w, coqparser.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "scanning statements")
	}
	logger.WithField("statements", n).Debug("scan finished")
	return w.Close()
}
