package coqstep

import "fmt"

// UsageError is returned when the invocation has the wrong number of
// arguments. Nothing has been scanned when it is returned.
type UsageError struct {
	Got int
}

func (e UsageError) Error() string {
	return fmt.Sprintf("need 3 or 5 arguments: <line> <column> (next|to <target line> <target column>), got %d", e.Got)
}

type InvalidArgumentError struct {
	Name    string
	Value   string
	Message string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Message)
}
