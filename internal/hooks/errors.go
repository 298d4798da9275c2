package hooks

import (
	"errors"
	"fmt"
)

// StatusCode is the exit status every check resolves to.
type StatusCode int

const (
	// StatusSuccess lets the push continue.
	StatusSuccess StatusCode = 0
	// StatusFailure blocks the push.
	StatusFailure StatusCode = 1
)

// Int returns the status as a process exit code.
func (s StatusCode) Int() int {
	return int(s)
}

func (s StatusCode) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

// ErrEnvironment is returned when a required tool or the repository itself
// cannot be found.
var ErrEnvironment = errors.New("environment not usable")

// SubprocessError reports an external command that did not exit cleanly.
type SubprocessError struct {
	Command  *Command
	ExitCode int
	Output   string
	TimedOut bool
	Err      error
}

func (e *SubprocessError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("%s: timed out", e.Command)
	}
	if e.ExitCode < 0 && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
}

func (e *SubprocessError) Unwrap() error {
	return e.Err
}
