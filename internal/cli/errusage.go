package cli

import (
	"fmt"
)

// UsageError signals that the user invoked a command incorrectly, and should be shown how to use it.
// Commands return it from validation with [NewUsageError], and the command path is filled in by [CommandSet.Exec].
type UsageError struct {
	command string
	wrapped error
}

func (e *UsageError) Error() string {
	msg := "usage error"
	if len(e.command) > 0 {
		msg += " in '" + e.command + "'"
	}
	if e.wrapped == nil {
		return msg
	}
	return msg + ": " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// Command returns the command path that was used incorrectly, if known.
func (e *UsageError) Command() string {
	return e.command
}

// NewUsageError is used to create a [UsageError].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}
