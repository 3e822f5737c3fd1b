package assert

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/saylorsolutions/testkit/internal/config"
	"golang.org/x/term"
)

const (
	redConsoleColor     = "\033[31m"
	defaultConsoleColor = "\033[0m"
)

// ErrFailed is matched by every [*Failure] with [errors.Is].
var ErrFailed = errors.New("assertion failed")

var colorEnabled atomic.Bool

func init() {
	if enabled, ok := config.ColorOverride(); ok {
		colorEnabled.Store(enabled)
		return
	}
	colorEnabled.Store(term.IsTerminal(int(os.Stderr.Fd())))
}

// DisableColor will stop [Failure.Error] from wrapping messages in console color codes.
// This is concurrency safe, but it's a global setting that affects failures reported from other goroutines.
func DisableColor() {
	colorEnabled.Store(false)
}

// EnableColor turns console color codes back on for [Failure.Error].
// Like [DisableColor], this is a global setting.
func EnableColor() {
	colorEnabled.Store(true)
}

// ColorEnabled reports whether failure messages are currently colored.
func ColorEnabled() bool {
	return colorEnabled.Load()
}

func colorize(msg string) string {
	if !colorEnabled.Load() {
		return msg
	}
	return redConsoleColor + msg + defaultConsoleColor
}

// Failure is returned from a predicate when its expectation doesn't hold.
// It carries the formatted message and, when the check observed one, the error that caused it.
type Failure struct {
	message string
	cause   error
}

// Message returns the failure text without console color codes.
func (f *Failure) Message() string {
	return f.message
}

// Error satisfies the error interface, coloring the message if color is enabled.
func (f *Failure) Error() string {
	return colorize(f.message)
}

// Unwrap allows matching [ErrFailed], and any error observed by the check, with [errors.Is] and [errors.As].
func (f *Failure) Unwrap() []error {
	if f.cause == nil {
		return []error{ErrFailed}
	}
	return []error{ErrFailed, f.cause}
}

func compose(msg, detail string) string {
	switch {
	case len(msg) == 0:
		return detail
	case len(detail) == 0:
		return msg
	default:
		return msg + " " + detail
	}
}

func fail(msg string) error {
	return &Failure{message: msg}
}

func failf(msg, format string, args ...any) error {
	return &Failure{message: compose(msg, fmt.Sprintf(format, args...))}
}

func failWrap(msg string, cause error, format string, args ...any) error {
	return &Failure{message: compose(msg, fmt.Sprintf(format, args...)), cause: cause}
}
