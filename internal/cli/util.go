package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// MustGet is used with a [pflag.FlagSet] getter to panic if the flag is not defined, or is not the right type.
// The developer knows which flags were defined, so a failure here is a programming error.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

var (
	ErrArgMap = errors.New("failed to map argument(s)")
)

// MapArgs maps positional arguments to targets, requiring at least minArgs of them.
// The returned error is a [UsageError], since missing arguments are the user's mistake.
func MapArgs(args []string, minArgs int, targets ...*string) error {
	if len(targets) < minArgs {
		panic(fmt.Sprintf("not enough targets (%d) to satisfy minArgs (%d)", len(targets), minArgs))
	}
	if len(args) < minArgs {
		return NewUsageError("%w: expected at least %d argument(s), got %d", ErrArgMap, minArgs, len(args))
	}
	if len(args) > len(targets) {
		return NewUsageError("%w: unexpected argument(s): %v", ErrArgMap, args[len(targets):])
	}
	for i := range args {
		*targets[i] = args[i]
	}
	return nil
}

// SignalContext returns a context that is cancelled when one of the given signals is received.
// A second signal exits the process with a non-zero code.
func SignalContext(parent context.Context, signals ...os.Signal) context.Context {
	if len(signals) == 0 {
		panic("no signals passed to SignalContext")
	}
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, signals...)
	go func() {
		<-sigs
		cancel()
		<-sigs
		os.Exit(1)
	}()
	return ctx
}
