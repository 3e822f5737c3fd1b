package retry

import (
	"context"
	"errors"
	"fmt"
)

// Iteration is a function that is called for each iteration of a loop, returning whether the error can be retried.
// When no error is returned, the loop will exit early with a nil error.
// Returning true with an error will attempt to retry the iteration.
// Returning false with an error will return early with the error.
type Iteration = func() (bool, error)

var (
	ErrInvalidSettings = errors.New("invalid settings")
	ErrMaxRetries      = errors.New("max tries exceeded")
)

type maxRetriesError struct {
	tries   int
	loopErr error
}

func (e *maxRetriesError) Error() string {
	return fmt.Sprintf("%v after %d attempts: %v", ErrMaxRetries, e.tries, e.loopErr)
}

func (e *maxRetriesError) Unwrap() []error {
	return []error{ErrMaxRetries, e.loopErr}
}

// Do calls iteration until it succeeds, returns a non-retryable error, or maxTries is reached.
// There is no delay between attempts, which suits generate-then-validate loops.
func Do(maxTries int, iteration Iteration) error {
	return DoContext(context.Background(), maxTries, iteration)
}

// DoContext is the same as [Do], but stops early with the context's error once ctx is done.
func DoContext(ctx context.Context, maxTries int, iteration Iteration) error {
	if maxTries < 1 {
		return fmt.Errorf("%w: max tries should be >= 1", ErrInvalidSettings)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		shouldRetry bool
		iterErr     error
	)
	for i := 0; i < maxTries; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		shouldRetry, iterErr = iteration()
		if iterErr != nil && shouldRetry {
			continue
		}
		return iterErr
	}
	return &maxRetriesError{tries: maxTries, loopErr: iterErr}
}
