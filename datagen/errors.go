package datagen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a generator gets input outside its domain, such as a minimum greater than a maximum.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedValue is returned for an unknown discriminator, like a UUID version or date format.
	// It also matches [ErrInvalidArgument].
	ErrUnsupportedValue = fmt.Errorf("%w: unsupported value", ErrInvalidArgument)
	// ErrPatternExhausted is returned when no candidate satisfied a phone pattern within the configured attempts.
	ErrPatternExhausted = errors.New("pattern could not be satisfied")
)

// Must is used with a generator method to panic if it returns an error.
// Fixture setup usually passes known-good arguments, so this keeps call sites short.
//
//	phone := datagen.Must(gen.PhoneNumber("US"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func invalidRange[T any](min, max T) error {
	return fmt.Errorf("%w: minimum %v is greater than maximum %v", ErrInvalidArgument, min, max)
}
