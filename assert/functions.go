package assert

import (
	"errors"
	"fmt"
	"reflect"
)

// PanicError is how a recovered panic is reported when a checked function panics instead of returning an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it was an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return fn()
}

// Throws fails unless fn returns an error or panics.
func Throws(fn func() error, message string) error {
	if fn == nil {
		return failf(message, "Expected a function, but was nil")
	}
	if call(fn) == nil {
		return failf(message, "Expected an error, but none was returned.")
	}
	return nil
}

// FunctionThrows fails unless fn returns, or panics with, an error matching target with [errors.Is].
func FunctionThrows(fn func() error, target error, message string) error {
	if fn == nil {
		return failf(message, "Expected a function, but was nil")
	}
	err := call(fn)
	if err == nil {
		return failf(message, "Expected exception, but none was thrown.")
	}
	if !errors.Is(err, target) {
		return failWrap(message, err, "Expected exception: %v, but was: %v", target, err)
	}
	return nil
}

// FunctionThrowsAs fails unless fn returns, or panics with, an error that can be assigned to an E with [errors.As].
func FunctionThrowsAs[E error](fn func() error, message string) error {
	if fn == nil {
		return failf(message, "Expected a function, but was nil")
	}
	err := call(fn)
	if err == nil {
		return failf(message, "Expected exception, but none was thrown.")
	}
	var target E
	if !errors.As(err, &target) {
		return failWrap(message, err, "Expected exception: %s, but was: %T", reflect.TypeFor[E](), err)
	}
	return nil
}

// FunctionDoesNotThrow fails if fn returns an error or panics.
// The failure wraps what fn produced.
func FunctionDoesNotThrow(fn func() error, message string) error {
	if fn == nil {
		return failf(message, "Expected a function, but was nil")
	}
	if err := call(fn); err != nil {
		return failWrap(message, err, "Expected no exception, but caught: %v", err)
	}
	return nil
}

// FunctionReturns fails unless fn returns a value equal to expected, as in [Equals].
// A panic from fn is not recovered.
func FunctionReturns[T any](expected T, fn func() T, message string) error {
	if fn == nil {
		return failf(message, "Expected a function, but was nil")
	}
	if result := fn(); !objectsAreEqual(expected, result) {
		return failf(message, "Expected return: %v, but was: %v", expected, result)
	}
	return nil
}
