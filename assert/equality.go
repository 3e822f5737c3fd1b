package assert

import (
	"bytes"
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// deepOptions lets go-cmp descend into unexported fields, and treats nil and empty slices or maps as equal.
var deepOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func objectsAreEqual(expected, actual any) bool {
	if isNil(expected) && isNil(actual) {
		return true
	}
	if exp, ok := expected.([]byte); ok {
		act, ok := actual.([]byte)
		return ok && bytes.Equal(exp, act)
	}
	if expected == nil || actual == nil {
		return false
	}
	exp, act := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if exp.Type() != act.Type() {
		return false
	}
	switch exp.Kind() {
	case reflect.Func:
		// Functions are only ever equal to themselves.
		return exp.Pointer() == act.Pointer()
	case reflect.Float32, reflect.Float64:
		return floatsEqual(exp.Float(), act.Float())
	case reflect.Complex64, reflect.Complex128:
		x, y := exp.Complex(), act.Complex()
		return floatsEqual(real(x), real(y)) && floatsEqual(imag(x), imag(y))
	default:
		return reflect.DeepEqual(expected, actual)
	}
}

// floatsEqual treats NaN as equal to NaN, so a value always equals itself.
func floatsEqual(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

func deepEqual(expected, actual any) bool {
	return cmp.Equal(expected, actual, deepOptions...)
}

// Equals fails if expected and actual are not equal.
// Two nil values, typed or not, are considered equal.
func Equals(expected, actual any, message string) error {
	if objectsAreEqual(expected, actual) {
		return nil
	}
	return failf(message, "Expected: %v, but was: %v", expected, actual)
}

// NotEquals fails if expected and actual are equal.
// Two nil values always fail, since there is nothing to tell apart.
func NotEquals(expected, actual any, message string) error {
	if isNil(expected) && isNil(actual) {
		return failf(message, "Both objects are null, expected them to be different.")
	}
	if objectsAreEqual(expected, actual) {
		return failf(message, "Expected objects to be different, but both were: %v", actual)
	}
	return nil
}

// DeepEquals fails if expected and actual differ anywhere in their structure, including unexported fields.
// Nil and empty slices or maps are treated as equal, and the diagnostic includes a diff.
func DeepEquals(expected, actual any, message string) error {
	diff := cmp.Diff(expected, actual, deepOptions...)
	if len(diff) == 0 {
		return nil
	}
	return failf(message, "Expected: %v, but was: %v\ndiff (-expected +actual):\n%s", expected, actual, diff)
}

// NotDeepEquals fails if expected and actual are deeply equal in the sense of [DeepEquals].
func NotDeepEquals(expected, actual any, message string) error {
	if deepEqual(expected, actual) {
		return failf(message, "Expected objects to be different, but both were deeply equal: %v", actual)
	}
	return nil
}

// True fails if condition is false.
func True(condition bool, message string) error {
	if !condition {
		return fail(message)
	}
	return nil
}

// TrueFunc fails if assertion returns false.
func TrueFunc(assertion func() bool, message string) error {
	return True(assertion(), message)
}

// False fails if condition is true.
func False(condition bool, message string) error {
	if condition {
		return fail(message)
	}
	return nil
}
