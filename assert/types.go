package assert

import (
	"reflect"
	"time"
)

func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsNumber fails if v is not an integer, floating point, or complex value.
func IsNumber(v any, message string) error {
	if !isNumber(v) {
		return failf(message, "Expected a number, but was: %T", v)
	}
	return nil
}

// IsNotNumber fails if v is an integer, floating point, or complex value.
func IsNotNumber(v any, message string) error {
	if isNumber(v) {
		return failf(message, "Expected a non-numeric value, but was: %T", v)
	}
	return nil
}

// IsTypeOf fails if v doesn't hold a T.
func IsTypeOf[T any](v any, message string) error {
	if _, ok := v.(T); !ok {
		return failf(message, "Expected type: %s, but was: %T", reflect.TypeFor[T](), v)
	}
	return nil
}

// InstanceOf fails if v can't be used as a T.
// When T is an interface this checks that v implements it.
func InstanceOf[T any](v any, message string) error {
	if _, ok := v.(T); !ok {
		return failf(message, "Object is not an instance of: %s", reflect.TypeFor[T]())
	}
	return nil
}

// IsFunction fails if v is not a non-nil function value.
func IsFunction(v any, message string) error {
	if v == nil || reflect.TypeOf(v).Kind() != reflect.Func || reflect.ValueOf(v).IsNil() {
		return failf(message, "Object is not callable")
	}
	return nil
}

func isArray(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// IsArray fails if v is not a slice or array.
func IsArray(v any, message string) error {
	if !isArray(v) {
		return failf(message, "Object is not a slice or array")
	}
	return nil
}

// IsNotArray fails if v is a slice or array.
func IsNotArray(v any, message string) error {
	if isArray(v) {
		return failf(message, "Object is a slice or array, but should not be")
	}
	return nil
}

// IsDate fails if v is not a [time.Time] or a non-nil *[time.Time].
func IsDate(v any, message string) error {
	switch d := v.(type) {
	case time.Time:
		return nil
	case *time.Time:
		if d != nil {
			return nil
		}
	}
	return failf(message, "Object is not a Date")
}

// IsNil fails if v is not nil.
// Typed nil values, like a nil pointer stored in an interface, are considered nil.
func IsNil(v any, message string) error {
	if !isNil(v) {
		return failf(message, "Expected nil, but was: %v", v)
	}
	return nil
}

// IsNullOrUndefined is the same as [IsNil].
// Go has no separate notion of an undefined value.
func IsNullOrUndefined(v any, message string) error {
	return IsNil(v, message)
}

// IsNotNil fails if v is nil, including typed nil values.
func IsNotNil(v any, message string) error {
	if isNil(v) {
		return failf(message, "Expected a non-nil value")
	}
	return nil
}
