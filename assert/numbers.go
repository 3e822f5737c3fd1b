package assert

import (
	"cmp"
	"math"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Number interface {
	Integer | ~float32 | ~float64
}

// InRange fails unless min < value < max.
func InRange[T cmp.Ordered](value, min, max T, message string) error {
	if !(min < value && value < max) {
		return failf(message, "Expected: %v < %v < %v", min, value, max)
	}
	return nil
}

// NotInRange fails if min < value < max.
func NotInRange[T cmp.Ordered](value, min, max T, message string) error {
	if min < value && value < max {
		return failf(message, "Expected: %v to not be in range (%v, %v)", value, min, max)
	}
	return nil
}

// InRangeIncluded fails unless min <= value <= max.
func InRangeIncluded[T cmp.Ordered](value, min, max T, message string) error {
	if !(min <= value && value <= max) {
		return failf(message, "Expected: %v <= %v <= %v", min, value, max)
	}
	return nil
}

// NotInRangeIncluded fails if min <= value <= max.
func NotInRangeIncluded[T cmp.Ordered](value, min, max T, message string) error {
	if min <= value && value <= max {
		return failf(message, "Expected: %v to not be in range [%v, %v]", value, min, max)
	}
	return nil
}

func GreaterThan[T cmp.Ordered](value, reference T, message string) error {
	if !(value > reference) {
		return failf(message, "Expected: %v > %v", value, reference)
	}
	return nil
}

func GreaterThanOrEqual[T cmp.Ordered](value, reference T, message string) error {
	if !(value >= reference) {
		return failf(message, "Expected: %v >= %v", value, reference)
	}
	return nil
}

func LessThan[T cmp.Ordered](value, reference T, message string) error {
	if !(value < reference) {
		return failf(message, "Expected: %v < %v", value, reference)
	}
	return nil
}

func LessThanOrEqual[T cmp.Ordered](value, reference T, message string) error {
	if !(value <= reference) {
		return failf(message, "Expected: %v <= %v", value, reference)
	}
	return nil
}

// CloseTo fails if actual and expected are further than delta apart.
// The difference is computed in float64, so unsigned values don't wrap around.
func CloseTo[T Number](actual, expected, delta T, message string) error {
	if !(math.Abs(float64(actual)-float64(expected)) <= float64(delta)) {
		return failf(message, "Expected: %v to be close to: %v within: %v", actual, expected, delta)
	}
	return nil
}

func Zero[T Number](value T, message string) error {
	if value != 0 {
		return failf(message, "Expected: %v to be zero", value)
	}
	return nil
}

func NotZero[T Number](value T, message string) error {
	if value == 0 {
		return failf(message, "Expected: %v not to be zero", value)
	}
	return nil
}

func Positive[T Number](value T, message string) error {
	if !(value > 0) {
		return failf(message, "Expected: %v to be positive", value)
	}
	return nil
}

func Negative[T Number](value T, message string) error {
	if !(value < 0) {
		return failf(message, "Expected: %v to be negative", value)
	}
	return nil
}

// Odd fails if value is even. Negative odd values pass.
func Odd[T Integer](value T, message string) error {
	if value%2 == 0 {
		return failf(message, "Expected: %v to be odd", value)
	}
	return nil
}

func Even[T Integer](value T, message string) error {
	if value%2 != 0 {
		return failf(message, "Expected: %v to be even", value)
	}
	return nil
}

// IncrementOf fails unless value is exactly reference + 1.
func IncrementOf[T Integer](value, reference T, message string) error {
	if value != reference+1 {
		return failf(message, "Expected: %v to be increment of: %v", value, reference)
	}
	return nil
}

func NotIncrementOf[T Integer](value, reference T, message string) error {
	if value == reference+1 {
		return failf(message, "Expected: %v not to be increment of: %v", value, reference)
	}
	return nil
}

// DecrementOf fails unless value is exactly reference - 1.
func DecrementOf[T Integer](value, reference T, message string) error {
	if value != reference-1 {
		return failf(message, "Expected: %v to be decrement of: %v", value, reference)
	}
	return nil
}

func NotDecrementOf[T Integer](value, reference T, message string) error {
	if value == reference-1 {
		return failf(message, "Expected: %v not to be decrement of: %v", value, reference)
	}
	return nil
}
