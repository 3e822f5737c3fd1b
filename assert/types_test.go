package assert_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/saylorsolutions/testkit/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumber(t *testing.T) {
	numbers := []any{1, int8(1), uint64(1), 1.5, float32(1), complex(1, 2), uintptr(0)}
	for _, n := range numbers {
		require.NoError(t, assert.IsNumber(n, "number"), "%T", n)
		require.Error(t, assert.IsNotNumber(n, "number"), "%T", n)
	}
	nonNumbers := []any{nil, "1", true, []int{1}, struct{}{}}
	for _, n := range nonNumbers {
		require.Error(t, assert.IsNumber(n, "not number"), "%T", n)
		require.NoError(t, assert.IsNotNumber(n, "not number"), "%T", n)
	}
	require.Equal(t, "value Expected a number, but was: string", message(t, assert.IsNumber("1", "value")))
}

func TestIsTypeOf(t *testing.T) {
	require.NoError(t, assert.IsTypeOf[string]("a", "string"))
	require.Equal(t,
		"kind Expected type: int, but was: string",
		message(t, assert.IsTypeOf[int]("a", "kind")),
	)
}

func TestInstanceOf(t *testing.T) {
	require.NoError(t, assert.InstanceOf[fmt.Stringer](time.Second, "stringer"))
	require.NoError(t, assert.InstanceOf[error](fmt.Errorf("x"), "error"))
	require.Equal(t,
		"stringer Object is not an instance of: fmt.Stringer",
		message(t, assert.InstanceOf[fmt.Stringer](5, "stringer")),
	)
}

func TestIsFunction(t *testing.T) {
	var nilFunc func()
	require.NoError(t, assert.IsFunction(func() {}, "func"))
	require.NoError(t, assert.IsFunction(fmt.Sprint, "func"))
	require.Error(t, assert.IsFunction(nilFunc, "nil func"))
	require.Error(t, assert.IsFunction(nil, "nil"))
	require.Equal(t, "call Object is not callable", message(t, assert.IsFunction(3, "call")))
}

func TestIsArray(t *testing.T) {
	require.NoError(t, assert.IsArray([]int{}, "slice"))
	require.NoError(t, assert.IsArray([2]int{}, "array"))
	require.Error(t, assert.IsArray(map[int]int{}, "map"))
	require.Error(t, assert.IsArray(nil, "nil"))
	require.NoError(t, assert.IsNotArray("abc", "string"))
	require.Equal(t, "list Object is a slice or array, but should not be", message(t, assert.IsNotArray([]string{}, "list")))
}

func TestIsDate(t *testing.T) {
	now := time.Now()
	var nilTime *time.Time
	require.NoError(t, assert.IsDate(now, "value"))
	require.NoError(t, assert.IsDate(&now, "pointer"))
	require.Error(t, assert.IsDate(nilTime, "nil pointer"))
	require.Equal(t, "date Object is not a Date", message(t, assert.IsDate("2024-01-01", "date")))
}

func TestIsNil(t *testing.T) {
	var (
		nilMap map[string]int
		nilPtr *int
		nilErr error
	)
	for name, v := range map[string]any{"untyped": nil, "map": nilMap, "pointer": nilPtr, "error": nilErr} {
		require.NoError(t, assert.IsNil(v, name), name)
		require.NoError(t, assert.IsNullOrUndefined(v, name), name)
		require.Error(t, assert.IsNotNil(v, name), name)
	}
	require.Equal(t, "present Expected nil, but was: 0", message(t, assert.IsNil(0, "present")))
	require.NoError(t, assert.IsNotNil("", "empty string"))
	require.Equal(t, "missing Expected a non-nil value", message(t, assert.IsNotNil(nil, "missing")))
}
