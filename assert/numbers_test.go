package assert_test

import (
	"math"
	"testing"

	"github.com/saylorsolutions/testkit/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRanges(t *testing.T) {
	tests := map[string]struct {
		value, min, max    int
		exclusive, inclusive bool
	}{
		"Inside":      {value: 5, min: 1, max: 10, exclusive: true, inclusive: true},
		"At minimum":  {value: 1, min: 1, max: 10, exclusive: false, inclusive: true},
		"At maximum":  {value: 10, min: 1, max: 10, exclusive: false, inclusive: true},
		"Below":       {value: 0, min: 1, max: 10},
		"Above":       {value: 11, min: 1, max: 10},
		"Empty range": {value: 5, min: 5, max: 5, inclusive: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			check := func(err error, shouldPass bool) {
				t.Helper()
				if shouldPass {
					require.NoError(t, err)
				} else {
					require.Error(t, err)
				}
			}
			check(assert.InRange(tc.value, tc.min, tc.max, name), tc.exclusive)
			check(assert.NotInRange(tc.value, tc.min, tc.max, name), !tc.exclusive)
			check(assert.InRangeIncluded(tc.value, tc.min, tc.max, name), tc.inclusive)
			check(assert.NotInRangeIncluded(tc.value, tc.min, tc.max, name), !tc.inclusive)
		})
	}
	require.Equal(t, "r Expected: 1 < 1 < 3", message(t, assert.InRange(1, 1, 3, "r")))
	require.Equal(t, "r Expected: 0 <= 5 <= 3", message(t, assert.InRangeIncluded(5, 0, 3, "r")))
	require.Equal(t, "r Expected: 2 to not be in range (1, 3)", message(t, assert.NotInRange(2, 1, 3, "r")))
	require.Equal(t, "r Expected: 3 to not be in range [1, 3]", message(t, assert.NotInRangeIncluded(3, 1, 3, "r")))
}

func TestRanges_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Int64Range(-1000, 1000).Draw(t, "lo")
		hi := rapid.Int64Range(lo, 2000).Draw(t, "hi")
		v := rapid.Int64Range(lo, hi).Draw(t, "v")
		if err := assert.InRangeIncluded(v, lo, hi, "inclusive"); err != nil {
			t.Fatal(err)
		}
		if v > lo && v < hi {
			if err := assert.InRange(v, lo, hi, "exclusive"); err != nil {
				t.Fatal(err)
			}
		}
	})
}

func TestComparisons(t *testing.T) {
	require.NoError(t, assert.GreaterThan(2, 1, "gt"))
	require.Equal(t, "gt Expected: 1 > 1", message(t, assert.GreaterThan(1, 1, "gt")))
	require.NoError(t, assert.GreaterThanOrEqual(1, 1, "gte"))
	require.Equal(t, "gte Expected: 0 >= 1", message(t, assert.GreaterThanOrEqual(0, 1, "gte")))
	require.NoError(t, assert.LessThan(1.5, 2.0, "lt"))
	require.Equal(t, "lt Expected: 2 < 2", message(t, assert.LessThan(2, 2, "lt")))
	require.NoError(t, assert.LessThanOrEqual("a", "b", "lte"))
	require.Equal(t, "lte Expected: 3 <= 2", message(t, assert.LessThanOrEqual(3, 2, "lte")))
	require.Error(t, assert.GreaterThan(math.NaN(), 0, "NaN never compares"))
}

func TestCloseTo(t *testing.T) {
	require.NoError(t, assert.CloseTo(1.0, 1.05, 0.1, "close"))
	require.NoError(t, assert.CloseTo(uint(3), uint(5), uint(2), "unsigned"))
	require.Equal(t,
		"far Expected: 1 to be close to: 2 within: 0.5",
		message(t, assert.CloseTo(1.0, 2.0, 0.5, "far")),
	)
}

func TestSigns(t *testing.T) {
	require.NoError(t, assert.Zero(0.0, "zero"))
	require.Equal(t, "z Expected: 1 to be zero", message(t, assert.Zero(1, "z")))
	require.NoError(t, assert.NotZero(-1, "not zero"))
	require.Equal(t, "z Expected: 0 not to be zero", message(t, assert.NotZero(0, "z")))
	require.NoError(t, assert.Positive(uint8(1), "positive"))
	require.Error(t, assert.Positive(0, "zero is not positive"))
	require.NoError(t, assert.Negative(-0.5, "negative"))
	require.Equal(t, "n Expected: 0 to be negative", message(t, assert.Negative(0, "n")))
}

func TestParity(t *testing.T) {
	require.NoError(t, assert.Odd(3, "odd"))
	require.NoError(t, assert.Odd(-3, "negative odd"))
	require.Equal(t, "o Expected: 4 to be odd", message(t, assert.Odd(4, "o")))
	require.NoError(t, assert.Even(-4, "even"))
	require.Equal(t, "e Expected: 3 to be even", message(t, assert.Even(3, "e")))
}

func TestIncrementDecrement(t *testing.T) {
	require.NoError(t, assert.IncrementOf(5, 4, "inc"))
	require.Equal(t, "i Expected: 6 to be increment of: 4", message(t, assert.IncrementOf(6, 4, "i")))
	require.NoError(t, assert.NotIncrementOf(6, 4, "not inc"))
	require.Equal(t, "i Expected: 5 not to be increment of: 4", message(t, assert.NotIncrementOf(5, 4, "i")))
	require.NoError(t, assert.DecrementOf(3, 4, "dec"))
	require.Equal(t, "d Expected: 2 to be decrement of: 4", message(t, assert.DecrementOf(2, 4, "d")))
	require.NoError(t, assert.NotDecrementOf(2, 4, "not dec"))
	require.Equal(t, "d Expected: 3 not to be decrement of: 4", message(t, assert.NotDecrementOf(3, 4, "d")))
}
