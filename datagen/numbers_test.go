package datagen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInt_InRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int().Draw(t, "a")
		b := rapid.Int().Draw(t, "b")
		lo, hi := min(a, b), max(a, b)
		gen := New(WithSeed(rapid.Uint64().Draw(t, "seed")))
		val, err := gen.Int(lo, hi)
		if err != nil {
			t.Fatal(err)
		}
		if val < lo || val > hi {
			t.Fatalf("%d is outside [%d, %d]", val, lo, hi)
		}
	})
}

func TestIntegerRanges(t *testing.T) {
	gen := New(WithSeed(40))
	_, err := gen.Int(2, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Int64(2, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Short(2, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	val, err := gen.Int(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, val)

	_, err = gen.Int64(math.MinInt64, math.MaxInt64)
	require.NoError(t, err, "The full range should not overflow")

	short, err := gen.Short(-3, 3)
	require.NoError(t, err)
	assert.True(t, short >= -3 && short <= 3)
}

func TestFloatRanges(t *testing.T) {
	gen := New(WithSeed(41))
	for range 100 {
		f, err := gen.Float(-1.5, 2.5)
		require.NoError(t, err)
		assert.True(t, f >= -1.5 && f <= 2.5, f)

		d, err := gen.Double(-math.MaxFloat64, math.MaxFloat64)
		require.NoError(t, err)
		assert.False(t, math.IsInf(d, 0))

		p := gen.Percentage()
		assert.True(t, p >= 0 && p <= 100, p)
	}
	_, err := gen.Double(1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Double(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Float(0, float32(math.Inf(1)))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDistributions(t *testing.T) {
	gen := New(WithSeed(42))
	_, err := gen.Gaussian(0, 1)
	assert.NoError(t, err)
	val, err := gen.Gaussian(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, val)
	_, err = gen.Gaussian(0, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	for range 100 {
		e, err := gen.Exponential(2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, e, 0.0)
	}
	for _, lambda := range []float64{0, -1, math.NaN()} {
		_, err = gen.Exponential(lambda)
		assert.ErrorIs(t, err, ErrInvalidArgument, lambda)
	}
}

func TestCustomDistribution(t *testing.T) {
	gen := New(WithSeed(43))
	counts := make([]int, 3)
	for range 1000 {
		idx, err := gen.CustomDistribution([]float64{0.2, 0, 0.8})
		require.NoError(t, err)
		counts[idx]++
	}
	assert.Zero(t, counts[1], "Zero weight should never be chosen")
	assert.Greater(t, counts[2], counts[0])

	idx, err := gen.CustomDistribution([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	for name, probs := range map[string][]float64{
		"Empty":     nil,
		"Negative":  {1.5, -0.5},
		"Short sum": {0.3, 0.3},
		"Long sum":  {0.7, 0.7},
	} {
		_, err = gen.CustomDistribution(probs)
		assert.ErrorIs(t, err, ErrInvalidArgument, name)
	}
	_, err = gen.CustomDistribution([]float64{0.5, 0.5 + 1e-9})
	assert.NoError(t, err, "Sums within tolerance are accepted")
}

func TestPrime(t *testing.T) {
	gen := New(WithSeed(44))
	primes := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true}
	for range 100 {
		p, err := gen.Prime(-10, 20)
		require.NoError(t, err)
		assert.True(t, primes[p], p)
	}
	p, err := gen.Prime(24, 29)
	require.NoError(t, err)
	assert.Equal(t, 29, p)

	for _, r := range [][2]int{{24, 28}, {-5, 1}, {0, 0}} {
		_, err = gen.Prime(r[0], r[1])
		assert.ErrorIs(t, err, ErrInvalidArgument, r)
	}
	_, err = gen.Prime(5, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.True(t, isPrime(7919))
	assert.False(t, isPrime(7917))
	assert.False(t, isPrime(1))
}

func TestParity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(-1000, 1000).Draw(t, "min")
		hi := rapid.IntRange(lo+1, lo+1000).Draw(t, "max")
		gen := New(WithSeed(rapid.Uint64().Draw(t, "seed")))
		even, err := gen.Even(lo, hi)
		if err != nil {
			t.Fatal(err)
		}
		odd, err := gen.Odd(lo, hi)
		if err != nil {
			t.Fatal(err)
		}
		if even%2 != 0 || even < lo || even > hi {
			t.Fatalf("even %d invalid for [%d, %d]", even, lo, hi)
		}
		if odd%2 == 0 || odd < lo || odd > hi {
			t.Fatalf("odd %d invalid for [%d, %d]", odd, lo, hi)
		}
	})
}

func TestParity_Edges(t *testing.T) {
	gen := New(WithSeed(45))
	v, err := gen.Even(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	v, err = gen.Odd(-3, -3)
	require.NoError(t, err)
	assert.Equal(t, -3, v)

	_, err = gen.Even(3, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Odd(4, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Odd(5, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	v, err = gen.Even(math.MinInt, math.MaxInt)
	require.NoError(t, err)
	assert.Zero(t, v%2)
	v, err = gen.Odd(math.MaxInt-1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, v)
}

func TestUniqueSequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(-500, 500).Draw(t, "min")
		hi := rapid.IntRange(lo, lo+200).Draw(t, "max")
		length := rapid.IntRange(0, hi-lo+1).Draw(t, "length")
		gen := New(WithSeed(rapid.Uint64().Draw(t, "seed")))
		seq, err := gen.UniqueSequence(lo, hi, length)
		if err != nil {
			t.Fatal(err)
		}
		if len(seq) != length {
			t.Fatalf("expected %d values, got %d", length, len(seq))
		}
		seen := map[int]bool{}
		for _, v := range seq {
			if v < lo || v > hi {
				t.Fatalf("%d is outside [%d, %d]", v, lo, hi)
			}
			if seen[v] {
				t.Fatalf("duplicate value %d in %v", v, seq)
			}
			seen[v] = true
		}
	})
}

func TestUniqueSequence_Errors(t *testing.T) {
	gen := New(WithSeed(46))
	_, err := gen.UniqueSequence(1, 5, 6)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.UniqueSequence(1, 5, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.UniqueSequence(5, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	seq, err := gen.UniqueSequence(1, 5, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, seq)

	seq, err = gen.UniqueSequence(math.MinInt, math.MaxInt, 3)
	require.NoError(t, err)
	assert.Len(t, seq, 3)
}

func TestPick(t *testing.T) {
	gen := New(WithSeed(47))
	val, err := Pick(gen, []string{"red", "green"})
	require.NoError(t, err)
	assert.Contains(t, []string{"red", "green"}, val)

	_, err = Pick[int](gen, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestComplex(t *testing.T) {
	gen := New(WithSeed(48))
	c, err := gen.Complex(-1, 1, 10, 20)
	require.NoError(t, err)
	assert.True(t, real(c) >= -1 && real(c) <= 1)
	assert.True(t, imag(c) >= 10 && imag(c) <= 20)

	_, err = gen.Complex(0, 1, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorContains(t, err, "imaginary part")

	assert.Equal(t, "1.50 + -0.25i", FormatComplex(complex(1.5, -0.25)))
}

func TestBytes(t *testing.T) {
	gen := New(WithSeed(49))
	b, err := gen.Bytes(13)
	require.NoError(t, err)
	assert.Len(t, b, 13)
	_, err = gen.Bytes(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var trues int
	for range 200 {
		if gen.Bool() {
			trues++
		}
		_ = gen.Byte()
	}
	assert.True(t, trues > 0 && trues < 200)
}
