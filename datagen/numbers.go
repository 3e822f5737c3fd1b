package datagen

import (
	"fmt"
	"math"
)

// Int generates an integer in [min, max].
func (g *Generator) Int(min, max int) (int, error) {
	if min > max {
		return 0, invalidRange(min, max)
	}
	return int(g.int64Range(int64(min), int64(max))), nil
}

// Int64 generates an integer in [min, max].
func (g *Generator) Int64(min, max int64) (int64, error) {
	if min > max {
		return 0, invalidRange(min, max)
	}
	return g.int64Range(min, max), nil
}

// Short generates a 16 bit integer in [min, max].
func (g *Generator) Short(min, max int16) (int16, error) {
	if min > max {
		return 0, invalidRange(min, max)
	}
	return int16(g.int64Range(int64(min), int64(max))), nil
}

func (g *Generator) float64Range(min, max float64) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return 0, fmt.Errorf("%w: range [%v, %v] must be finite", ErrInvalidArgument, min, max)
	}
	if min > max {
		return 0, invalidRange(min, max)
	}
	f := g.rng.Float64()
	// Interpolating avoids overflow when max-min exceeds the float64 range.
	val := min*(1-f) + max*f
	return math.Min(math.Max(val, min), max), nil
}

// Float generates a 32 bit float in [min, max].
func (g *Generator) Float(min, max float32) (float32, error) {
	val, err := g.float64Range(float64(min), float64(max))
	if err != nil {
		return 0, err
	}
	return min32(max32(float32(val), min), max), nil
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Double generates a float64 in [min, max].
func (g *Generator) Double(min, max float64) (float64, error) {
	return g.float64Range(min, max)
}

// Percentage generates a value in [0, 100].
func (g *Generator) Percentage() float64 {
	return g.rng.Float64() * 100
}

// Gaussian samples a normal distribution.
func (g *Generator) Gaussian(mean, stddev float64) (float64, error) {
	if stddev < 0 || math.IsNaN(stddev) {
		return 0, fmt.Errorf("%w: standard deviation %v must not be negative", ErrInvalidArgument, stddev)
	}
	return g.rng.NormFloat64()*stddev + mean, nil
}

// Exponential samples an exponential distribution with rate lambda.
func (g *Generator) Exponential(lambda float64) (float64, error) {
	if !(lambda > 0) {
		return 0, fmt.Errorf("%w: lambda %v must be positive", ErrInvalidArgument, lambda)
	}
	return g.rng.ExpFloat64() / lambda, nil
}

const distributionTolerance = 1e-8

// CustomDistribution returns index i with probability probabilities[i].
// The probabilities must be non-negative and sum to 1.
func (g *Generator) CustomDistribution(probabilities []float64) (int, error) {
	if len(probabilities) == 0 {
		return 0, fmt.Errorf("%w: no probabilities given", ErrInvalidArgument)
	}
	var (
		sum  float64
		last int
	)
	for i, p := range probabilities {
		if p < 0 || math.IsNaN(p) {
			return 0, fmt.Errorf("%w: probability %v at index %d is negative", ErrInvalidArgument, p, i)
		}
		if p > 0 {
			last = i
		}
		sum += p
	}
	if math.Abs(sum-1) > distributionTolerance {
		return 0, fmt.Errorf("%w: probabilities sum to %v, not 1", ErrInvalidArgument, sum)
	}
	target := g.rng.Float64()
	var cumulative float64
	for i, p := range probabilities {
		cumulative += p
		if p > 0 && target < cumulative {
			return i, nil
		}
	}
	return last, nil
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Prime returns a prime in [min, max]. The search starts at a random point in the range and wraps around.
func (g *Generator) Prime(min, max int) (int, error) {
	if min > max {
		return 0, invalidRange(min, max)
	}
	lo, hi := int64(min), int64(max)
	if lo < 2 {
		lo = 2
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: no prime in [%d, %d]", ErrInvalidArgument, min, max)
	}
	span := uint64(hi - lo + 1)
	start := uint64(g.int64Range(lo, hi) - lo)
	for i := uint64(0); i < span; i++ {
		n := lo + int64((start+i)%span)
		if isPrime(n) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: no prime in [%d, %d]", ErrInvalidArgument, min, max)
}

// Even generates an even integer in [min, max].
func (g *Generator) Even(min, max int) (int, error) {
	return g.parity(min, max, 0)
}

// Odd generates an odd integer in [min, max].
func (g *Generator) Odd(min, max int) (int, error) {
	return g.parity(min, max, 1)
}

func (g *Generator) parity(min, max int, rem int) (int, error) {
	if min > max {
		return 0, invalidRange(min, max)
	}
	lo, hi := int64(min), int64(max)
	matches := func(n int64) bool { return n%2 == int64(rem) || n%2 == -int64(rem) }
	if lo == hi && !matches(lo) {
		return 0, fmt.Errorf("%w: no value with the requested parity in [%d, %d]", ErrInvalidArgument, min, max)
	}
	if !matches(lo) {
		lo++
	}
	if !matches(hi) {
		hi--
	}
	steps := (uint64(hi) - uint64(lo)) / 2
	return int(uint64(lo) + 2*g.rng.Uint64N(steps+1)), nil
}

// UniqueSequence returns length distinct integers in [min, max], in random order.
// Only the drawn positions are tracked, so large ranges are cheap.
func (g *Generator) UniqueSequence(min, max, length int) ([]int, error) {
	if min > max {
		return nil, invalidRange(min, max)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative sequence length %d", ErrInvalidArgument, length)
	}
	size := uint64(max) - uint64(min) + 1
	if size != 0 && uint64(length) > size {
		return nil, fmt.Errorf("%w: sequence length %d exceeds the range size %d", ErrInvalidArgument, length, size)
	}
	swapped := make(map[uint64]uint64, length)
	at := func(i uint64) uint64 {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}
	seq := make([]int, length)
	for i := range seq {
		pos := uint64(i)
		j := pos
		// Wraps to the true count when size is 0, which means the full 64 bit range.
		if remaining := size - pos; remaining == 0 {
			j += g.rng.Uint64()
		} else {
			j += g.rng.Uint64N(remaining)
		}
		chosen, displaced := at(j), at(pos)
		swapped[j] = displaced
		seq[i] = int(uint64(min) + chosen)
	}
	return seq, nil
}

// Pick returns a uniformly chosen element of values.
func Pick[T any](g *Generator, values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: nothing to pick from", ErrInvalidArgument)
	}
	return values[g.rng.IntN(len(values))], nil
}

// Complex generates a complex number with each part drawn from its own range.
func (g *Generator) Complex(realMin, realMax, imagMin, imagMax float64) (complex128, error) {
	re, err := g.float64Range(realMin, realMax)
	if err != nil {
		return 0, fmt.Errorf("real part: %w", err)
	}
	im, err := g.float64Range(imagMin, imagMax)
	if err != nil {
		return 0, fmt.Errorf("imaginary part: %w", err)
	}
	return complex(re, im), nil
}

// FormatComplex renders c as "a + bi" with two decimal places.
func FormatComplex(c complex128) string {
	return fmt.Sprintf("%.2f + %.2fi", real(c), imag(c))
}

// Bool returns true or false with equal probability.
func (g *Generator) Bool() bool {
	return g.rng.Uint64()&1 == 1
}

// Byte generates a single random byte.
func (g *Generator) Byte() byte {
	return byte(g.rng.Uint64())
}

// Bytes generates n random bytes.
func (g *Generator) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", ErrInvalidArgument, n)
	}
	buf := make([]byte, n)
	_, _ = g.Read(buf)
	return buf, nil
}
