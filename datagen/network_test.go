package datagen

import (
	"net/netip"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetwork(t *testing.T) {
	gen := New(WithSeed(50))
	for range 50 {
		addr, err := netip.ParseAddr(gen.IPv4())
		require.NoError(t, err)
		assert.True(t, addr.Is4())

		assert.Regexp(t, `^([0-9A-F]{2}:){5}[0-9A-F]{2}$`, gen.MACAddress())
		assert.Regexp(t, `^#[0-9A-F]{6}$`, gen.HexColor())
	}
}

func TestAmount(t *testing.T) {
	gen := New(WithSeed(51))
	lo, hi := decimal.RequireFromString("10.005"), decimal.RequireFromString("12.5")
	for range 100 {
		amount, err := gen.Amount(lo, hi, 2)
		require.NoError(t, err)
		assert.True(t, amount.GreaterThanOrEqual(lo), amount.String())
		assert.True(t, amount.LessThanOrEqual(hi), amount.String())
		assert.LessOrEqual(t, -amount.Exponent(), int32(2))
	}

	whole, err := gen.Amount(decimal.NewFromInt(3), decimal.NewFromInt(3), 0)
	require.NoError(t, err)
	assert.True(t, whole.Equal(decimal.NewFromInt(3)))

	_, err = gen.Amount(hi, lo, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Amount(lo, hi, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Amount(decimal.RequireFromString("1.001"), decimal.RequireFromString("1.009"), 2)
	assert.ErrorIs(t, err, ErrInvalidArgument, "No two-place amount fits in the range")
	_, err = gen.Amount(decimal.NewFromInt(0), decimal.RequireFromString("1e30"), 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRegex(t *testing.T) {
	gen := New(WithSeed(52))
	for _, pattern := range []string{`[A-Z]{2}\d{4}`, `(foo|bar)-[a-f0-9]{8}`, `\w+@\w+\.com`, `x*`} {
		matcher := regexp.MustCompile(`^(?:` + pattern + `)$`)
		for range 20 {
			out, err := gen.Regex(pattern)
			require.NoError(t, err)
			assert.Regexp(t, matcher, out, pattern)
		}
	}
	_, err := gen.Regex(`(`)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
