package datagen

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount generates a monetary amount in [min, max] with exactly places digits after the decimal point.
// Every representable amount in the range is equally likely.
func (g *Generator) Amount(min, max decimal.Decimal, places int32) (decimal.Decimal, error) {
	if places < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative decimal places %d", ErrInvalidArgument, places)
	}
	if min.GreaterThan(max) {
		return decimal.Zero, invalidRange(min, max)
	}
	lo := min.Shift(places).Ceil()
	hi := max.Shift(places).Floor()
	if lo.GreaterThan(hi) {
		return decimal.Zero, fmt.Errorf("%w: no amount with %d decimal places between %s and %s", ErrInvalidArgument, places, min, max)
	}
	if !lo.BigInt().IsInt64() || !hi.BigInt().IsInt64() {
		return decimal.Zero, fmt.Errorf("%w: range [%s, %s] is too wide for %d decimal places", ErrInvalidArgument, min, max, places)
	}
	units := g.int64Range(lo.IntPart(), hi.IntPart())
	return decimal.New(units, -places), nil
}
