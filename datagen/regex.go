package datagen

import (
	"fmt"
	mathrand "math/rand"
	"regexp/syntax"

	regen "github.com/zach-klippenstein/goregen"
)

// MaxUnboundedRepeat caps how many times *, +, and {n,} repeat in [Generator.Regex].
const MaxUnboundedRepeat = 10

// Regex generates a string matching any RE2 pattern, for shapes the phone pattern subset can't express.
// Anchors are ignored, so the result always matches the pattern in full.
func (g *Generator) Regex(pattern string) (string, error) {
	gen, err := regen.NewGenerator(pattern, &regen.GeneratorArgs{
		RngSource:               mathrand.NewSource(g.rng.Int64()),
		Flags:                   syntax.Perl,
		MaxUnboundedRepeatCount: MaxUnboundedRepeat,
	})
	if err != nil {
		return "", fmt.Errorf("%w: pattern %q: %w", ErrInvalidArgument, pattern, err)
	}
	return gen.Generate(), nil
}
