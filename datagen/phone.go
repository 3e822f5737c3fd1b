package datagen

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/saylorsolutions/testkit/internal/retry"
)

var phonePatterns = map[string]string{
	"US": `\d{3}-\d{3}-\d{4}`,
	"CA": `\d{3}-\d{3}-\d{4}`,
	"GB": `\+44 \d{4} \d{6}`,
	"FR": `0\d \d{2} \d{2} \d{2} \d{2}`,
	"DE": `0\d{3} \d{7}`,
	"IN": `\d{5}-\d{5}`,
	"AU": `04\d{2} \d{3} \d{3}`,
	"JP": `0\d-\d{4}-\d{4}`,
	"LB": `\d{2} \d{3} \d{3}`,
	"BR": `\(\d{2}\) \d{5}-\d{4}`,
}

// MaxRepeatCount is the largest n accepted in `\d{n}`, the same limit RE2 puts on repetition.
const MaxRepeatCount = 1000

var errCandidateRejected = errors.New("candidate rejected")

// PhonePattern returns the pattern used for an ISO 3166 alpha-2 country code.
// The code is matched without regard to case or surrounding space.
func PhonePattern(countryCode string) (string, bool) {
	pattern, ok := phonePatterns[strings.ToUpper(strings.TrimSpace(countryCode))]
	return pattern, ok
}

// CountryCodes returns the supported country codes in sorted order.
func CountryCodes() []string {
	codes := make([]string, 0, len(phonePatterns))
	for code := range phonePatterns {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// PhoneNumber generates a phone number in the format used by the given country.
// An unknown country code results in an error matching [ErrInvalidArgument].
func (g *Generator) PhoneNumber(countryCode string) (string, error) {
	pattern, ok := PhonePattern(countryCode)
	if !ok {
		return "", fmt.Errorf("%w: invalid country code: %q", ErrInvalidArgument, countryCode)
	}
	return g.PhoneNumberFromPattern(pattern)
}

// PhoneNumberFromPattern generates a string that fully matches pattern.
//
// Only a small subset of regular expression syntax is synthesized: `\d` produces one digit, `\d{n}` produces n digits,
// any other escaped character is emitted literally, and everything else is copied as-is.
// Candidates that don't match the whole pattern are discarded and synthesis is attempted again,
// up to the limit set with [WithMaxAttempts]. Running out of attempts results in [ErrPatternExhausted].
func (g *Generator) PhoneNumberFromPattern(pattern string) (string, error) {
	return g.PhoneNumberFromPatternContext(context.Background(), pattern)
}

// PhoneNumberFromPatternContext is the same as [Generator.PhoneNumberFromPattern],
// but stops rejecting candidates with the context's error once ctx is done.
func (g *Generator) PhoneNumberFromPatternContext(ctx context.Context, pattern string) (string, error) {
	matcher, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return "", fmt.Errorf("%w: pattern %q does not compile: %w", ErrInvalidArgument, pattern, err)
	}
	var result string
	err = retry.DoContext(ctx, g.maxAttempts, func() (bool, error) {
		candidate, err := g.synthesize(pattern)
		if err != nil {
			return false, err
		}
		if !matcher.MatchString(candidate) {
			g.log.Debug("Discarding candidate that doesn't match pattern", "pattern", pattern, "candidate", candidate)
			return true, errCandidateRejected
		}
		result = candidate
		return false, nil
	})
	if err != nil {
		if errors.Is(err, retry.ErrMaxRetries) {
			return "", fmt.Errorf("%w: %q: %w", ErrPatternExhausted, pattern, err)
		}
		return "", err
	}
	return result, nil
}

// synthesize makes a single left to right pass over pattern.
func (g *Generator) synthesize(pattern string) (string, error) {
	var (
		buf     strings.Builder
		escaped bool
	)
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if !escaped {
			if ch == '\\' {
				escaped = true
				continue
			}
			buf.WriteByte(ch)
			continue
		}
		escaped = false
		if ch != 'd' {
			buf.WriteByte(ch)
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '{' {
			end := strings.IndexByte(pattern[i+2:], '}')
			if end >= 0 {
				countStr := pattern[i+2 : i+2+end]
				count, err := strconv.ParseUint(countStr, 10, 32)
				if err != nil {
					return "", fmt.Errorf("%w: invalid repeat count %q: %w", ErrInvalidArgument, countStr, err)
				}
				if count > MaxRepeatCount {
					return "", fmt.Errorf("%w: repeat count %d exceeds %d", ErrInvalidArgument, count, MaxRepeatCount)
				}
				buf.WriteString(g.digits(int(count)))
				i += 2 + end
				continue
			}
		}
		buf.WriteByte(g.digit())
	}
	return buf.String(), nil
}
