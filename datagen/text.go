package datagen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// Alphabet is the set of characters used by [Generator.String] and email usernames.
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"
	// DefaultStringLength is a reasonable length for generated identifiers.
	DefaultStringLength = 10
	// DefaultDomain is the domain used by [Generator.Email].
	DefaultDomain = "defaultDomain.com"
	// DefaultEmailUsernameLength is the username length used by [Generator.Email].
	DefaultEmailUsernameLength = 10

	hexDigits = "0123456789ABCDEF"
)

func (g *Generator) fromCharset(charset string, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = charset[g.rng.IntN(len(charset))]
	}
	return string(buf)
}

// String generates a string of length characters drawn from [Alphabet].
func (g *Generator) String(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	return g.fromCharset(Alphabet, length), nil
}

// Hex generates a string of length uppercase hexadecimal digits.
func (g *Generator) Hex(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	return g.fromCharset(hexDigits, length), nil
}

// Char generates a rune in [min, max]. Surrogate code points are never returned.
func (g *Generator) Char(min, max rune) (rune, error) {
	if min > max {
		return 0, invalidRange(min, max)
	}
	if min < 0 || max > utf8.MaxRune {
		return 0, fmt.Errorf("%w: range [%d, %d] is outside of unicode", ErrInvalidArgument, min, max)
	}
	if min >= 0xD800 && max <= 0xDFFF {
		return 0, fmt.Errorf("%w: range [%d, %d] only contains surrogates", ErrInvalidArgument, min, max)
	}
	for {
		r := rune(g.int64Range(int64(min), int64(max)))
		if utf8.ValidRune(r) {
			return r, nil
		}
	}
}

// Email generates an address with a random username at [DefaultDomain].
func (g *Generator) Email() string {
	return g.fromCharset(Alphabet, DefaultEmailUsernameLength) + "@" + DefaultDomain
}

// EmailWith generates an address with a random username of the given length at domain.
// A leading '@' on domain is ignored.
func (g *Generator) EmailWith(domain string, usernameLength int) (string, error) {
	domain = strings.TrimPrefix(strings.TrimSpace(domain), "@")
	if len(domain) == 0 {
		return "", fmt.Errorf("%w: empty email domain", ErrInvalidArgument)
	}
	if usernameLength < 1 {
		return "", fmt.Errorf("%w: username length must be positive, got %d", ErrInvalidArgument, usernameLength)
	}
	return g.fromCharset(Alphabet, usernameLength) + "@" + domain, nil
}

// IsNumeric reports whether s is a non-empty string of ASCII digits.
func IsNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FullName generates a realistic first and last name.
func (g *Generator) FullName() string {
	return g.faker.Name()
}

// DomainName generates a realistic looking domain, like "example.com".
func (g *Generator) DomainName() string {
	return g.faker.DomainName()
}
