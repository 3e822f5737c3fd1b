package assert

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	urlPattern   = regexp.MustCompile(`^https?://\S+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)
)

// StringLength fails unless s has exactly expectedLength characters.
// Characters are counted as runes, not bytes.
func StringLength(s string, expectedLength int, message string) error {
	if l := utf8.RuneCountInString(s); l != expectedLength {
		return failf(message, "Expected length: %d, but was: %d", expectedLength, l)
	}
	return nil
}

func StringContains(s, substring string, message string) error {
	if !strings.Contains(s, substring) {
		return failf(message, "String does not contain: %s", substring)
	}
	return nil
}

func StringStartsWith(s, prefix string, message string) error {
	if !strings.HasPrefix(s, prefix) {
		return failf(message, "String does not start with: %s", prefix)
	}
	return nil
}

func StringEndsWith(s, suffix string, message string) error {
	if !strings.HasSuffix(s, suffix) {
		return failf(message, "String does not end with: %s", suffix)
	}
	return nil
}

func compileAnchored(message, pattern string, full bool) (*regexp.Regexp, error) {
	expr := `^(?:` + pattern + `)`
	if full {
		expr += `$`
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, failWrap(message, err, "Invalid pattern: %s", pattern)
	}
	return re, nil
}

// StringMatchesRegex fails unless the whole of s matches pattern.
// An invalid pattern is reported as a failure wrapping the compile error.
func StringMatchesRegex(s, pattern string, message string) error {
	re, err := compileAnchored(message, pattern, true)
	if err != nil {
		return err
	}
	if !re.MatchString(s) {
		return failf(message, "String does not match pattern: %s", pattern)
	}
	return nil
}

// StringNotMatchesRegex fails if the whole of s matches pattern.
func StringNotMatchesRegex(s, pattern string, message string) error {
	re, err := compileAnchored(message, pattern, true)
	if err != nil {
		return err
	}
	if re.MatchString(s) {
		return failf(message, "String matches pattern: %s", pattern)
	}
	return nil
}

// StringMatchesPattern fails unless pattern matches at the start of s.
// Unlike [StringMatchesRegex], trailing text after the match is allowed.
func StringMatchesPattern(s, pattern string, message string) error {
	re, err := compileAnchored(message, pattern, false)
	if err != nil {
		return err
	}
	if !re.MatchString(s) {
		return failf(message, "String does not match pattern: %s", pattern)
	}
	return nil
}

func StringIsEmpty(s string, message string) error {
	if len(s) > 0 {
		return failf(message, "Expected empty string, but was not.")
	}
	return nil
}

func StringIsNotEmpty(s string, message string) error {
	if len(s) == 0 {
		return failf(message, "Expected non-empty string, but was empty.")
	}
	return nil
}

// ValidURL fails unless url is an http or https URL without whitespace.
func ValidURL(url string, message string) error {
	if !urlPattern.MatchString(url) {
		return failf(message, "String is not a valid URL")
	}
	return nil
}

func ValidEmail(email string, message string) error {
	if !emailPattern.MatchString(email) {
		return failf(message, "Email address is not valid")
	}
	return nil
}

// DateFormat fails unless date can be parsed with the given [time.Parse] layout.
func DateFormat(date, layout string, message string) error {
	if _, err := time.Parse(layout, date); err != nil {
		return failWrap(message, err, "Date does not match format: %s", layout)
	}
	return nil
}
