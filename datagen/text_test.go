package datagen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	gen := New(WithSeed(30))
	s, err := gen.String(DefaultStringLength)
	require.NoError(t, err)
	assert.Len(t, s, DefaultStringLength)
	for _, ch := range s {
		assert.Contains(t, Alphabet, string(ch))
	}

	empty, err := gen.String(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = gen.String(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHex(t *testing.T) {
	gen := New(WithSeed(31))
	s, err := gen.Hex(32)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9A-F]{32}$`, s)
	_, err = gen.Hex(-2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestChar(t *testing.T) {
	gen := New(WithSeed(32))
	for range 100 {
		r, err := gen.Char('a', 'f')
		require.NoError(t, err)
		assert.True(t, r >= 'a' && r <= 'f', "%q out of range", r)
	}
	r, err := gen.Char('x', 'x')
	require.NoError(t, err)
	assert.Equal(t, 'x', r)

	for range 100 {
		r, err = gen.Char(0xD7FF, 0xE000)
		require.NoError(t, err)
		assert.True(t, utf8.ValidRune(r))
	}

	_, err = gen.Char('z', 'a')
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Char(0xD800, 0xDFFF)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Char(-1, 'a')
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEmail(t *testing.T) {
	gen := New(WithSeed(33))
	email := gen.Email()
	user, domain, found := strings.Cut(email, "@")
	require.True(t, found)
	assert.Len(t, user, DefaultEmailUsernameLength)
	assert.Equal(t, DefaultDomain, domain)

	email, err := gen.EmailWith("@example.org", 4)
	require.NoError(t, err)
	assert.Regexp(t, `^[a-zA-Z0-9-]{4}@example\.org$`, email)

	_, err = gen.EmailWith(" @ ", 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.EmailWith("example.org", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0123"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("-1"))
	assert.False(t, IsNumeric("1.5"))
	assert.False(t, IsNumeric("١٢"), "Only ASCII digits count")
}

func TestPeople(t *testing.T) {
	gen := New(WithSeed(34))
	assert.Contains(t, gen.FullName(), " ")
	assert.Contains(t, gen.DomainName(), ".")
}
