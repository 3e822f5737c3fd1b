package datagen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUIDVersion selects the algorithm used by [Generator.UUID].
type UUIDVersion string

const (
	UUIDv1 UUIDVersion = "v1"
	UUIDv3 UUIDVersion = "v3"
	UUIDv4 UUIDVersion = "v4"
	UUIDv5 UUIDVersion = "v5"
	UUIDv6 UUIDVersion = "v6"
	UUIDv7 UUIDVersion = "v7"
)

// UUID generates a UUID of the given version in canonical form.
// Name based versions hash a random name in the URL namespace.
// Versions 1 and 6 depend on the host clock and node, so they aren't reproducible with [WithSeed].
func (g *Generator) UUID(version UUIDVersion) (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	switch UUIDVersion(strings.ToLower(string(version))) {
	case UUIDv1:
		id, err = uuid.NewUUID()
	case UUIDv3:
		id = uuid.NewMD5(uuid.NameSpaceURL, []byte(g.fromCharset(Alphabet, DefaultStringLength)))
	case UUIDv4:
		id, err = uuid.NewRandomFromReader(g)
	case UUIDv5:
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(g.fromCharset(Alphabet, DefaultStringLength)))
	case UUIDv6:
		id, err = uuid.NewV6()
	case UUIDv7:
		id, err = uuid.NewV7FromReader(g)
	default:
		return "", fmt.Errorf("%w: UUID version %q", ErrUnsupportedValue, version)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID %s: %w", version, err)
	}
	return id.String(), nil
}

// SSN generates a US social security number shaped like XXX-XX-XXXX.
func (g *Generator) SSN() string {
	return g.digits(3) + "-" + g.digits(2) + "-" + g.digits(4)
}

// PassportNumber generates 9 digits.
func (g *Generator) PassportNumber() string {
	return g.digits(9)
}

// CreditCardNumber generates 16 digits, the last being a Luhn check digit.
func (g *Generator) CreditCardNumber() string {
	payload := g.digits(15)
	return payload + string(rune('0'+luhnCheckDigit(payload)))
}

// BankAccountNumber generates 12 digits.
func (g *Generator) BankAccountNumber() string {
	return g.digits(12)
}

// IBAN generates a German format IBAN: "DE", two check digits, and an 18 digit account identifier.
// The check digits are valid according to ISO 7064 mod 97-10.
func (g *Generator) IBAN() string {
	bban := g.digits(18)
	return fmt.Sprintf("DE%02d%s", 98-mod97(bban+"131400"), bban)
}

// LuhnCheckDigit calculates the digit that makes number pass [LuhnValid] when appended.
func LuhnCheckDigit(number string) (int, error) {
	if !IsNumeric(number) {
		return 0, fmt.Errorf("%w: %q is not a string of digits", ErrInvalidArgument, number)
	}
	return luhnCheckDigit(number), nil
}

func luhnCheckDigit(payload string) int {
	return (10 - luhnSum(payload, true)%10) % 10
}

// luhnSum doubles every second digit from the right, starting with the rightmost when doubleFirst is set.
func luhnSum(number string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

// LuhnValid reports whether number is a string of digits with a valid Luhn checksum.
func LuhnValid(number string) bool {
	return IsNumeric(number) && luhnSum(number, false)%10 == 0
}

// IBANValid reports whether iban has valid mod 97 check digits.
// Only the structure is checked, not country specific lengths.
func IBANValid(iban string) bool {
	iban = strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if len(iban) < 5 {
		return false
	}
	var numeric strings.Builder
	for _, ch := range iban[4:] + iban[:4] {
		switch {
		case ch >= '0' && ch <= '9':
			numeric.WriteRune(ch)
		case ch >= 'A' && ch <= 'Z':
			fmt.Fprintf(&numeric, "%d", ch-'A'+10)
		default:
			return false
		}
	}
	return mod97(numeric.String()) == 1
}

func mod97(digits string) int {
	rem := 0
	for i := 0; i < len(digits); i++ {
		rem = (rem*10 + int(digits[i]-'0')) % 97
	}
	return rem
}
