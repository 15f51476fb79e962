package recipients

import (
	"errors"
	"fmt"
	"strings"
)

const (
	minNumberDigits = 7
	maxNumberDigits = 15
)

var (
	ErrInvalidCharacters = errors.New("invalid characters in phone number")
	ErrTooShort          = errors.New("phone number is too short")
	ErrTooLong           = errors.New("phone number is too long")
)

// NormalizeNumber canonicalizes a raw phone number: whitespace is trimmed,
// one leading + is preserved, and spaces, hyphens, and parentheses are
// stripped. Anything outside that character set fails, as does a digit
// count outside [7, 15].
func NormalizeNumber(raw string) (string, error) {
	number := strings.TrimSpace(raw)

	stem, hasPlus := strings.CutPrefix(number, "+")

	var digits strings.Builder
	for _, c := range stem {
		switch {
		case c >= '0' && c <= '9':
			digits.WriteRune(c)
		case c == ' ' || c == '-' || c == '(' || c == ')':
			// allowed punctuation, dropped
		default:
			return "", fmt.Errorf("%w: %s", ErrInvalidCharacters, number)
		}
	}

	switch n := digits.Len(); {
	case n < minNumberDigits:
		return "", fmt.Errorf("%w: %s", ErrTooShort, number)
	case n > maxNumberDigits:
		return "", fmt.Errorf("%w: %s", ErrTooLong, number)
	}

	if hasPlus {
		return "+" + digits.String(), nil
	}
	return digits.String(), nil
}
