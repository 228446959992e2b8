package statement

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMalformedNumber = errors.New("malformed number")

// plainNumber is what remains of a token once separators and parentheses are gone.
var plainNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// Normalize parses a statement-formatted number such as "1,234.56" or "(500.00)".
// An empty token is unset (Valid == false), which is distinct from zero.
func Normalize(token string) (decimal.NullDecimal, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
		// parentheses already mark the sign
		if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
			return decimal.NullDecimal{}, fmt.Errorf("%w: %q: signed value in parentheses", ErrMalformedNumber, token)
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	if !plainNumber.MatchString(s) {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q", ErrMalformedNumber, token)
	}

	s = strings.TrimSuffix(strings.TrimPrefix(s, "+"), ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q: %v", ErrMalformedNumber, token, err)
	}
	if negative {
		d = d.Neg()
	}
	return decimal.NewNullDecimal(d), nil
}

// requireValue normalizes a token that must carry a value.
func requireValue(token string) (decimal.Decimal, error) {
	v, err := Normalize(token)
	if err != nil {
		return decimal.Zero, err
	}
	if !v.Valid {
		return decimal.Zero, fmt.Errorf("%w: empty token", ErrMalformedNumber)
	}
	return v.Decimal, nil
}
