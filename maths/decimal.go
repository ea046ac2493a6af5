package maths

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

var ErrInvalidDecimal = errors.New("invalid decimal")

// ParseDecimal parses s into an exact decimal. Rounding conditions reported by apd are ignored,
// only syntax errors are returned.
func ParseDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDecimal, "parse %q: %v", s, err)
	}

	return d, nil
}

// MustParseDecimal is ParseDecimal that panics on error. Meant for constants and tests.
func MustParseDecimal(s string) *apd.Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}

	return d
}
