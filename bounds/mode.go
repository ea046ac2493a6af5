package bounds

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownMode is returned when a mode name or value is not one of the four recognized modes.
var ErrUnknownMode = errors.New("unknown bounds mode")

// Mode selects which of the two bounds are part of the range.
type Mode int

const (
	// IncludeLowerAndUpper matches lower <= value <= upper.
	IncludeLowerAndUpper Mode = iota
	// ExcludeLowerAndUpper matches lower < value < upper.
	ExcludeLowerAndUpper
	// IncludeLowerExcludeUpper matches lower <= value < upper.
	IncludeLowerExcludeUpper
	// ExcludeLowerIncludeUpper matches lower < value <= upper.
	ExcludeLowerIncludeUpper
)

// Aliases kept for callers that prefer the shorter or the comparison-spelled names.
const (
	Inclusive = IncludeLowerAndUpper
	Exclusive = ExcludeLowerAndUpper

	GreaterThanOrEqualToLowerLessThanOrEqualToUpper = IncludeLowerAndUpper
	GreaterThanLowerLessThanUpper                   = ExcludeLowerAndUpper
	GreaterThanOrEqualToLowerLessThanUpper          = IncludeLowerExcludeUpper
	GreaterThanLowerLessThanOrEqualToUpper          = ExcludeLowerIncludeUpper
)

var modeNames = [...]string{
	"IncludeLowerAndUpper",
	"ExcludeLowerAndUpper",
	"IncludeLowerExcludeUpper",
	"ExcludeLowerIncludeUpper",
}

var modeDescriptions = [...]string{
	"between %v and %v",
	"between but not including %v and %v",
	"greater than or equal to %v but less than %v",
	"greater than %v but less than or equal to %v",
}

// modesByName maps every accepted spelling, lower-cased, to its mode.
var modesByName = map[string]Mode{
	"includelowerandupper":     IncludeLowerAndUpper,
	"excludelowerandupper":     ExcludeLowerAndUpper,
	"includelowerexcludeupper": IncludeLowerExcludeUpper,
	"excludelowerincludeupper": ExcludeLowerIncludeUpper,
	"inclusive":                Inclusive,
	"exclusive":                Exclusive,

	"greaterthanorequaltolowerlessthanorequaltoupper": GreaterThanOrEqualToLowerLessThanOrEqualToUpper,
	"greaterthanlowerlessthanupper":                   GreaterThanLowerLessThanUpper,
	"greaterthanorequaltolowerlessthanupper":          GreaterThanOrEqualToLowerLessThanUpper,
	"greaterthanlowerlessthanorequaltoupper":          GreaterThanLowerLessThanOrEqualToUpper,
}

// IsValid reports whether m is one of the four recognized modes.
func (m Mode) IsValid() bool {
	return m >= IncludeLowerAndUpper && m <= ExcludeLowerIncludeUpper
}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// Description returns a fmt template with two %v verbs (lower, upper) describing the mode.
// The second result is false for an unrecognized mode.
func (m Mode) Description() (string, bool) {
	if !m.IsValid() {
		return "", false
	}

	return modeDescriptions[m], true
}

// Describe renders the description of the mode for the given bounds, e.g. "between 1 and 10".
// It returns an empty string for an unrecognized mode.
func (m Mode) Describe(lower, upper any) string {
	template, ok := m.Description()
	if !ok {
		return ""
	}

	return fmt.Sprintf(template, lower, upper)
}

// ParseMode parses a canonical or alias mode name, ignoring case and surrounding spaces.
func ParseMode(name string) (Mode, error) {
	if mode, ok := modesByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return mode, nil
	}

	return 0, errors.Wrapf(ErrUnknownMode, "parse %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, errors.Wrapf(ErrUnknownMode, "marshal %s", m)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode

	return nil
}
