package types

import (
	"errors"
	"strconv"

	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

func ToPointer[T any](t T) *T {
	return &t
}

// FromPointer dereferences p, returning the zero value for nil.
func FromPointer[T any](p *T) T {
	if p == nil {
		return *new(T)
	}
	return *p
}

// Coalesce returns the first non-zero value, or the zero value if there is none.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

func ToStringFromBool(b bool) string {
	return strconv.FormatBool(b)
}

func ToIntFromBool[T constraints.Integer](b bool) T {
	if b {
		return 1
	}
	return 0
}

func ToBoolFromInt[T constraints.Integer](i T) bool {
	return i > 0
}

// ToString renders any scalar, Stringer or error as a string; unsupported values yield "".
func ToString(v any) string {
	return cast.ToString(v)
}

// ToInt64E converts numbers, bools and numeric strings to int64.
func ToInt64E(v any) (int64, error) {
	return cast.ToInt64E(v)
}

// ToFloat64E converts numbers, bools and numeric strings to float64.
func ToFloat64E(v any) (float64, error) {
	return cast.ToFloat64E(v)
}

func ErrorAs[T error](err error) (T, bool) {
	var oe T
	if errors.As(err, &oe) {
		return oe, true
	}
	return *new(T), false
}
