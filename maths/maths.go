package maths

import (
	"goext/bounds"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func LessThan[T constraints.Ordered](a, b T) bool {
	return a < b
}

func GreaterThan[T constraints.Ordered](a, b T) bool {
	return a > b
}

// IsWithinRange reports whether lowerBound <= val <= upperBound.
func IsWithinRange[T constraints.Ordered](val, lowerBound, upperBound T) bool {
	return bounds.IsBetween(val, lowerBound, upperBound)
}

// Clamp limits v to the range spanned by a and b, which may be given in either order.
func Clamp[T constraints.Ordered](v, a, b T) T {
	lower := bounds.LowerBound(a, b, true)
	upper := bounds.UpperBound(a, b, true)
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

// Abs returns the absolute value. The minimum value of a signed integer type is returned as is.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T Number](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
