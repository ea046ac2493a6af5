// Package bounds checks whether a value lies between two boundaries.
//
// The package-level functions work on every type with built-in ordering operators and compare
// with those operators exactly, so no epsilon is applied to floats. Types ordered by a compare
// function (time.Time, decimals, UUIDs, ...) go through an Evaluator.
//
// An unrecognized Mode never matches: every check returns false instead of panicking.
package bounds

import (
	"golang.org/x/exp/constraints"
)

// LowerBound returns the bound treated as the lower one.
// Without allowEitherOrder a is returned as is; otherwise the smaller of a and b, a on a tie.
func LowerBound[T constraints.Ordered](a, b T, allowEitherOrder bool) T {
	if allowEitherOrder && b < a {
		return b
	}

	return a
}

// UpperBound returns the bound treated as the upper one.
// Without allowEitherOrder b is returned as is; otherwise the greater of a and b, a on a tie.
func UpperBound[T constraints.Ordered](a, b T, allowEitherOrder bool) T {
	if !allowEitherOrder || a < b {
		return b
	}

	return a
}

// IsBetween reports whether bound1 <= value <= bound2.
func IsBetween[T constraints.Ordered](value, bound1, bound2 T) bool {
	return IsBetweenWith(value, bound1, bound2, false, Inclusive)
}

// IsBetweenMode reports whether value lies between bound1 (lower) and bound2 (upper) under mode.
func IsBetweenMode[T constraints.Ordered](value, bound1, bound2 T, mode Mode) bool {
	return IsBetweenWith(value, bound1, bound2, false, mode)
}

// IsBetweenEither is IsBetween with the bounds accepted in either order.
func IsBetweenEither[T constraints.Ordered](value, bound1, bound2 T) bool {
	return IsBetweenWith(value, bound1, bound2, true, Inclusive)
}

// IsBetweenEitherMode is IsBetweenMode with the bounds accepted in either order.
func IsBetweenEitherMode[T constraints.Ordered](value, bound1, bound2 T, mode Mode) bool {
	return IsBetweenWith(value, bound1, bound2, true, mode)
}

// IsBetweenWith is the general form of the check. With allowEitherOrder the smaller bound is the
// lower one; without it bound1 is the lower bound even when it is greater than bound2, in which
// case most values match nothing.
func IsBetweenWith[T constraints.Ordered](value, bound1, bound2 T, allowEitherOrder bool, mode Mode) bool {
	lower := LowerBound(bound1, bound2, allowEitherOrder)
	upper := UpperBound(bound1, bound2, allowEitherOrder)

	return evaluate(value, lower, upper, mode, lessOrdered[T], lessOrEqualOrdered[T])
}

func lessOrdered[T constraints.Ordered](a, b T) bool {
	return a < b
}

func lessOrEqualOrdered[T constraints.Ordered](a, b T) bool {
	return a <= b
}

// evaluate applies mode to already normalized bounds.
func evaluate[T any](value, lower, upper T, mode Mode, less, lessOrEqual func(a, b T) bool) bool {
	switch mode {
	case IncludeLowerAndUpper:
		return lessOrEqual(lower, value) && lessOrEqual(value, upper)
	case ExcludeLowerAndUpper:
		return less(lower, value) && less(value, upper)
	case IncludeLowerExcludeUpper:
		return lessOrEqual(lower, value) && less(value, upper)
	case ExcludeLowerIncludeUpper:
		return less(lower, value) && lessOrEqual(value, upper)
	default:
		return false
	}
}
