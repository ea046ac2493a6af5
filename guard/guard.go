// Package guard provides guard clauses that turn failed argument checks into descriptive errors.
package guard

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"goext/bounds"
	"goext/reflection"
	"goext/strs"
	"goext/types"
)

var (
	ErrOutOfRange  = errors.New("value out of range")
	ErrUnknownMode = bounds.ErrUnknownMode
	ErrNil         = errors.New("value is nil")
	ErrEmpty       = errors.New("value is empty")
	ErrConversion  = errors.New("value is not numeric")
)

// Between returns nil if value lies between lower and upper under mode, and an error
// wrapping ErrOutOfRange naming the argument otherwise, e.g. "port must be between 1 and 65535, got 0".
func Between[T constraints.Ordered](name string, value, lower, upper T, mode bounds.Mode) error {
	return check(name, value, lower, upper, mode, bounds.IsBetweenMode(value, lower, upper, mode))
}

// BetweenEither is Between with the bounds accepted in either order.
func BetweenEither[T constraints.Ordered](name string, value, lower, upper T, mode bounds.Mode) error {
	l := bounds.LowerBound(lower, upper, true)
	u := bounds.UpperBound(lower, upper, true)

	return check(name, value, l, u, mode, bounds.IsBetweenMode(value, l, u, mode))
}

// BetweenWith is Between for types ordered by an Evaluator.
func BetweenWith[T any](name string, value, lower, upper T, evaluator bounds.Evaluator[T], mode bounds.Mode) error {
	return check(name, value, lower, upper, mode, evaluator.IsBetweenMode(value, lower, upper, mode))
}

// BetweenAny is Between for loosely typed values such as decoded JSON or configuration entries.
// Values that cannot be converted to a number return an error wrapping ErrConversion.
func BetweenAny(name string, value any, lower, upper float64, mode bounds.Mode) error {
	f, err := types.ToFloat64E(value)
	if err != nil {
		return errors.Wrapf(ErrConversion, "%s: %v", name, err)
	}

	return check(name, value, lower, upper, mode, bounds.IsBetweenMode(f, lower, upper, mode))
}

func check[T any](name string, value T, lower, upper any, mode bounds.Mode, ok bool) error {
	if ok {
		return nil
	}

	description := mode.Describe(lower, upper)
	if description == "" {
		return errors.Wrapf(ErrUnknownMode, "%s: cannot check against %s", name, mode)
	}

	return errors.Wrapf(ErrOutOfRange, "%s must be %s, got %v", name, description, value)
}

// NotNil returns an error wrapping ErrNil if v is nil or holds a nil pointer, map, slice, channel or function.
func NotNil(name string, v any) error {
	if reflection.IsNil(v) {
		return errors.Wrapf(ErrNil, "%s must not be nil", name)
	}
	return nil
}

// NotEmpty returns an error wrapping ErrEmpty if s is empty or only whitespace.
func NotEmpty(name, s string) error {
	if strs.IsBlank(s) {
		return errors.Wrapf(ErrEmpty, "%s must not be empty", name)
	}
	return nil
}
