package bounds

import (
	"bytes"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Evaluator runs the bounds checks for a type ordered by a three-way compare function.
// The zero Evaluator is not usable; build one with NewEvaluator.
type Evaluator[T any] struct {
	compare func(a, b T) int
}

// NewEvaluator returns an Evaluator ordering values with compare, which must return a negative
// number, zero or a positive number when a is less than, equal to or greater than b.
func NewEvaluator[T any](compare func(a, b T) int) Evaluator[T] {
	return Evaluator[T]{compare: compare}
}

var (
	// Times orders time.Time values by instant, regardless of location.
	Times = NewEvaluator(time.Time.Compare)

	// Decimals orders *apd.Decimal values numerically. Nil decimals panic.
	Decimals = NewEvaluator(func(a, b *apd.Decimal) int {
		return a.Cmp(b)
	})

	// UUIDs orders uuid.UUID values by their big-endian byte representation.
	UUIDs = NewEvaluator(func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
)

func (e Evaluator[T]) less(a, b T) bool {
	return e.compare(a, b) < 0
}

func (e Evaluator[T]) lessOrEqual(a, b T) bool {
	return e.compare(a, b) <= 0
}

// LowerBound is the Evaluator counterpart of the package-level LowerBound.
func (e Evaluator[T]) LowerBound(a, b T, allowEitherOrder bool) T {
	if allowEitherOrder && e.less(b, a) {
		return b
	}

	return a
}

// UpperBound is the Evaluator counterpart of the package-level UpperBound.
func (e Evaluator[T]) UpperBound(a, b T, allowEitherOrder bool) T {
	if !allowEitherOrder || e.less(a, b) {
		return b
	}

	return a
}

func (e Evaluator[T]) IsBetween(value, bound1, bound2 T) bool {
	return e.IsBetweenWith(value, bound1, bound2, false, Inclusive)
}

func (e Evaluator[T]) IsBetweenMode(value, bound1, bound2 T, mode Mode) bool {
	return e.IsBetweenWith(value, bound1, bound2, false, mode)
}

func (e Evaluator[T]) IsBetweenEither(value, bound1, bound2 T) bool {
	return e.IsBetweenWith(value, bound1, bound2, true, Inclusive)
}

func (e Evaluator[T]) IsBetweenEitherMode(value, bound1, bound2 T, mode Mode) bool {
	return e.IsBetweenWith(value, bound1, bound2, true, mode)
}

// IsBetweenWith is the Evaluator counterpart of the package-level IsBetweenWith.
func (e Evaluator[T]) IsBetweenWith(value, bound1, bound2 T, allowEitherOrder bool, mode Mode) bool {
	lower := e.LowerBound(bound1, bound2, allowEitherOrder)
	upper := e.UpperBound(bound1, bound2, allowEitherOrder)

	return evaluate(value, lower, upper, mode, e.less, e.lessOrEqual)
}
