package slices

import "goext/maths"

// PadLeft returns a new slice of at least length elements, prepending value as needed.
// Longer slices are copied, never truncated.
func PadLeft[T any](items []T, length int, value T) []T {
	missing := maths.Max(length-len(items), 0)
	result := make([]T, 0, len(items)+missing)
	result = append(result, Repeat(value, missing)...)

	return append(result, items...)
}

// PadRight returns a new slice of at least length elements, appending value as needed.
// Longer slices are copied, never truncated.
func PadRight[T any](items []T, length int, value T) []T {
	missing := maths.Max(length-len(items), 0)
	result := make([]T, 0, len(items)+missing)
	result = append(result, items...)

	return append(result, Repeat(value, missing)...)
}

// ShiftLeft returns a copy of items moved n positions towards index 0. The length is kept:
// elements falling off the front are dropped and vacated slots at the end get fill.
// A negative n shifts right.
func ShiftLeft[T any](items []T, n int, fill T) []T {
	if n < 0 {
		return ShiftRight(items, -n, fill)
	}

	result := Repeat(fill, len(items))
	if n < len(items) {
		copy(result, items[n:])
	}

	return result
}

// ShiftRight returns a copy of items moved n positions away from index 0. The length is kept:
// elements falling off the end are dropped and vacated slots at the front get fill.
// A negative n shifts left.
func ShiftRight[T any](items []T, n int, fill T) []T {
	if n < 0 {
		return ShiftLeft(items, -n, fill)
	}

	result := Repeat(fill, len(items))
	if n < len(items) {
		copy(result[n:], items)
	}

	return result
}

// RotateLeft returns a copy of items rotated n positions towards index 0; elements leaving the
// front re-enter at the end. A negative n rotates right.
func RotateLeft[T any](items []T, n int) []T {
	if len(items) == 0 {
		return Copy(items)
	}

	n %= len(items)
	if n < 0 {
		n += len(items)
	}

	result := make([]T, 0, len(items))
	result = append(result, items[n:]...)

	return append(result, items[:n]...)
}

// RotateRight is RotateLeft in the other direction.
func RotateRight[T any](items []T, n int) []T {
	return RotateLeft(items, -n)
}
