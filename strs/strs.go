// Package strs slices and pads strings by rune rather than by byte. None of the helpers panic on
// out-of-range positions; positions are clamped to the string instead.
package strs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"goext/bounds"
	"goext/maths"
	"goext/slices"
)

// Left returns the first n runes of s.
func Left(s string, n int) string {
	runes := []rune(s)
	return string(runes[:maths.Clamp(n, 0, len(runes))])
}

// Right returns the last n runes of s.
func Right(s string, n int) string {
	runes := []rune(s)
	return string(runes[len(runes)-maths.Clamp(n, 0, len(runes)):])
}

// Mid returns at most length runes of s starting at rune index start.
func Mid(s string, start, length int) string {
	runes := []rune(s)
	from := maths.Clamp(start, 0, len(runes))
	to := maths.Clamp(from+maths.Max(length, 0), from, len(runes))

	return string(runes[from:to])
}

// Truncate shortens s to at most limit runes, suffix included. If limit leaves no room for the
// suffix, the suffix itself is cut.
func Truncate(s string, limit int, suffix string) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	room := limit - utf8.RuneCountInString(suffix)
	if room <= 0 {
		return Left(suffix, limit)
	}

	return Left(s, room) + suffix
}

// Before returns the part of s before the first sep, or s if sep is absent.
func Before(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

// After returns the part of s after the first sep, or "" if sep is absent.
func After(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return ""
}

// BeforeLast returns the part of s before the last sep, or s if sep is absent.
func BeforeLast(s, sep string) string {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

// AfterLast returns the part of s after the last sep, or "" if sep is absent.
func AfterLast(s, sep string) string {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return ""
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// PadLeft left-pads s with pad up to width runes.
func PadLeft(s string, width int, pad rune) string {
	return string(slices.PadLeft([]rune(s), width, pad))
}

// PadRight right-pads s with pad up to width runes.
func PadRight(s string, width int, pad rune) string {
	return string(slices.PadRight([]rune(s), width, pad))
}

// LengthBetween reports whether the rune count of s lies between lower and upper under mode.
func LengthBetween(s string, lower, upper int, mode bounds.Mode) bool {
	return bounds.IsBetweenMode(utf8.RuneCountInString(s), lower, upper, mode)
}
