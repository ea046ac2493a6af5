package strs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goext/bounds"
)

func TestLeftRightMid(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"left", Left("héllo", 2), "hé"},
		{"left too long", Left("abc", 10), "abc"},
		{"left negative", Left("abc", -1), ""},
		{"right", Right("héllo", 3), "llo"},
		{"right too long", Right("abc", 5), "abc"},
		{"right zero", Right("abc", 0), ""},
		{"mid", Mid("日本語テキスト", 2, 3), "語テキ"},
		{"mid past end", Mid("abc", 5, 2), ""},
		{"mid negative start", Mid("abc", -2, 2), "ab"},
		{"mid long length", Mid("abc", 1, 99), "bc"},
		{"mid negative length", Mid("abc", 1, -1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10, "..."))
	assert.Equal(t, "hello...", Truncate("hello world", 8, "..."))
	assert.Equal(t, "..", Truncate("hello world", 2, "..."))
	assert.Equal(t, "", Truncate("hello", 0, "..."))
}

func TestSeparators(t *testing.T) {
	assert.Equal(t, "a", Before("a.b.c", "."))
	assert.Equal(t, "b.c", After("a.b.c", "."))
	assert.Equal(t, "a.b", BeforeLast("a.b.c", "."))
	assert.Equal(t, "c", AfterLast("a.b.c", "."))
	assert.Equal(t, "abc", Before("abc", "."))
	assert.Equal(t, "", After("abc", "."))
	assert.Equal(t, "abc", BeforeLast("abc", "."))
	assert.Equal(t, "", AfterLast("abc", "."))
}

func TestBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" x "))
	assert.Equal(t, "n/a", DefaultIfBlank("  ", "n/a"))
	assert.Equal(t, "x", DefaultIfBlank("x", "n/a"))
}

func TestReversePad(t *testing.T) {
	assert.Equal(t, "olléh", Reverse("héllo"))
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "0042", PadLeft("42", 4, '0'))
	assert.Equal(t, "ab··", PadRight("ab", 4, '·'))
	assert.Equal(t, "abcdef", PadRight("abcdef", 4, '·'))
}

func TestLengthBetween(t *testing.T) {
	assert.True(t, LengthBetween("héllo", 1, 5, bounds.Inclusive))
	assert.False(t, LengthBetween("héllo", 1, 5, bounds.IncludeLowerExcludeUpper))
	assert.False(t, LengthBetween("", 1, 5, bounds.Inclusive))
	assert.False(t, LengthBetween("abc", 1, 5, bounds.Mode(-3)))
}
