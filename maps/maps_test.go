package maps

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualAndCopy(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2}
	c := Copy(a)
	require.True(t, Equal(a, c))

	c["a"] = 3
	require.False(t, Equal(a, c))
	require.False(t, Equal(a, map[string]int{"a": 1}))
	require.False(t, Equal(map[string]int{"a": 0}, map[string]int{"b": 0}))
}

func TestMerge(t *testing.T) {
	m1 := map[string]int{"a": 1, "b": 2}
	m2 := map[string]int{"b": 20, "c": 30}

	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 30}, Merge(m1, m2))
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 30}, MergeAll(m1, m2))
	assert.Equal(t, map[string]int{"a": 1, "b": 20, "c": 30}, MergeOverwrite(m1, m2))
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, MergeAll(m1, nil, map[string]int{"c": 3, "a": 0}))
	assert.Empty(t, MergeAll[string, int]())
}

func TestGetOrDefault(t *testing.T) {
	m := map[string]int{"a": 0}
	assert.Equal(t, 0, GetOrDefault(m, "a", 7))
	assert.Equal(t, 7, GetOrDefault(m, "b", 7))
	assert.Equal(t, 7, GetOrDefault[string, int](nil, "b", 7))
}

func TestKeysValues(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, Keys(m))

	values := Values(m)
	sort.Ints(values)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestMapInvertFilter(t *testing.T) {
	m := map[string]int{"a": 1, "bb": 2}

	upper := Map(m, func(k string, v int) (string, int) { return strings.ToUpper(k), v * 10 })
	assert.Equal(t, map[string]int{"A": 10, "BB": 20}, upper)
	assert.Equal(t, map[int]string{1: "a", 2: "bb"}, Invert(m))
	assert.Equal(t, map[string]int{"bb": 2}, FilterKeys(m, func(k string) bool { return len(k) > 1 }))
}
