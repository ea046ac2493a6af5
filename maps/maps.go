package maps

import (
	"golang.org/x/exp/constraints"
	xmaps "golang.org/x/exp/maps"
	xslices "golang.org/x/exp/slices"
)

// Equal reports whether both maps hold the same key-value pairs.
func Equal[K, V comparable](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}

	for k, v := range a {
		if w, ok := b[k]; !ok || v != w {
			return false
		}
	}

	return true
}

func Copy[K comparable, V any](m map[K]V) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}

	return result
}

// Map maps each key-value pair of the original map to a new key-value pair of a new map.
func Map[K1, K2 comparable, V1, V2 any](m map[K1]V1, fn func(k K1, v V1) (K2, V2)) map[K2]V2 {
	result := make(map[K2]V2, len(m))
	for k1, v1 := range m {
		k2, v2 := fn(k1, v1)
		result[k2] = v2
	}

	return result
}

// Merge merges two maps. If a key in the first map is present in the second, the value from the first is used.
func Merge[K comparable, V any](m1, m2 map[K]V) map[K]V {
	result := make(map[K]V, len(m1)+len(m2))
	for k, v := range m2 {
		result[k] = v
	}

	for k, v := range m1 {
		result[k] = v
	}

	return result
}

func ToSlice[K comparable, V, T any](m map[K]V, fn func(k K, v V) T) []T {
	result := make([]T, 0, len(m))
	for k, v := range m {
		result = append(result, fn(k, v))
	}

	return result
}

func Keys[K comparable, V any](m map[K]V) []K {
	return ToSlice(m, func(k K, _ V) K { return k })
}

func Values[K comparable, V any](m map[K]V) []V {
	return ToSlice(m, func(_ K, v V) V { return v })
}

// MergeAll merges any number of maps. When a key is present in several maps, the earliest map wins.
func MergeAll[K comparable, V any](ms ...map[K]V) map[K]V {
	result := map[K]V{}
	for i := len(ms) - 1; i >= 0; i-- {
		for k, v := range ms[i] {
			result[k] = v
		}
	}

	return result
}

// MergeOverwrite merges any number of maps. When a key is present in several maps, the latest map wins.
func MergeOverwrite[K comparable, V any](ms ...map[K]V) map[K]V {
	result := map[K]V{}
	for _, m := range ms {
		for k, v := range m {
			result[k] = v
		}
	}

	return result
}

// GetOrDefault returns the value stored under key, or fallback when the key is absent.
func GetOrDefault[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}

	return fallback
}

// SortedKeys returns the keys in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := xmaps.Keys(m)
	xslices.Sort(keys)

	return keys
}

// Invert swaps keys and values. If values repeat, which key survives is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	return Map(m, func(k K, v V) (V, K) { return v, k })
}

// FilterKeys keeps the pairs whose key meets predicate.
func FilterKeys[K comparable, V any](m map[K]V, predicate func(K) bool) map[K]V {
	result := make(map[K]V)
	for k, v := range m {
		if predicate(k) {
			result[k] = v
		}
	}

	return result
}
