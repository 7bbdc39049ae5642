package dynarr

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// An array always equals itself, including the empty one. Capacity plays no
// part in equality.
func Equal[T comparable](a, b *Array[T]) bool {
	if a == b {
		return true
	}
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a caller-supplied equality predicate, for element
// types that are not comparable.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares a and b lexicographically over their elements, ordering
// the shorter array first when one is a prefix of the other. The result
// follows the cmp convention: -1, 0, or +1.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	if a == b {
		return 0
	}
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is Compare with a caller-supplied comparison function, for
// element types that are not ordered.
func CompareFunc[T any](a, b *Array[T], cmpf func(x, y T) int) int {
	if a == b {
		return 0
	}
	return slices.CompareFunc(a.Slice(), b.Slice(), cmpf)
}

// Less reports whether a orders strictly before b lexicographically.
func Less[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports whether a orders before b or equals it.
func LessEqual[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a orders strictly after b lexicographically.
func Greater[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) > 0 }

// GreaterEqual reports whether a orders after b or equals it.
func GreaterEqual[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) >= 0 }
