package dynarr

import "iter"

// All returns an iterator over index/element pairs of the live range, in
// order. Mutating the array while iterating is not supported.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, *a.buf.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(*a.buf.At(i)) {
				return
			}
		}
	}
}

// Slice returns the live elements as a slice sharing the array's storage.
// Writes through the slice are visible in the array. The slice is
// invalidated by any operation that reallocates (Reserve, PushBack, Insert,
// Resize past capacity) and by Swap, MoveFrom, and CopyFrom.
func (a *Array[T]) Slice() []T {
	return a.buf.Data()[:a.size]
}
