// Package rawbuf provides the owned storage block underlying dynarr.Array.
//
// A Buffer owns exactly one heap allocation sized for a fixed number of
// elements. It has no ability to grow; the array obtains more room by
// allocating a new Buffer and swapping it in. Ownership is exclusive: a
// Buffer is handed off with Swap or MoveFrom, never duplicated.
package rawbuf

// Buffer exclusively owns contiguous storage for a fixed number of elements
// of type T. The zero value is an empty buffer owning no storage.
//
// Buffer is move-only by convention: once it owns storage it must not be
// copied by value, since two owners of one allocation would break the
// exclusive-ownership invariant. Transfer ownership with Swap or MoveFrom;
// duplicating contents is the caller's job.
type Buffer[T any] struct {
	data []T
}

// New allocates storage for n elements of T in a single allocation. All n
// slots hold the zero value of T. n <= 0 yields an empty buffer.
func New[T any](n int) Buffer[T] {
	if n <= 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{data: make([]T, n)}
}

// Len returns the number of element slots the buffer owns.
func (b *Buffer[T]) Len() int { return len(b.data) }

// At returns a pointer to the slot at offset i. The access is unchecked
// with respect to any caller-side notion of live elements; offsets beyond
// the allocation trip the runtime bounds check.
func (b *Buffer[T]) At(i int) *T { return &b.data[i] }

// Data returns the full allocation as a slice, for bulk copy and clear.
// The slice aliases the owned storage and is invalidated by Swap and
// MoveFrom.
func (b *Buffer[T]) Data() []T { return b.data }

// Swap exchanges the owned storage of two buffers in constant time. No
// element is copied or moved.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// MoveFrom takes ownership of other's storage, dropping whatever b held.
// other is left empty. Moving a buffer into itself is a no-op.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) {
	if b == other {
		return
	}
	b.data = other.data
	other.data = nil
}
