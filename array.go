package dynarr

import (
	"github.com/hupe1980/dynarr/internal/rawbuf"
)

// CapacityRequest asks a constructor to pre-allocate room for a number of
// elements without creating any live elements. It exists so that
// NewWithCapacity cannot be confused with NewSize, which does create
// elements. Build one with Reserve.
type CapacityRequest struct {
	capacity int
}

// Reserve builds a CapacityRequest for n elements.
func Reserve(n int) CapacityRequest {
	return CapacityRequest{capacity: n}
}

// Get returns the requested capacity.
func (r CapacityRequest) Get() int { return r.capacity }

// Array is a growable sequence of T with value semantics, explicit capacity
// control, amortized-constant append, and bounds-checked element access.
//
// The zero value is an empty array ready for use. Elements live at indexes
// [0, Len()); the remaining allocated slots up to Cap() are inert storage
// that is never read back as live data.
//
// An Array is not safe for concurrent use; callers must serialize access.
type Array[T any] struct {
	buf  rawbuf.Buffer[T]
	size int

	logger *Logger
	stats  Stats
}

// New returns an empty array with capacity 0. No storage is allocated.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewSize returns an array of n zero-valued elements. Size and capacity
// both equal n.
func NewSize[T any](n int) *Array[T] {
	a := &Array[T]{}
	a.buf = a.newBuffer(n)
	a.size = a.buf.Len()
	return a
}

// NewFill returns an array of n elements, each a copy of value. Size and
// capacity both equal n.
func NewFill[T any](n int, value T) *Array[T] {
	a := NewSize[T](n)
	data := a.buf.Data()
	for i := range data {
		data[i] = value
	}
	return a
}

// Of returns an array holding the given items in order. Size and capacity
// both equal len(items).
func Of[T any](items ...T) *Array[T] {
	a := NewSize[T](len(items))
	copy(a.buf.Data(), items)
	return a
}

// NewWithCapacity returns an empty array whose storage already holds room
// for the requested number of elements. Size is 0; the request reserves, it
// does not populate.
func NewWithCapacity[T any](req CapacityRequest) *Array[T] {
	a := &Array[T]{}
	a.buf = a.newBuffer(req.Get())
	return a
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of elements the backing buffer can hold before the
// next reallocation.
func (a *Array[T]) Cap() int { return a.buf.Len() }

// IsEmpty reports whether the array holds no live elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Get returns the element at index i without a liveness check. Reading an
// index at or beyond Len() is a contract violation on the caller's side;
// indexes beyond Cap() trip the runtime bounds check. Prefer At unless the
// index is already known to be in range.
func (a *Array[T]) Get(i int) T { return *a.buf.At(i) }

// Set stores v at index i without a liveness check. The same caller
// contract as Get applies.
func (a *Array[T]) Set(i int, v T) { *a.buf.At(i) = v }

// At returns a pointer to the live element at index i. It returns an
// *OutOfRangeError when i is not in [0, Len()); the array is unchanged in
// that case. The pointer stays valid until the next reallocation.
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, &OutOfRangeError{Op: "At", Index: i, Size: a.size}
	}
	return a.buf.At(i), nil
}

// Reserve grows the capacity to at least n. It never shrinks capacity and
// never touches size or live elements; n <= Cap() (including 0) is a no-op.
// All mutators obtain room through Reserve, making it the only reallocation
// site past construction.
func (a *Array[T]) Reserve(n int) {
	if n <= a.Cap() {
		return
	}
	a.grow(n)
}

// Clear drops all live elements. Capacity and storage are untouched; the
// old values sit inert until overwritten.
func (a *Array[T]) Clear() { a.size = 0 }

// Resize changes the number of live elements to n. Shrinking just lowers
// the size. Growing zero-initializes the new range, reallocating first via
// Reserve(max(n, 2*Cap())) when n exceeds the capacity. n < 0 is treated
// as 0.
func (a *Array[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n <= a.size:
		a.size = n
	case n <= a.Cap():
		clear(a.buf.Data()[a.size:n])
		a.size = n
	default:
		a.Reserve(max(n, 2*a.Cap()))
		clear(a.buf.Data()[a.size:n])
		a.size = n
	}
}

// PushBack appends item, doubling the capacity when the buffer is full
// (capacity 0 grows to 1). Amortized O(1).
func (a *Array[T]) PushBack(item T) {
	if a.size == a.Cap() {
		a.Reserve(max(2*a.Cap(), 1))
	}
	*a.buf.At(a.size) = item
	a.size++
}

// PopBack removes the last element. Popping an empty array is a no-op. The
// vacated slot becomes inert storage; no value is returned.
func (a *Array[T]) PopBack() {
	if a.size == 0 {
		return
	}
	a.size--
}

// Insert places value at index i, shifting the elements at [i, Len()) one
// slot right. i == Len() appends. It returns the index of the inserted
// element, or an *OutOfRangeError when i is not in [0, Len()]; the array is
// unchanged on error.
//
// A full buffer is rebuilt at double capacity in a single pass around the
// insertion point (capacity 0 allocates room for exactly one element).
func (a *Array[T]) Insert(i int, value T) (int, error) {
	if i < 0 || i > a.size {
		return 0, &OutOfRangeError{Op: "Insert", Index: i, Size: a.size}
	}
	switch {
	case a.Cap() == 0:
		next := a.newBuffer(1)
		*next.At(0) = value
		a.buf.Swap(&next)
		a.noteGrow(0, 1, 0)
	case a.size == a.Cap():
		oldCap := a.Cap()
		next := a.newBuffer(2 * oldCap)
		data := a.buf.Data()
		copy(next.Data(), data[:i])
		*next.At(i) = value
		copy(next.Data()[i+1:], data[i:a.size])
		a.buf.Swap(&next)
		a.noteGrow(oldCap, 2*oldCap, a.size)
	default:
		data := a.buf.Data()
		copy(data[i+1:a.size+1], data[i:a.size])
		data[i] = value
	}
	a.size++
	return i, nil
}

// Erase removes the element at index i, shifting the elements after it one
// slot left. It returns the index now holding the erased element's
// successor (== Len() when the last element was erased), or an
// *OutOfRangeError when i is not in [0, Len()); the array is unchanged on
// error.
func (a *Array[T]) Erase(i int) (int, error) {
	if i < 0 || i >= a.size {
		return 0, &OutOfRangeError{Op: "Erase", Index: i, Size: a.size}
	}
	data := a.buf.Data()
	copy(data[i:a.size-1], data[i+1:a.size])
	a.size--
	return i, nil
}

// Swap exchanges storage, size, and capacity with other in constant time.
// No element is copied and no allocation happens. Stats travel with the
// storage; attached loggers stay with their array.
func (a *Array[T]) Swap(other *Array[T]) {
	if a == other {
		return
	}
	a.buf.Swap(&other.buf)
	a.size, other.size = other.size, a.size
	a.stats, other.stats = other.stats, a.stats
}

// Clone returns a deep copy of a. The copy's capacity is trimmed to a's
// size; the two arrays share no storage afterward.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{}
	c.buf = c.newBuffer(a.size)
	copy(c.buf.Data(), a.buf.Data()[:a.size])
	c.size = a.size
	return c
}

// CopyFrom replaces a's contents with a deep copy of src, copy-and-swap
// style. Copying an array onto itself is a no-op.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.Swap(src.Clone())
}

// MoveFrom takes over src's storage, size, and capacity, dropping whatever
// a held. src is left empty (size 0, capacity 0). Moving an array onto
// itself is a no-op.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.buf.MoveFrom(&src.buf)
	a.size = src.size
	src.size = 0
	a.stats = src.stats
	src.stats = Stats{}
}

// newBuffer allocates backing storage for n elements and counts the
// allocation. n <= 0 yields an empty buffer and is not counted.
func (a *Array[T]) newBuffer(n int) rawbuf.Buffer[T] {
	if n > 0 {
		a.stats.BuffersAllocated++
	}
	return rawbuf.New[T](n)
}

// grow replaces the backing buffer with one sized for n elements, moving
// the live prefix across in order. The new buffer is fully built before the
// constant-time swap, so a failed allocation leaves the array untouched.
func (a *Array[T]) grow(n int) {
	oldCap := a.Cap()
	next := a.newBuffer(n)
	copy(next.Data(), a.buf.Data()[:a.size])
	a.buf.Swap(&next)
	a.noteGrow(oldCap, n, a.size)
}

func (a *Array[T]) noteGrow(oldCap, newCap, moved int) {
	a.stats.Grows++
	a.stats.ElementsMoved += uint64(moved)
	if a.logger != nil {
		a.logger.LogGrow(oldCap, newCap, moved)
	}
}
