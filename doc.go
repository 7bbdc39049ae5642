// Package dynarr provides a generic growable array with explicit capacity
// control.
//
// An Array stores its elements in one contiguous heap allocation and keeps
// separate size (live elements) and capacity (allocated slots) counters.
// Appending is amortized O(1): a full buffer is replaced by one of double
// the capacity, with the live elements moved across in a single pass.
//
// # Quick Start
//
//	a := dynarr.Of(1, 2, 3)
//	a.PushBack(4)
//
//	v, err := a.At(1) // checked access
//	if err != nil {
//	    // errors.Is(err, dynarr.ErrOutOfRange)
//	}
//	fmt.Println(*v) // 2
//
//	for i, v := range a.All() {
//	    fmt.Println(i, v)
//	}
//
// Pre-allocate without creating elements:
//
//	a := dynarr.NewWithCapacity[int](dynarr.Reserve(1024))
//	// a.Len() == 0, a.Cap() == 1024
//
// # Growth Policy
//
// Capacity grows geometrically by a factor of two, with a floor of one slot
// for an empty buffer. After N appends from empty, capacity is the smallest
// power of two >= N. Resize past capacity reserves max(requested, 2*Cap()).
// Capacity never shrinks; Clear, PopBack, and Erase only lower the size.
//
// # Key Properties
//
//   - Value semantics: Clone and CopyFrom deep-copy, MoveFrom transfers
//     ownership and empties the source
//   - Checked access returns *OutOfRangeError and leaves the array unchanged
//   - Unchecked Get/Set skip the liveness check for raw-array performance
//   - Swap exchanges two arrays in constant time
//   - Free functions Equal, Compare, Less, ... provide element-wise
//     equality and lexicographic ordering
//
// An Array is not safe for concurrent use.
package dynarr
