package dynarr

// Stats tracks the reallocation activity of one array.
//
// Note on semantics:
//   - BuffersAllocated: total backing buffers ever allocated for this array
//   - Grows: reallocation events triggered by growth
//   - ElementsMoved: live elements transferred across reallocations
//
// Counters are plain integers: the array is single-threaded by contract, so
// no atomics are involved. Stats travel with the storage on Swap and move.
type Stats struct {
	BuffersAllocated uint64
	Grows            uint64
	ElementsMoved    uint64
}

// Stats returns a snapshot of the array's reallocation counters.
func (a *Array[T]) Stats() Stats { return a.stats }
