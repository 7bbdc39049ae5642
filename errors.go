package dynarr

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by errors.Is for every failed bounds-checked
	// access. The concrete error is always an *OutOfRangeError carrying the
	// offending index.
	ErrOutOfRange = errors.New("index out of range")
)

// OutOfRangeError indicates a bounds-checked access outside the permitted
// range. The array is left unchanged when this error is returned.
//
// It unwraps to ErrOutOfRange.
type OutOfRangeError struct {
	Op    string // operation that rejected the index: "At", "Insert", "Erase"
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("dynarr: %s: index %d out of range for size %d", e.Op, e.Index, e.Size)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
