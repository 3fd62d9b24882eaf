package stackvec

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/stackvec/internal/layout"
)

// Contract violations panic with an error wrapping one of these, so a
// recovered value can be matched with errors.Is.
var (
	ErrCapacity = errors.New("capacity exceeded")
	ErrIndex    = errors.New("index out of range")
	ErrLayout   = layout.ErrNotArray
)

func capacityError(n, capacity int) error {
	return fmt.Errorf("%w: cannot push element %d onto a vector of capacity %d", ErrCapacity, n, capacity)
}

func indexError(i, length int) error {
	return fmt.Errorf("%w: index %d for a vector of length %d", ErrIndex, i, length)
}

func rangeError(lo, hi, length int) error {
	return fmt.Errorf("%w: range [%d:%d] for a vector of length %d", ErrIndex, lo, hi, length)
}
