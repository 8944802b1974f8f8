package trace

import (
	"errors"
	"fmt"
)

// Domain errors for trace recording.
var (
	// ErrEmptyInput indicates an input with no elements. Merge sort over an
	// empty range has no defined bar scale, so recording refuses it.
	ErrEmptyInput = errors.New("trace: input must contain at least one element")

	// ErrStepOutOfRange indicates a snapshot index outside [0, Len()).
	ErrStepOutOfRange = errors.New("trace: step out of range")
)

// RecordError wraps a recording failure with the size of the offending input.
type RecordError struct {
	Size    int
	Wrapped error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d elements: %v", e.Size, e.Wrapped)
}

func (e *RecordError) Unwrap() error {
	return e.Wrapped
}
