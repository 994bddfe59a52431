package seq

import (
	"errors"
	"fmt"
)

// PrecisionError reports that serving a chunk would require growing past
// the sequence's precision cap.
//
// The sequence computes nothing when this happens - callers must treat the
// stream as ended (fail closed) rather than fall back to an approximation.
type PrecisionError struct {
	// Constant is the constant whose expansion ran out of precision.
	Constant Constant

	// Index is the first chunk index that could not be served.
	Index uint64

	// CapBits is the configured precision cap.
	CapBits uint
}

// Error implements the error interface.
func (e *PrecisionError) Error() string {
	return fmt.Sprintf("precision exhausted: %s chunk %d exceeds %d-bit cap",
		e.Constant, e.Index, e.CapBits)
}

// IsPrecisionExhausted returns true if the error is a PrecisionError.
// Uses errors.As to handle wrapped errors.
func IsPrecisionExhausted(err error) bool {
	var pe *PrecisionError
	return errors.As(err, &pe)
}
