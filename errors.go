package dagrand

import (
	"errors"
	"fmt"

	"github.com/quillon/dagrand/internal/seq"
)

// MinSeedBytes is the minimum seed length: 256 bits of caller-supplied
// entropy.
const MinSeedBytes = 32

// InvalidSeedError reports a seed below the minimum entropy requirement.
// Returned synchronously by New and Reseed; fatal to that call only.
type InvalidSeedError struct {
	// Len is the rejected seed length in bytes.
	Len int
}

// Error implements the error interface.
func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("invalid seed: %d bytes, need at least %d", e.Len, MinSeedBytes)
}

// IsInvalidSeed returns true if the error is an InvalidSeedError.
// Uses errors.As to handle wrapped errors.
func IsInvalidSeed(err error) bool {
	var se *InvalidSeedError
	return errors.As(err, &se)
}

// IsPrecisionExhausted returns true if the error reports an exhausted
// sequence precision cap. The generator fails closed when this happens:
// the failing call produced no output word.
func IsPrecisionExhausted(err error) bool {
	return seq.IsPrecisionExhausted(err)
}

// ErrReseedInProgress is returned by Reseed when another reseed is still
// in flight. The caller may retry once the first reseed returns.
var ErrReseedInProgress = errors.New("dagrand: reseed in progress")

// ErrClosed is returned by all operations after Close.
var ErrClosed = errors.New("dagrand: generator closed")
