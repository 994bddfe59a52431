package seq

import "math/big"

// Constant identifies one of the eight expansion constants.
//
// The set is fixed: every node of a generator owns exactly one constant,
// and all eight are distinct to avoid correlated sequences across nodes.
type Constant int

const (
	Pi      Constant = iota // pi, Machin arctangent series
	E                       // e, Taylor series
	Sqrt2                   // square root of 2, integer square root
	Phi                     // golden ratio, (1+sqrt 5)/2
	Ln2                     // natural log of 2, atanh(1/3) series
	Ln3                     // natural log of 3, ln 2 + 2 atanh(1/5)
	Zeta3                   // Apery's constant, central binomial series
	Catalan                 // Catalan's constant G, Ramanujan series

	// NumConstants is the number of defined constants.
	NumConstants = 8
)

// String returns the constant's display name.
func (c Constant) String() string {
	switch c {
	case Pi:
		return "pi"
	case E:
		return "e"
	case Sqrt2:
		return "sqrt2"
	case Phi:
		return "phi"
	case Ln2:
		return "ln2"
	case Ln3:
		return "ln3"
	case Zeta3:
		return "zeta3"
	case Catalan:
		return "catalan"
	}
	return "unknown"
}

const (
	// baseBits is the precision of the first expansion level.
	baseBits = 4096

	// guardBits is the number of low-order bits discarded at every level.
	// Series truncation and floor-division error accumulate in the low
	// bits; chunks are only ever served from above the guard.
	guardBits = 64

	// DefaultPrecisionCap bounds the precision a Sequence may grow to.
	// At the cap a sequence serves (cap-guardBits)/64 chunks and then
	// fails closed with PrecisionError.
	DefaultPrecisionCap = 1 << 20
)

// Sequence serves successive 64-bit chunks of one constant's fractional
// binary expansion. Not safe for concurrent use; each node owns exactly
// one Sequence.
type Sequence struct {
	constant Constant
	capBits  uint
	precBits uint     // current precision level, 0 before first expansion
	chunks   []uint64 // append-only chunk cache
}

// New creates a Sequence for the given constant. capBits bounds precision
// growth; capBits == 0 selects DefaultPrecisionCap.
func New(c Constant, capBits uint) *Sequence {
	if capBits == 0 {
		capBits = DefaultPrecisionCap
	}
	return &Sequence{constant: c, capBits: capBits}
}

// Constant returns the constant this sequence expands.
func (s *Sequence) Constant() Constant { return s.constant }

// Cached returns the number of chunks computed so far.
func (s *Sequence) Cached() int { return len(s.chunks) }

// Chunk returns 64-bit chunk index of the constant's fractional expansion
// (chunk 0 holds the most significant 64 fraction bits). The result for a
// given index never changes once computed. If serving the index would
// require precision beyond the cap, Chunk fails with PrecisionError and
// computes nothing.
func (s *Sequence) Chunk(index uint64) (uint64, error) {
	for index >= uint64(len(s.chunks)) {
		if err := s.grow(); err != nil {
			return 0, err
		}
	}
	return s.chunks[index], nil
}

// servedChunks is the number of chunks a precision level can serve.
func servedChunks(precBits uint) int {
	return int((precBits - guardBits) / 64)
}

// grow advances to the next precision level and appends the newly served
// chunks. Chunks below the previous level's horizon are left untouched so
// the cache stays append-only under any access order.
func (s *Sequence) grow() error {
	next := uint(baseBits)
	if s.precBits != 0 {
		next = s.precBits * 2
	}
	if next > s.capBits {
		return &PrecisionError{
			Constant: s.constant,
			Index:    uint64(len(s.chunks)),
			CapBits:  s.capBits,
		}
	}

	frac := expand(s.constant, next)
	for k := len(s.chunks); k < servedChunks(next); k++ {
		s.chunks = append(s.chunks, chunkAt(frac, next, k))
	}
	s.precBits = next
	return nil
}

// u64Mask masks a big.Int down to its low 64 bits.
var u64Mask = new(big.Int).SetUint64(^uint64(0))

// chunkAt extracts chunk k from a precBits-bit fixed-point fraction.
func chunkAt(frac *big.Int, precBits uint, k int) uint64 {
	shift := precBits - 64*uint(k+1)
	v := new(big.Int).Rsh(frac, shift)
	return v.And(v, u64Mask).Uint64()
}
