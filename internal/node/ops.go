package node

import "math/bits"

// OpID identifies one of the eight meta-operations.
type OpID uint8

const (
	// OpRotateLeft rotates left by the state-derived amount.
	OpRotateLeft OpID = iota
	// OpRotateRight rotates right by the state-derived amount.
	OpRotateRight
	// OpXorShiftRight is x ^ (x >> s) with s in 1..63.
	OpXorShiftRight
	// OpAddOdd adds the odd constant (state | 1) mod 2^64.
	OpAddOdd
	// OpMulRotate multiplies by a fixed odd constant, then rotates left 17.
	OpMulRotate
	// OpXorShiftLeft is x ^ (x << s) with s in 1..63.
	OpXorShiftLeft
	// OpByteReverseRotate reverses byte order, then rotates left.
	OpByteReverseRotate
	// OpXorRotateFold is x ^ rotl(x,13) ^ rotl(x,41). Three terms: an odd
	// term count keeps the GF(2)-linear map invertible.
	OpXorRotateFold

	// NumOps is the number of meta-operations.
	NumOps = 8
)

// mulConst is the odd multiplier for OpMulRotate (the 64-bit golden-ratio
// constant; odd, so multiplication mod 2^64 is a bijection).
const mulConst = 0x9E3779B97F4A7C15

// Select maps a node's (state, meta-state) pair to a meta-operation.
// Pure: the same inputs always select the same operation. Selection is
// meta-only; state drives the operand derivation inside Apply.
func Select(state, meta uint64) OpID {
	return OpID(meta & 7)
}

// shiftAmount derives the dynamic operand from the top 6 bits of state.
func shiftAmount(state uint64) uint {
	return uint(state >> 58)
}

// Apply applies meta-operation op to x. The dynamic operand (rotation or
// shift amount, additive constant) derives from state. Every operation is
// a bijection on uint64 for every state value.
func Apply(op OpID, x, state uint64) uint64 {
	k := shiftAmount(state)
	switch op {
	case OpRotateLeft:
		return bits.RotateLeft64(x, int(k))
	case OpRotateRight:
		return bits.RotateLeft64(x, -int(k))
	case OpXorShiftRight:
		s := k%63 + 1
		return x ^ (x >> s)
	case OpAddOdd:
		return x + (state | 1)
	case OpMulRotate:
		return bits.RotateLeft64(x*mulConst, 17)
	case OpXorShiftLeft:
		s := k%63 + 1
		return x ^ (x << s)
	case OpByteReverseRotate:
		return bits.RotateLeft64(bits.ReverseBytes64(x), int(k))
	case OpXorRotateFold:
		return x ^ bits.RotateLeft64(x, 13) ^ bits.RotateLeft64(x, 41)
	}
	panic("node: unknown operation")
}

// Invert applies the inverse of op. It exists so tests can verify the
// bijectivity invariant algebraically: Invert(op, Apply(op, x, s), s) == x
// for all x and s. Generation itself never inverts.
func Invert(op OpID, y, state uint64) uint64 {
	k := shiftAmount(state)
	switch op {
	case OpRotateLeft:
		return bits.RotateLeft64(y, -int(k))
	case OpRotateRight:
		return bits.RotateLeft64(y, int(k))
	case OpXorShiftRight:
		s := k%63 + 1
		x := y
		for sh := s; sh < 64; sh *= 2 {
			x ^= x >> sh
		}
		return x
	case OpAddOdd:
		return y - (state | 1)
	case OpMulRotate:
		return bits.RotateLeft64(y, -17) * mulInverse(mulConst)
	case OpXorShiftLeft:
		s := k%63 + 1
		x := y
		for sh := s; sh < 64; sh *= 2 {
			x ^= x << sh
		}
		return x
	case OpByteReverseRotate:
		return bits.ReverseBytes64(bits.RotateLeft64(y, -int(k)))
	case OpXorRotateFold:
		// The fold f satisfies f^64 = identity (rotations have order
		// dividing 64 and squaring over GF(2) is term-wise), so the
		// inverse is f applied 63 more times.
		x := y
		for i := 0; i < 63; i++ {
			x = x ^ bits.RotateLeft64(x, 13) ^ bits.RotateLeft64(x, 41)
		}
		return x
	}
	panic("node: unknown operation")
}

// mulInverse computes the multiplicative inverse of odd m mod 2^64 by
// Newton iteration (doubles correct bits each step).
func mulInverse(m uint64) uint64 {
	inv := m // correct to 3 bits for odd m
	for i := 0; i < 5; i++ {
		inv *= 2 - m*inv
	}
	return inv
}
