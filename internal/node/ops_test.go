package node

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opNames for failure messages.
var opNames = map[OpID]string{
	OpRotateLeft:        "rotate-left",
	OpRotateRight:       "rotate-right",
	OpXorShiftRight:     "xorshift-right",
	OpAddOdd:            "add-odd",
	OpMulRotate:         "mul-rotate",
	OpXorShiftLeft:      "xorshift-left",
	OpByteReverseRotate: "byte-reverse-rotate",
	OpXorRotateFold:     "xor-rotate-fold",
}

// TestOps_Bijective verifies the hard invariant: every operation is
// invertible on the full 64-bit domain, for arbitrary state operands.
// Exhaustive coverage is infeasible; a large deterministic sample plus
// algebraic inversion gives the same confidence.
func TestOps_Bijective(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for op := OpID(0); op < NumOps; op++ {
		t.Run(opNames[op], func(t *testing.T) {
			for i := 0; i < 5000; i++ {
				x := rng.Uint64()
				state := rng.Uint64()
				y := Apply(op, x, state)
				back := Invert(op, y, state)
				require.Equal(t, x, back,
					"%s not inverted for x=%#x state=%#x", opNames[op], x, state)
			}

			// edge states: extreme shift operands
			for _, state := range []uint64{0, ^uint64(0), 1 << 58, 63 << 58} {
				for _, x := range []uint64{0, 1, ^uint64(0), 0x8000000000000000} {
					y := Apply(op, x, state)
					require.Equal(t, x, Invert(op, y, state))
				}
			}
		})
	}
}

// TestOps_NoCollisions samples a block of distinct inputs under one state
// and checks the outputs stay distinct.
func TestOps_NoCollisions(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for op := OpID(0); op < NumOps; op++ {
		state := rng.Uint64()
		seen := make(map[uint64]uint64, 4096)
		for i := 0; i < 4096; i++ {
			x := rng.Uint64()
			y := Apply(op, x, state)
			if prevX, dup := seen[y]; dup && prevX != x {
				t.Fatalf("%s collides: %#x and %#x -> %#x", opNames[op], prevX, x, y)
			}
			seen[y] = x
		}
	}
}

func TestSelect_MetaLowBits(t *testing.T) {
	for meta := uint64(0); meta < 16; meta++ {
		assert.Equal(t, OpID(meta%8), Select(0xDEADBEEF, meta))
	}
}

func TestApply_KnownTransforms(t *testing.T) {
	// shift amount comes from the top 6 bits of state
	state := uint64(13) << 58

	assert.Equal(t, bits.RotateLeft64(0x0123456789ABCDEF, 13),
		Apply(OpRotateLeft, 0x0123456789ABCDEF, state))
	assert.Equal(t, bits.RotateLeft64(0x0123456789ABCDEF, -13),
		Apply(OpRotateRight, 0x0123456789ABCDEF, state))
	assert.Equal(t, uint64(0x0123456789ABCDEF)+(state|1),
		Apply(OpAddOdd, 0x0123456789ABCDEF, state))
	assert.Equal(t, bits.RotateLeft64(bits.ReverseBytes64(0xFF), 13),
		Apply(OpByteReverseRotate, 0xFF, state))

	x := uint64(0x0123456789ABCDEF)
	assert.Equal(t, x^bits.RotateLeft64(x, 13)^bits.RotateLeft64(x, 41),
		Apply(OpXorRotateFold, x, 0))
}

func TestMulInverse(t *testing.T) {
	assert.Equal(t, uint64(1), mulConst*mulInverse(mulConst))
	for _, m := range []uint64{1, 3, 0xDEADBEEF | 1, ^uint64(0)} {
		assert.Equal(t, uint64(1), m*mulInverse(m), "inverse of %#x", m)
	}
}
