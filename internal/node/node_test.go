package node

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/dagrand/internal/seq"
)

func TestNode_PhaseSemantics(t *testing.T) {
	s := seq.New(seq.Pi, 0)
	chunk0, err := s.Chunk(0)
	require.NoError(t, err)

	const state, meta = uint64(0x1111111111111111), uint64(0x2222222222222225)
	n := New(3, state, meta, seq.New(seq.Pi, 0))

	require.NoError(t, n.Phase1())

	// phase 1 committed nothing
	assert.Equal(t, state, n.State())
	assert.Equal(t, uint64(0), n.Counter())
	assert.Equal(t, uint64(0), n.Cursor())
	assert.Equal(t, uint64(0), n.Out())

	const influence = uint64(0xABCDEF)
	out := n.Phase2(influence)

	mixed := chunk0 ^ influence
	wantOp := Select(state, meta)
	wantState := Apply(wantOp, state^mixed, state)
	assert.Equal(t, wantState, out)
	assert.Equal(t, wantState, n.State())
	assert.Equal(t, wantState, n.Out())
	assert.Equal(t, bits.RotateLeft64(meta, 1)^0, n.meta, "meta folds the pre-increment counter")
	assert.Equal(t, uint64(1), n.Counter())
	assert.Equal(t, uint64(1), n.Cursor())
}

func TestNode_FailedPhase1LeavesNodeUntouched(t *testing.T) {
	// A cap below the base precision level cannot serve any chunk.
	s := seq.New(seq.E, 64)
	n := New(0, 42, 7, s)

	err := n.Phase1()
	require.Error(t, err)
	assert.True(t, seq.IsPrecisionExhausted(err))

	assert.Equal(t, uint64(42), n.State())
	assert.Equal(t, uint64(0), n.Counter())
	assert.Equal(t, uint64(0), n.Cursor())
}

func TestNode_CounterMonotone(t *testing.T) {
	n := New(0, 1, 2, seq.New(seq.Sqrt2, 0))
	for i := uint64(0); i < 100; i++ {
		require.NoError(t, n.Phase1())
		n.Phase2(0)
		assert.Equal(t, i+1, n.Counter())
		assert.Equal(t, i+1, n.Cursor())
	}
}

func TestNode_DeterministicUpdate(t *testing.T) {
	run := func() []uint64 {
		n := New(5, 0xCAFEBABE, 0xFACE, seq.New(seq.Catalan, 0))
		outs := make([]uint64, 0, 32)
		for i := 0; i < 32; i++ {
			require.NoError(t, n.Phase1())
			outs = append(outs, n.Phase2(uint64(i)*0x9E37))
		}
		return outs
	}
	assert.Equal(t, run(), run())
}
