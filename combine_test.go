package dagrand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillon/dagrand/internal/graph"
)

func TestCombine_OrderSensitive(t *testing.T) {
	a := [graph.NumNodes]uint64{1, 2, 3, 4, 5, 6, 7, 8}
	b := [graph.NumNodes]uint64{8, 7, 6, 5, 4, 3, 2, 1}
	assert.NotEqual(t, combine(a), combine(b))
}

func TestCombine_EqualWordsDoNotCancel(t *testing.T) {
	// A plain xor fold would collapse pairs of identical outputs; the
	// per-index constants and rotations must not.
	var outs [graph.NumNodes]uint64
	for i := range outs {
		outs[i] = 0xDEADBEEFCAFEF00D
	}
	assert.NotZero(t, combine(outs))
	assert.NotEqual(t, combine(outs), combine([graph.NumNodes]uint64{}))
}

func TestCombine_Deterministic(t *testing.T) {
	outs := [graph.NumNodes]uint64{
		0x243F6A8885A308D3, 0xB7E151628AED2A6A,
		0x6A09E667F3BCC908, 0x9E3779B97F4A7C15,
		0xB17217F7D1CF79AB, 0x193EA7AAD030A976,
		0x33BA004F00621383, 0xEA7CB89F409AE845,
	}
	assert.Equal(t, combine(outs), combine(outs))
}
