package dagrand

import (
	"math/bits"

	"github.com/quillon/dagrand/internal/graph"
)

// Per-index mix constants (the SHA-512 initial-value words) and distinct
// rotations. Different constants per index keep the fold order-sensitive:
// two nodes that happen to emit the same word do not cancel.
var combineConst = [graph.NumNodes]uint64{
	0x6A09E667F3BCC908, 0xBB67AE8584CAA73B,
	0x3C6EF372FE94F82B, 0xA54FF53A5F1D36F1,
	0x510E527FADE682D1, 0x9B05688C2B3E6C1F,
	0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179,
}

var combineRot = [graph.NumNodes]int{5, 13, 21, 29, 37, 45, 53, 61}

// combine folds the eight per-cycle node outputs into the emitted word.
// Pure and deterministic.
func combine(outs [graph.NumNodes]uint64) uint64 {
	var acc uint64
	for i, o := range outs {
		acc ^= bits.RotateLeft64(o^combineConst[i], combineRot[i])
	}
	return acc
}
