package dagrand

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/quillon/dagrand/internal/graph"
)

// seedMaterial is the deterministic expansion of a caller seed: the eight
// initial (state, meta-state) pairs and the initial rank order. Counters
// and sequence cursors always start at zero.
type seedMaterial struct {
	states [graph.NumNodes]uint64
	metas  [graph.NumNodes]uint64
	order  [graph.NumNodes]int
}

// expandSeed derives seedMaterial via counter-mode SHA-256: block i is
// SHA-256(seed || bigendian32(i)), and blocks are concatenated into a
// stream. Nodes read 16 bytes each (state then meta-state, big-endian);
// the next 7 bytes drive a Fisher-Yates shuffle for the rank order.
func expandSeed(seed []byte) seedMaterial {
	const need = graph.NumNodes*16 + 7
	stream := make([]byte, 0, need+sha256.Size)
	var ctr [4]byte
	for i := uint32(0); len(stream) < need; i++ {
		binary.BigEndian.PutUint32(ctr[:], i)
		h := sha256.New()
		h.Write(seed)
		h.Write(ctr[:])
		stream = h.Sum(stream)
	}

	var m seedMaterial
	for i := 0; i < graph.NumNodes; i++ {
		m.states[i] = binary.BigEndian.Uint64(stream[i*16:])
		m.metas[i] = binary.BigEndian.Uint64(stream[i*16+8:])
	}

	perm := stream[graph.NumNodes*16:]
	for i := range m.order {
		m.order[i] = i
	}
	for i := graph.NumNodes - 1; i > 0; i-- {
		j := int(perm[graph.NumNodes-1-i]) % (i + 1)
		m.order[i], m.order[j] = m.order[j], m.order[i]
	}
	return m
}
