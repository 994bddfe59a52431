package dagrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/dagrand/internal/graph"
)

func TestExpandSeed_Deterministic(t *testing.T) {
	a := expandSeed(testSeed())
	b := expandSeed(testSeed())
	assert.Equal(t, a, b)
}

func TestExpandSeed_OrderIsPermutation(t *testing.T) {
	m := expandSeed(testSeed())

	seen := [graph.NumNodes]bool{}
	for _, id := range m.order {
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, graph.NumNodes)
		require.False(t, seen[id], "id %d appears twice", id)
		seen[id] = true
	}
}

func TestExpandSeed_SeedBitsMatter(t *testing.T) {
	a := expandSeed(testSeed())

	flipped := testSeed()
	flipped[31] ^= 0x80
	b := expandSeed(flipped)

	assert.NotEqual(t, a.states, b.states)
	assert.NotEqual(t, a.metas, b.metas)
}

func TestExpandSeed_StatesDistinct(t *testing.T) {
	m := expandSeed(testSeed())

	seen := make(map[uint64]bool)
	for _, s := range m.states {
		assert.False(t, seen[s])
		seen[s] = true
	}
}
