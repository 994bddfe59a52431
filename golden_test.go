package dagrand

import (
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestGenerator_GoldenStream pins the first thousand words of the default
// configuration down to the bit. Any change to the expansion series, the
// meta-operations, the topology schedule, or the output fold shows up
// here first.
func TestGenerator_GoldenStream(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping golden stream in short mode")
	}

	g := newTestGenerator(t)

	var b strings.Builder
	for w, err := range g.Fill(1000) {
		require.NoError(t, err)
		fmt.Fprintf(&b, "%016x\n", w)
	}

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "fill_1000", []byte(b.String()))
}

// TestGenerator_SeedSweep checks that distinct seeds give distinct stream
// prefixes across a wide sample.
func TestGenerator_SeedSweep(t *testing.T) {
	seeds := 10000
	if testing.Short() {
		seeds = 256
	}

	seen := make(map[[2]uint64]int, seeds)
	seed := testSeed()
	for i := 0; i < seeds; i++ {
		binary.BigEndian.PutUint32(seed, uint32(i))

		g, err := New(seed, WithLogger(quietLogger()))
		require.NoError(t, err)

		var prefix [2]uint64
		for j := range prefix {
			prefix[j], err = g.NextUint64()
			require.NoError(t, err)
		}
		g.Close()

		if prev, dup := seen[prefix]; dup {
			t.Fatalf("seeds %d and %d share the prefix %016x %016x",
				prev, i, prefix[0], prefix[1])
		}
		seen[prefix] = i
	}
}
