package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// xorshiftWords produces a stream with near-ideal window statistics, used
// to calibrate the evaluator against a known-good source.
func xorshiftWords(n int) []uint64 {
	x := uint64(0x9E3779B97F4A7C15)
	out := make([]uint64, n)
	for i := range out {
		x ^= x >> 12
		x ^= x << 25
		x ^= x >> 27
		out[i] = x * 0x2545F4914F6CDD1D
	}
	return out
}

func TestEvaluate_AllZeros(t *testing.T) {
	st := evaluate(make([]uint64, 64))

	assert.Equal(t, 0.5, st.freqDev)
	assert.Equal(t, 1.0, st.corr, "no transitions means perfect correlation")
	assert.Equal(t, 0.0, st.entropy)
	assert.Equal(t, 0.0, st.runsZ, "degenerate window has no runs statistic")
}

func TestEvaluate_AlternatingBits(t *testing.T) {
	words := make([]uint64, 64)
	for i := range words {
		words[i] = 0xAAAAAAAAAAAAAAAA
	}
	st := evaluate(words)

	assert.Equal(t, -1.0, st.corr, "every adjacent pair flips")
	assert.Equal(t, 0.0, st.freqDev)
	assert.Equal(t, 0.0, st.entropy, "a single byte value carries no entropy")
}

func TestEvaluate_HealthyStream(t *testing.T) {
	st := evaluate(xorshiftWords(DefaultWindowSize))

	assert.Greater(t, st.entropy, 7.9)
	assert.Less(t, st.freqDev, DefaultFrequencyThreshold)
	assert.InDelta(t, 0, st.corr, DefaultCorrelationThreshold)
	assert.InDelta(t, 0, st.runsZ, 4)
}

func TestEvaluate_TransitionsCrossWordBoundaries(t *testing.T) {
	// 0, then all ones: the only transition is at the word boundary.
	st := evaluate([]uint64{0, ^uint64(0)})

	// 1 transition over 127 pairs
	assert.InDelta(t, 1-2.0/127, st.corr, 1e-12)
	assert.Equal(t, 0.0, st.freqDev)
}
