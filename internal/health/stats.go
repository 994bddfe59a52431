package health

import (
	"math"
	"math/bits"
)

// windowStats holds the raw statistics of one window.
type windowStats struct {
	entropy float64
	corr    float64
	freqDev float64
	runsZ   float64
}

// evaluate computes the window statistics over words. The bit stream is
// read word by word, least-significant bit first.
func evaluate(words []uint64) windowStats {
	n := uint64(len(words)) * 64

	// bit frequency
	var ones uint64
	for _, w := range words {
		ones += uint64(bits.OnesCount64(w))
	}
	freq := float64(ones) / float64(n)

	// transitions between adjacent bits, across word boundaries
	var transitions uint64
	prev := words[0] & 1
	for _, w := range words {
		// boundary pair: last bit of the previous word vs bit 0
		transitions += prev ^ (w & 1)
		// pairs inside the word: xor with self shifted by one
		transitions += uint64(bits.OnesCount64((w ^ (w >> 1)) & (1<<63 - 1)))
		prev = w >> 63
	}
	// the first boundary pair compared words[0] bit 0 with itself
	pairs := n - 1

	// lag-1 correlation estimate: +1 when every pair agrees, -1 when
	// every pair flips
	corr := 1 - 2*float64(transitions)/float64(pairs)

	// runs test
	runs := float64(transitions + 1)
	n1 := float64(ones)
	n0 := float64(n - ones)
	runsZ := 0.0
	if n1 > 0 && n0 > 0 {
		expected := 2*n1*n0/float64(n) + 1
		variance := (expected - 1) * (expected - 2) / (float64(n) - 1)
		if variance > 0 {
			runsZ = (runs - expected) / math.Sqrt(variance)
		}
	}

	// Shannon entropy over the byte distribution
	var hist [256]uint64
	for _, w := range words {
		for b := 0; b < 8; b++ {
			hist[byte(w>>(8*b))]++
		}
	}
	total := float64(len(words) * 8)
	entropy := 0.0
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}

	return windowStats{
		entropy: entropy,
		corr:    corr,
		freqDev: math.Abs(freq - 0.5),
		runsZ:   runsZ,
	}
}
