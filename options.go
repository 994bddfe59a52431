package dagrand

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quillon/dagrand/internal/health"
	"github.com/quillon/dagrand/internal/seq"
)

// Defaults for the construction-time configuration.
const (
	// DefaultEpochLength is the number of cycles between edge rewires.
	DefaultEpochLength = 64

	// DefaultRankPeriod is the number of epochs between rank permutation
	// recomputations.
	DefaultRankPeriod = 8

	// DefaultMaxOutDegree caps each node's active out-edges, bounding
	// influence fan-in.
	DefaultMaxOutDegree = 3
)

// config holds the fixed construction-time parameters of a generator.
type config struct {
	epochLength  uint64
	rankPeriod   uint64
	maxOutDegree int
	precisionCap uint
	windowSize   int
	freqThresh   float64
	corrThresh   float64
	registerer   prometheus.Registerer
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		epochLength:  DefaultEpochLength,
		rankPeriod:   DefaultRankPeriod,
		maxOutDegree: DefaultMaxOutDegree,
		precisionCap: seq.DefaultPrecisionCap,
		windowSize:   health.DefaultWindowSize,
		freqThresh:   health.DefaultFrequencyThreshold,
		corrThresh:   health.DefaultCorrelationThreshold,
	}
}

// Option configures a Generator at construction. All parameters are fixed
// for the generator's lifetime; there is no file- or environment-based
// configuration surface.
type Option func(*config)

// WithEpochLength sets the epoch length K in cycles. Values below 1 are
// ignored.
func WithEpochLength(k uint64) Option {
	return func(c *config) {
		if k >= 1 {
			c.epochLength = k
		}
	}
}

// WithRankPeriod sets the rank permutation period in epochs. Values below
// 1 are ignored.
func WithRankPeriod(epochs uint64) Option {
	return func(c *config) {
		if epochs >= 1 {
			c.rankPeriod = epochs
		}
	}
}

// WithMaxOutDegree caps active out-edges per node. Values outside 0..7
// are ignored.
func WithMaxOutDegree(d int) Option {
	return func(c *config) {
		if d >= 0 && d <= 7 {
			c.maxOutDegree = d
		}
	}
}

// WithPrecisionCap bounds each sequence's expansion precision in bits.
// Growing past the cap fails the generation call (fail closed). Use small
// caps in tests to force PrecisionExhausted.
func WithPrecisionCap(bits uint) Option {
	return func(c *config) {
		if bits > 0 {
			c.precisionCap = bits
		}
	}
}

// WithWindowSize sets the health window size W in words.
func WithWindowSize(w int) Option {
	return func(c *config) {
		if w > 0 {
			c.windowSize = w
		}
	}
}

// WithFrequencyThreshold sets the bit-frequency degradation threshold.
func WithFrequencyThreshold(t float64) Option {
	return func(c *config) {
		if t > 0 {
			c.freqThresh = t
		}
	}
}

// WithCorrelationThreshold sets the lag-1 correlation degradation
// threshold.
func WithCorrelationThreshold(t float64) Option {
	return func(c *config) {
		if t > 0 {
			c.corrThresh = t
		}
	}
}

// WithMetrics registers health gauges with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) { c.registerer = reg }
}

// WithLogger routes the generator's structured logs to log. Defaults to
// slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) { c.logger = log }
}
