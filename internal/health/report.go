package health

// Status classifies a window's statistical quality.
type Status int

const (
	// StatusOK means all window statistics are inside thresholds.
	StatusOK Status = iota
	// StatusDegraded means bit-frequency deviation or serial correlation
	// crossed its threshold. Advisory only.
	StatusDegraded
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusDegraded {
		return "DEGRADED"
	}
	return "OK"
}

// Report is one window's statistics. Immutable once produced; callers
// read it through Monitor.Latest.
type Report struct {
	// Status is OK or DEGRADED per the configured thresholds.
	Status Status

	// Entropy is the Shannon estimate over the window's byte
	// distribution, in bits per byte (8.0 is ideal).
	Entropy float64

	// Correlation is the lag-1 serial correlation estimate over the
	// window's bit stream, in [-1, 1].
	Correlation float64

	// FrequencyDeviation is |ones/bits - 0.5|.
	FrequencyDeviation float64

	// RunsZ is the runs-test z statistic for the window.
	RunsZ float64

	// WindowEndCycle is the cycle index of the last word in the window.
	WindowEndCycle uint64

	// Dropped is the cumulative number of samples the monitor shed under
	// load since construction or the last reset.
	Dropped uint64

	// GeneratorID correlates the report with its generator instance.
	GeneratorID string
}
