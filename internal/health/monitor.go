package health

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Config parameterizes a Monitor. Zero values select defaults.
type Config struct {
	// WindowSize is the number of words per statistics window.
	WindowSize int

	// FrequencyThreshold is the bit-frequency deviation above which a
	// window is degraded.
	FrequencyThreshold float64

	// CorrelationThreshold is the absolute lag-1 correlation above which
	// a window is degraded.
	CorrelationThreshold float64

	// GeneratorID tags reports and log lines.
	GeneratorID string

	// Logger receives window logs; nil selects slog.Default.
	Logger *slog.Logger

	// Metrics, when non-nil, receives per-window gauge updates.
	Metrics *Metrics
}

// Defaults for Config zero values. The thresholds are about five standard
// deviations for the default window (4096 words = 262144 bits), so an OK
// verdict on a healthy stream is overwhelmingly likely.
const (
	DefaultWindowSize           = 4096
	DefaultFrequencyThreshold   = 0.005
	DefaultCorrelationThreshold = 0.005
)

type sample struct {
	word  uint64
	cycle uint64
}

// Monitor consumes a best-effort copy of the output stream and publishes
// window statistics. It runs one goroutine between New and Close.
type Monitor struct {
	cfg Config
	log *slog.Logger

	samples chan sample
	resets  chan struct{} // coalesced reset signal, buffer of 1
	done    chan struct{}
	wg      sync.WaitGroup

	latest  atomic.Pointer[Report]
	dropped atomic.Uint64
}

// New creates a Monitor and starts its consumer goroutine.
func New(cfg Config) *Monitor {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.FrequencyThreshold <= 0 {
		cfg.FrequencyThreshold = DefaultFrequencyThreshold
	}
	if cfg.CorrelationThreshold <= 0 {
		cfg.CorrelationThreshold = DefaultCorrelationThreshold
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	m := &Monitor{
		cfg:     cfg,
		log:     log,
		samples: make(chan sample, 1024),
		resets:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	m.latest.Store(&Report{Status: StatusOK, GeneratorID: cfg.GeneratorID})
	m.wg.Add(1)
	go m.run()
	return m
}

// Observe offers one emitted word to the monitor. Non-blocking: when the
// monitor is behind, the sample is counted as dropped and generation is
// unaffected.
func (m *Monitor) Observe(word, cycle uint64) {
	select {
	case m.samples <- sample{word: word, cycle: cycle}:
	default:
		m.dropped.Add(1)
	}
}

// Latest returns the most recent report. Non-blocking; before the first
// window completes it reports OK with zero statistics.
func (m *Monitor) Latest() Report {
	return *m.latest.Load()
}

// Reset discards the partially filled window and the latest report.
// Called on reseed. The signal is coalesced (buffer of one), so a pending
// reset absorbs later ones.
func (m *Monitor) Reset() {
	m.dropped.Store(0)
	m.latest.Store(&Report{Status: StatusOK, GeneratorID: m.cfg.GeneratorID})
	select {
	case m.resets <- struct{}{}:
	default:
	}
}

// Close stops the consumer goroutine and waits for it to exit.
func (m *Monitor) Close() {
	close(m.done)
	m.wg.Wait()
}

// run is the consumer loop. Resets win over pending samples.
func (m *Monitor) run() {
	defer m.wg.Done()
	window := make([]uint64, 0, m.cfg.WindowSize)
	for {
		select {
		case <-m.done:
			return
		case <-m.resets:
			window = window[:0]
			m.drain()
		case s := <-m.samples:
			window = append(window, s.word)
			if len(window) == m.cfg.WindowSize {
				m.publish(window, s.cycle)
				window = window[:0]
			}
		}
	}
}

// drain discards samples emitted before a reset.
func (m *Monitor) drain() {
	for {
		select {
		case <-m.samples:
		default:
			return
		}
	}
}

// publish evaluates a full window and stores the report.
func (m *Monitor) publish(window []uint64, endCycle uint64) {
	st := evaluate(window)

	status := StatusOK
	if st.freqDev > m.cfg.FrequencyThreshold ||
		st.corr > m.cfg.CorrelationThreshold ||
		-st.corr > m.cfg.CorrelationThreshold {
		status = StatusDegraded
	}

	rep := &Report{
		Status:             status,
		Entropy:            st.entropy,
		Correlation:        st.corr,
		FrequencyDeviation: st.freqDev,
		RunsZ:              st.runsZ,
		WindowEndCycle:     endCycle,
		Dropped:            m.dropped.Load(),
		GeneratorID:        m.cfg.GeneratorID,
	}
	m.latest.Store(rep)

	if m.cfg.Metrics != nil {
		m.cfg.Metrics.observe(rep)
	}

	if status == StatusDegraded {
		m.log.Warn("health window degraded",
			"generator_id", m.cfg.GeneratorID,
			"window_end_cycle", endCycle,
			"frequency_deviation", st.freqDev,
			"correlation", st.corr,
		)
		return
	}
	m.log.Debug("health window evaluated",
		"generator_id", m.cfg.GeneratorID,
		"window_end_cycle", endCycle,
		"entropy", st.entropy,
		"runs_z", st.runsZ,
	)
}
