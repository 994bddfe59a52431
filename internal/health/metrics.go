package health

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports window statistics as Prometheus collectors. Opt-in:
// the monitor only touches it when configured with one.
type Metrics struct {
	entropy  prometheus.Gauge
	freqDev  prometheus.Gauge
	corr     prometheus.Gauge
	runsZ    prometheus.Gauge
	windows  prometheus.Counter
	degraded prometheus.Counter
	dropped  prometheus.Gauge
}

// NewMetrics registers the health collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		entropy: f.NewGauge(prometheus.GaugeOpts{
			Name: "dagrand_health_entropy_bits_per_byte",
			Help: "Shannon entropy estimate of the latest health window.",
		}),
		freqDev: f.NewGauge(prometheus.GaugeOpts{
			Name: "dagrand_health_frequency_deviation",
			Help: "Bit-frequency deviation from 0.5 in the latest window.",
		}),
		corr: f.NewGauge(prometheus.GaugeOpts{
			Name: "dagrand_health_lag1_correlation",
			Help: "Lag-1 serial correlation estimate of the latest window.",
		}),
		runsZ: f.NewGauge(prometheus.GaugeOpts{
			Name: "dagrand_health_runs_z",
			Help: "Runs-test z statistic of the latest window.",
		}),
		windows: f.NewCounter(prometheus.CounterOpts{
			Name: "dagrand_health_windows_total",
			Help: "Health windows evaluated.",
		}),
		degraded: f.NewCounter(prometheus.CounterOpts{
			Name: "dagrand_health_degraded_windows_total",
			Help: "Health windows that crossed a degradation threshold.",
		}),
		dropped: f.NewGauge(prometheus.GaugeOpts{
			Name: "dagrand_health_dropped_samples",
			Help: "Samples shed by the lossy monitor since the last reset.",
		}),
	}
}

// observe records one published report.
func (m *Metrics) observe(r *Report) {
	m.entropy.Set(r.Entropy)
	m.freqDev.Set(r.FrequencyDeviation)
	m.corr.Set(r.Correlation)
	m.runsZ.Set(r.RunsZ)
	m.windows.Inc()
	if r.Status == StatusDegraded {
		m.degraded.Inc()
	}
	m.dropped.Set(float64(r.Dropped))
}
