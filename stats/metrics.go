package stats

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for percolation_trials_total.
const (
	outcomePercolated = "percolated"
	outcomeFailed     = "failed"
)

// Collector bundles the Prometheus metrics recorded by Run.
// A nil *Collector records nothing.
type Collector struct {
	Trials        *prometheus.CounterVec
	TrialDuration prometheus.Histogram
	Thresholds    prometheus.Histogram
	SitesOpened   prometheus.Histogram
}

// NewCollector registers the percolation metrics against reg, defaulting to
// the global registry when nil. Registering twice against the same registry
// returns the already registered metrics.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	trials, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "percolation_trials_total",
		Help: "Monte Carlo percolation trials, labeled by outcome.",
	}, []string{"outcome"}), "percolation_trials_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "percolation_trial_duration_seconds",
		Help:    "Wall time of a single percolation trial.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}), "percolation_trial_duration_seconds")
	if err != nil {
		return nil, err
	}

	thresholds, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "percolation_threshold",
		Help:    "Fraction of sites open when a trial first percolated.",
		Buckets: prometheus.LinearBuckets(0.05, 0.05, 19),
	}), "percolation_threshold")
	if err != nil {
		return nil, err
	}

	opened, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "percolation_sites_opened",
		Help:    "Sites opened before a trial percolated.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}), "percolation_sites_opened")
	if err != nil {
		return nil, err
	}

	return &Collector{
		Trials:        trials,
		TrialDuration: duration,
		Thresholds:    thresholds,
		SitesOpened:   opened,
	}, nil
}

func (c *Collector) observeTrial(d time.Duration, threshold float64, opened int) {
	if c == nil {
		return
	}
	c.Trials.WithLabelValues(outcomePercolated).Inc()
	c.TrialDuration.Observe(d.Seconds())
	c.Thresholds.Observe(threshold)
	c.SitesOpened.Observe(float64(opened))
}

func (c *Collector) observeFailure() {
	if c == nil {
		return
	}
	c.Trials.WithLabelValues(outcomeFailed).Inc()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}
