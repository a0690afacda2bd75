package obsmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors are the Prometheus instruments the trial loop feeds (§4.6):
// a counter of trials completed, a gauge of the most recent running
// mean, and a histogram of elapsed wall time per reported progress batch.
type Collectors struct {
	TrialsCompleted prometheus.Counter
	RunningMean     prometheus.Gauge
	TrialDuration   prometheus.Histogram
}

// NewCollectors registers a fresh set of collectors against reg. Each
// simulation run should get its own Collectors (and its own registry, or
// a distinguishing const label) to avoid duplicate-registration panics
// across concurrent runs.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		TrialsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "spert_scheduler",
			Subsystem: "montecarlo",
			Name:      "trials_completed_total",
			Help:      "Total Monte Carlo trials completed.",
		}),
		RunningMean: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "spert_scheduler",
			Subsystem: "montecarlo",
			Name:      "running_mean_days",
			Help:      "Most recent running mean of the sampled project duration, in days.",
		}),
		TrialDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "spert_scheduler",
			Subsystem: "montecarlo",
			Name:      "trial_elapsed_seconds",
			Help:      "Elapsed wall time per reported progress batch, in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// WrapProgress returns an onProgress callback that updates TrialsCompleted
// and TrialDuration, then calls base (if non-nil). It is the only sink
// this package adds to the trial loop's existing progress call site.
func (c *Collectors) WrapProgress(base func(completed, total int)) func(completed, total int) {
	last := time.Now()
	var prevCompleted int
	return func(completed, total int) {
		now := time.Now()
		c.TrialsCompleted.Add(float64(completed - prevCompleted))
		c.TrialDuration.Observe(now.Sub(last).Seconds())
		prevCompleted = completed
		last = now
		if base != nil {
			base(completed, total)
		}
	}
}

// SetRunningMean records the current running mean of sampled values, in
// days. Callers own computing this from their own sample buffer view.
func (c *Collectors) SetRunningMean(mean float64) {
	c.RunningMean.Set(mean)
}
