package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobMetrics records scheduled job runs.
type JobMetrics struct {
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
}

// Job run results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	// ResultSkipped means another instance held the job lock.
	ResultSkipped = "skipped"
)

// NewJobMetrics registers the job metrics on reg. A nil reg yields a no-op recorder.
func NewJobMetrics(reg *prometheus.Registry) *JobMetrics {
	if reg == nil {
		return &JobMetrics{}
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "job_duration_seconds",
		Help:      "Duration of scheduled jobs in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "job_runs_total",
		Help:      "Scheduled job runs by result.",
	}, []string{"job", "result"})
	reg.MustRegister(duration, runs)

	return &JobMetrics{duration: duration, runs: runs}
}

// ObserveDuration records the duration for the named job.
func (m *JobMetrics) ObserveDuration(job string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(job)).Observe(d.Seconds())
}

// IncResult counts one run of job with result.
func (m *JobMetrics) IncResult(job, result string) {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.WithLabelValues(normalizeLabel(job), normalizeLabel(result)).Inc()
}
