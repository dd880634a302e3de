package metrics

import (
	"courier/internal/domain/entity"
	"courier/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
)

// PushMetrics counts queue and billing outcomes reported by the worker endpoints.
type PushMetrics struct {
	jobs     *prometheus.CounterVec
	messages *prometheus.CounterVec
	charges  *prometheus.CounterVec
	notices  *prometheus.CounterVec
}

// NewPushMetrics registers the push metrics on reg. A nil reg yields a no-op recorder.
func NewPushMetrics(reg *prometheus.Registry) *PushMetrics {
	if reg == nil {
		return &PushMetrics{}
	}

	jobs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "push",
		Name:      "jobs_total",
		Help:      "Push jobs by drain outcome.",
	}, []string{"outcome"})
	messages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "push",
		Name:      "messages_total",
		Help:      "Push messages handed to the gateway, or skipped as already delivered.",
	}, []string{"result"})
	charges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "billing",
		Name:      "charges_total",
		Help:      "Subscription charge attempts by outcome.",
	}, []string{"outcome"})
	notices := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "billing",
		Name:      "notices_total",
		Help:      "Billing notifications by audience.",
	}, []string{"audience"})
	reg.MustRegister(jobs, messages, charges, notices)

	return &PushMetrics{jobs: jobs, messages: messages, charges: charges, notices: notices}
}

// ObserveDrain adds one drain pass.
func (m *PushMetrics) ObserveDrain(r *usecase.DrainResult) {
	if m == nil || m.jobs == nil || r == nil {
		return
	}

	m.jobs.WithLabelValues("claimed").Add(float64(r.Claimed))
	m.jobs.WithLabelValues("sent").Add(float64(r.Sent))
	m.jobs.WithLabelValues("retried").Add(float64(r.Retried))
	m.jobs.WithLabelValues("failed").Add(float64(r.Failed))
	m.messages.WithLabelValues("sent").Add(float64(r.Messages))
	m.messages.WithLabelValues("skipped").Add(float64(r.Skipped))
}

// ObserveCharges adds one charge run.
func (m *PushMetrics) ObserveCharges(s *entity.ChargeSummary) {
	if m == nil || m.charges == nil || s == nil {
		return
	}

	m.charges.WithLabelValues(string(entity.ChargeOutcomeCharged)).Add(float64(s.Charged))
	m.charges.WithLabelValues(string(entity.ChargeOutcomeInsufficientBalance)).Add(float64(s.InsufficientBalance))
	m.charges.WithLabelValues(string(entity.ChargeOutcomeMissingSubscription)).Add(float64(s.MissingSubscription))
	m.charges.WithLabelValues("error").Add(float64(s.Errors))
	m.charges.WithLabelValues("expired").Add(float64(s.Expired))
}

// ObserveBillingNotify adds one notify-billing run.
func (m *PushMetrics) ObserveBillingNotify(s *entity.BillingNotifySummary) {
	if m == nil || m.notices == nil || s == nil {
		return
	}

	m.notices.WithLabelValues("merchant").Add(float64(s.MerchantNotices))
	m.notices.WithLabelValues("driver").Add(float64(s.DriversNotified))
	m.notices.WithLabelValues("driver_cooldown").Add(float64(s.DriversSkipped))
}
