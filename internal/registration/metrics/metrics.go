package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registration workflow.
type Metrics struct {
	// Proof submissions by registration type
	Submissions *prometheus.CounterVec

	// Submissions rejected before any mutation, by reason
	Rejected *prometheus.CounterVec

	// Admin validations
	Validations prometheus.Counter

	// FREE_ACCESS records created by whitelist reconciliation
	FreeAccessGrants prometheus.Counter
}

// New creates a Metrics instance with all registration metrics registered.
func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_registration_submissions_total",
			Help: "Total proof submissions accepted, by registration type",
		}, []string{"type"}),

		Rejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_registration_rejected_total",
			Help: "Total proof submissions rejected before mutation, by reason",
		}, []string{"reason"}), // reason: "media_type", "too_large", "invalid_input"

		Validations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "regdesk_registration_validations_total",
			Help: "Total registrations validated by an administrator",
		}),

		FreeAccessGrants: promauto.NewCounter(prometheus.CounterOpts{
			Name: "regdesk_registration_free_access_grants_total",
			Help: "Total FREE_ACCESS records created for whitelisted users",
		}),
	}
}

// IncSubmission records an accepted proof submission.
func (m *Metrics) IncSubmission(regType string) {
	if m != nil {
		m.Submissions.WithLabelValues(regType).Inc()
	}
}

// IncRejected records a submission rejected before any mutation.
func (m *Metrics) IncRejected(reason string) {
	if m != nil {
		m.Rejected.WithLabelValues(reason).Inc()
	}
}

// IncValidation records an admin validation.
func (m *Metrics) IncValidation() {
	if m != nil {
		m.Validations.Inc()
	}
}

// IncFreeAccessGrant records a reconciliation insert.
func (m *Metrics) IncFreeAccessGrant() {
	if m != nil {
		m.FreeAccessGrants.Inc()
	}
}
