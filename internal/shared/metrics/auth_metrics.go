package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Signin and signup outcomes
const (
	OutcomeSuccess         = "success"
	OutcomeNotFound        = "not_found"
	OutcomeWrongPassword   = "wrong_password"
	OutcomeWithdrawn       = "withdrawn"
	OutcomePendingApproval = "pending_approval"
	OutcomeBanned          = "banned"
	OutcomeDuplicate       = "duplicate"
	OutcomeInvalidDocument = "invalid_document"
	OutcomeError           = "error"
)

// AuthMetrics tracks the account lifecycle.
type AuthMetrics struct {
	Signins     *prometheus.CounterVec
	Signups     *prometheus.CounterVec
	Withdrawals prometheus.Counter
}

var DefaultAuthMetrics *AuthMetrics

func init() {
	DefaultAuthMetrics = NewAuthMetricsWithRegistry(GetRegisterer())
}

func NewAuthMetricsWithRegistry(reg prometheus.Registerer) *AuthMetrics {
	factory := promauto.With(reg)

	return &AuthMetrics{
		Signins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "member_signin_total",
				Help:      "Signin attempts by outcome",
			},
			[]string{"outcome"},
		),
		Signups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "member_signup_total",
				Help:      "Signup attempts by outcome",
			},
			[]string{"outcome"},
		),
		Withdrawals: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "member_withdrawal_total",
				Help:      "Completed member withdrawals",
			},
		),
	}
}

func (m *AuthMetrics) IncSignin(outcome string) {
	if m == nil {
		return
	}
	m.Signins.WithLabelValues(outcome).Inc()
}

func (m *AuthMetrics) IncSignup(outcome string) {
	if m == nil {
		return
	}
	m.Signups.WithLabelValues(outcome).Inc()
}

func (m *AuthMetrics) IncWithdrawal() {
	if m == nil {
		return
	}
	m.Withdrawals.Inc()
}
