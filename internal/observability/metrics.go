package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	withdrawalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "withdrawals_total",
		Help:      "Number of successful withdrawals per activity.",
	}, []string{"activity"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})

	lastChangeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "last_change_timestamp_seconds",
		Help:      "Unix timestamp of the most recent roster mutation.",
	})
)

func init() {
	prometheus.MustRegister(signupCounter, withdrawalCounter, rosterSizeGauge, lastChangeGauge)
}

// RecordSignup updates counters after a successful enroll.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
	lastChangeGauge.Set(float64(time.Now().Unix()))
}

// RecordWithdrawal updates counters after a successful withdraw.
func RecordWithdrawal(activity string, rosterSize int) {
	withdrawalCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
	lastChangeGauge.Set(float64(time.Now().Unix()))
}

// SetRosterSize primes the per-activity gauge, used when seeding the registry.
func SetRosterSize(activity string, rosterSize int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}
