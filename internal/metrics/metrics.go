// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Number of currently active HTTP requests",
		},
	)

	MoodSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teampulse_mood_submissions_total",
			Help: "Mood entries accepted, by known label or \"other\"",
		},
		[]string{"label"},
	)

	SeededMembers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "teampulse_seeded_members_total",
			Help: "Team members written by the fixture seeder",
		},
	)
)

// moodLabels are the labels the clients offer as presets. Anything else a
// client sends is counted under "other" so the series set stays fixed.
var moodLabels = map[string]struct{}{
	"Happy":    {},
	"Fired Up": {},
	"Thinking": {},
	"Neutral":  {},
	"Tired":    {},
	"Stressed": {},
}

// MoodLabel maps a submitted label onto the MoodSubmissions label set.
func MoodLabel(label string) string {
	if _, ok := moodLabels[label]; ok {
		return label
	}
	return "other"
}
