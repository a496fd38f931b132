package middleware

import (
	"time"

	"github.com/dimitrije/teampulse-api/internal/metrics"
	"github.com/m1z23r/drift/pkg/drift"
)

// Metrics records request count and latency. Paths are left out of the
// labels since they carry member and user ids.
func Metrics() drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()
		metrics.ActiveRequests.Inc()

		c.Next()

		metrics.ActiveRequests.Dec()
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}
