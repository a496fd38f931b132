package middleware

import (
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/rs/zerolog"
)

// AccessLog writes one debug line per request after the handler chain ran.
func AccessLog(log *zerolog.Logger) drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()
		c.Next()

		log.Debug().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}
