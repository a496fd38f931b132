package middleware

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// incomingRequestID bounds what a caller may supply, since the id is echoed
// in the response and written to every access-log line.
var incomingRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// RequestID reuses a well-formed caller X-Request-ID or generates one, and echoes it
// on the response.
func RequestID() drift.HandlerFunc {
	return func(c *drift.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !incomingRequestID.MatchString(id) {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Response.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID retrieves the request id from context (set by RequestID)
func GetRequestID(c *drift.Context) string {
	if id, ok := c.Get(RequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
