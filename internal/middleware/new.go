package middleware

import (
	pkgLog "plant-care-assistant/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the HTTP middleware bundle. requestsPerMin bounds per-client
// request throughput across the API.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
