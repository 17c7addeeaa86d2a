package middleware

import (
	"calendar-assistant/config"
	"calendar-assistant/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

type Middleware struct {
	l       log.Logger
	apiKey  string
	header  string
	limiter *rateLimiter
}

// New builds the middleware set. A non-positive requestsPerMin disables rate limiting.
func New(l log.Logger, security config.SecurityConfig, requestsPerMin int) Middleware {
	mw := Middleware{
		l:      l,
		apiKey: security.APIKey,
		header: security.APIKeyHeader,
	}
	if mw.header == "" {
		mw.header = "x-api-key"
	}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
