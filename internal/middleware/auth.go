package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-assistant/pkg/errors"
	"calendar-assistant/pkg/response"
)

var errAPIKeyNotConfigured = pkgErrors.NewHTTPError(500, "API key not configured on server")

// Auth requires the shared secret in the configured header. A server with no key configured
// refuses every request.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			m.l.Errorf(c.Request.Context(), "middleware.Auth: no API key configured")
			response.Error(c, errAPIKeyNotConfigured, nil)
			c.Abort()
			return
		}

		got := c.GetHeader(m.header)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request from %s", c.ClientIP())
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
