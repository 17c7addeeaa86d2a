package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendar-assistant/pkg/log"
)

// RequestID tags the request context with the caller's X-Request-ID, or a fresh uuid.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
