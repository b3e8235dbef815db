package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-assistant/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// Trace tags the request context with a trace id, reusing the client's
// X-Request-ID when present, and echoes it back.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
