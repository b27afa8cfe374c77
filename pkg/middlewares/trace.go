package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/riskwatch/riskwatch/pkg"
	"github.com/riskwatch/riskwatch/pkg/utils"
)

// TraceID returns Gin middleware to handle trace IDs for observability.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.Request.Header.Get(pkg.HeaderTraceId)
		if utils.IsEmpty(traceID) {
			traceID = uuid.New().String()
		}
		// Set in context for handlers/services and echo back for clients
		c.Set(pkg.TraceId, traceID)
		c.Writer.Header().Set(pkg.HeaderTraceId, traceID)
		c.Next()
	}
}
