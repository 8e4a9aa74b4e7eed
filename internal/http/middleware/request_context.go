package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/solemate/solemate-backend/internal/pkg/ctxutil"
)

const headerRequestID = "X-Request-Id"

// AttachRequestContext assigns every request an id (honoring a
// client-provided one) and echoes it back in the response headers.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := strings.TrimSpace(c.GetHeader(headerRequestID))
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx := ctxutil.WithTraceData(c.Request.Context(), &ctxutil.TraceData{
			RequestID: reqID,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", reqID)
		c.Writer.Header().Set(headerRequestID, reqID)
		c.Next()
	}
}
