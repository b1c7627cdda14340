package middleware

import (
	"employee-api/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID memakai id dari caller bila ada, kalau tidak generate UUID baru.
// Id disimpan di gin context dan di standard context, lalu di-echo di header
// response supaya bisa dikorelasikan dari sisi klien.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(
			contextutil.WithRequestID(c.Request.Context(), rid),
		)
		c.Header(requestIDHeader, rid)

		c.Next()
	}
}
