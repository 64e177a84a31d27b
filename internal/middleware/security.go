package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spu-coder/my-ai-advisor/pkg/log"
	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// SecurityHeaders sets the hardening headers on every response.
func (m Middleware) SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range securityHeaders {
			c.Header(k, v)
		}
		c.Next()
	}
}

// RequestSize rejects declared bodies above the limit and caps the rest.
func (m Middleware) RequestSize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.maxBodyBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > m.maxBodyBytes {
			response.Abort(c, http.StatusRequestEntityTooLarge, guardResp{Detail: MsgTooLarge, ErrorAr: MsgTooLargeAr})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxBodyBytes)
		}
		c.Next()
	}
}

// RequestID propagates or creates X-Request-ID and puts it in the request
// context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
