package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/model"
	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// Auth requires a valid bearer token and stores the caller's scope in both
// the gin context and the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader(HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{
			UserID: claims.Subject,
			Role:   model.Role(claims.Role),
			IsDemo: claims.IsDemo,
		}
		c.Set(ScopeKey, sc)
		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func (m Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if !sc.IsAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetScope returns the caller stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(ScopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
