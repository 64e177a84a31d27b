package http

import (
	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. Every caller must be authenticated.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), h.Chat)
}
