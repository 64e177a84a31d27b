package http

import (
	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/middleware"
)

// RegisterRoutes maps /documents routes. Admins only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth(), mw.RequireAdmin())
	rg.POST("/ingest", h.Ingest)
	rg.POST("/sync", h.Sync)
}
