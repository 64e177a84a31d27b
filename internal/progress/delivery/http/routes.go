package http

import (
	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/middleware"
)

// RegisterRoutes maps /progress routes. All of them require a token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())
	rg.GET("/analyze/:user_id", h.Analyze)
	rg.POST("/record", h.Record)
	rg.POST("/simulate-gpa", h.SimulateGPA)
}
