package http

import (
	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/middleware"
)

// RegisterRoutes maps /graph routes. Any user may read, only admins write.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	skills := rg.Group("/skills")
	{
		skills.GET("/:course_code", mw.Auth(), h.GetSkills)
		skills.PUT("/:course_code", mw.Auth(), mw.RequireAdmin(), h.SetSkills)
	}
}
