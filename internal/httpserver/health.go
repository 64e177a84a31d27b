package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "My AI Advisor API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "my-ai-advisor"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports ready once the relational store answers a ping.
// @Summary Readiness Check
// @Description Check if the API and its database are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.db != nil {
		if err := srv.db.PingContext(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "readyCheck: database ping: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "database unavailable",
				Data:      healthBody("not_ready"),
			})
			return
		}
	}
	response.OK(c, healthBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
