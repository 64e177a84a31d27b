package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processIngestReq(c *gin.Context) (ingestReq, error) {
	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
