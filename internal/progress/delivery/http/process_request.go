package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processRecordReq(c *gin.Context) (recordReq, error) {
	var req recordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSimulateReq(c *gin.Context) (simulateReq, error) {
	var req simulateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
