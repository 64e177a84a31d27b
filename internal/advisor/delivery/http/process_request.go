package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the body and sanitizes the question in place.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	req.Question = sanitizeQuestion(req.Question)
	if req.Question == "" {
		return req, errEmptyAfterSanitize
	}
	return req, nil
}
