package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSetSkillsReq(c *gin.Context) (setSkillsReq, error) {
	var req setSkillsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CourseCode = c.Param("course_code")
	return req, nil
}
