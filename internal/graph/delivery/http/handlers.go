package http

import (
	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// GetSkills godoc
// @Summary     Skills taught by a course
// @Tags        Graph
// @Produce     json
// @Security    BearerAuth
// @Param       course_code path string true "Course code"
// @Success     200 {object} skillsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/graph/skills/{course_code} [GET]
func (h *handler) GetSkills(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Param("course_code")

	skills, err := h.uc.SkillsForCourse(ctx, code)
	if err != nil {
		h.l.Errorf(ctx, "uc.SkillsForCourse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSkillsResp(code, skills))
}

// SetSkills godoc
// @Summary     Replace the skills of a course
// @Tags        Graph
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       course_code path string   true "Course code"
// @Param       body        body setSkillsReq true "Skills in order"
// @Success     200 {object} skillsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/graph/skills/{course_code} [PUT]
func (h *handler) SetSkills(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetSkillsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetSkills(ctx, req.CourseCode, req.Skills); err != nil {
		h.l.Errorf(ctx, "uc.SetSkills: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	skills, err := h.uc.SkillsForCourse(ctx, req.CourseCode)
	if err != nil {
		h.l.Errorf(ctx, "uc.SkillsForCourse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSkillsResp(req.CourseCode, skills))
}
