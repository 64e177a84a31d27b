package http

import (
	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/middleware"
	"github.com/spu-coder/my-ai-advisor/internal/model"
	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// Analyze godoc
// @Summary     Analyze academic progress
// @Description Returns GPA, completed hours, remaining and registerable courses of the caller.
// @Tags        Progress
// @Produce     json
// @Security    BearerAuth
// @Param       user_id path string true "Student ID, must match the token"
// @Success     200 {object} analyzeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Student not found"
// @Router      /api/v1/progress/analyze/{user_id} [GET]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	userID := c.Param("user_id")
	if err := checkAnalyzeAccess(sc, userID); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	report, err := h.uc.Analyze(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAnalyzeResp(report))
}

// Record godoc
// @Summary     Record a completed course
// @Tags        Progress
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body recordReq true "Completed course"
// @Success     200  {object} recordResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden"
// @Router      /api/v1/progress/record [POST]
func (h *handler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRecordReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if req.UserID != sc.UserID {
		response.Error(c, h.mapError(errRecordForeignUser), nil)
		return
	}

	rec, err := h.uc.RecordProgress(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RecordProgress: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRecordResp(rec))
}

// SimulateGPA godoc
// @Summary     Simulate GPA
// @Description Projects the cumulative GPA after the given courses and expected grades.
// @Tags        Progress
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body simulateReq true "Simulation input"
// @Success     200  {object} simulateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/progress/simulate-gpa [POST]
func (h *handler) SimulateGPA(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSimulateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SimulateGPA(req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SimulateGPA: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSimulateResp(out))
}

func checkAnalyzeAccess(sc model.Scope, userID string) error {
	switch {
	case sc.IsDemo:
		return errDemoAnalyze
	case userID != sc.UserID:
		return errAnalyzeForeignUser
	case sc.Role != model.RoleStudent:
		return errStudentsOnly
	}
	return nil
}
