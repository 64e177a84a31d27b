package http

import (
	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	"github.com/spu-coder/my-ai-advisor/internal/middleware"
	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// Chat godoc
// @Summary     Ask the academic advisor
// @Description Routes the question to documents, progress analysis, the skills graph or general chat and returns one answer.
// @Description Demo tokens are answered without personal data and get a demo_warning.
// @Tags        Advisor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body chatReq true "Question"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     403  {object} response.Resp "Forbidden - user_id does not match the token"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if req.UserID != sc.UserID {
		h.l.Warnf(ctx, "advisor.delivery.http.Chat: %s asked for %s", sc.UserID, req.UserID)
		response.Error(c, h.mapError(advisor.ErrForeignUser), nil)
		return
	}

	out := h.uc.Ask(ctx, req.toInput(sc))
	response.OK(c, h.newChatResp(out, sc.IsDemo))
}
