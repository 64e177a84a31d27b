package http

import (
	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// Ingest godoc
// @Summary     Ingest official documents
// @Description Chunks, embeds and stores the given documents in the vector store.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body ingestReq true "Documents"
// @Success     200  {object} ingestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden"
// @Failure     503  {object} response.Resp "Vector store not configured"
// @Router      /api/v1/documents/ingest [POST]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, ingestResp{Documents: out.Documents, Chunks: out.Chunks})
}

// Sync godoc
// @Summary     Sync documents from Google Drive
// @Description Ingests every readable file of the configured Drive folder.
// @Tags        Documents
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} syncResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     503 {object} response.Resp "Drive or vector store not configured"
// @Router      /api/v1/documents/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.SyncDrive(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncDrive: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSyncResp(out))
}
