package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	advisorHTTP "github.com/spu-coder/my-ai-advisor/internal/advisor/delivery/http"
	documentHTTP "github.com/spu-coder/my-ai-advisor/internal/document/delivery/http"
	graphHTTP "github.com/spu-coder/my-ai-advisor/internal/graph/delivery/http"
	progressHTTP "github.com/spu-coder/my-ai-advisor/internal/progress/delivery/http"
)

// Adding a domain:
//  1. Build its use case in cmd/api and pass it through Config.
//  2. Create the HTTP handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register routes:        mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)

// setupAdvisorDomain registers POST /api/v1/chat.
func (srv HTTPServer) setupAdvisorDomain(ctx context.Context, api *gin.RouterGroup) {
	h := advisorHTTP.New(srv.l, srv.advisorUC)
	advisorHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Advisor domain registered")
}

func (srv HTTPServer) setupProgressDomain(ctx context.Context, api *gin.RouterGroup) {
	h := progressHTTP.New(srv.l, srv.progressUC)
	progressHTTP.RegisterRoutes(api.Group("/progress"), h, srv.mw)
	srv.l.Infof(ctx, "Progress domain registered")
}

func (srv HTTPServer) setupGraphDomain(ctx context.Context, api *gin.RouterGroup) {
	h := graphHTTP.New(srv.l, srv.graphUC)
	graphHTTP.RegisterRoutes(api.Group("/graph"), h, srv.mw)
	srv.l.Infof(ctx, "Graph domain registered")
}

func (srv HTTPServer) setupDocumentDomain(ctx context.Context, api *gin.RouterGroup) {
	h := documentHTTP.New(srv.l, srv.documentUC)
	documentHTTP.RegisterRoutes(api.Group("/documents"), h, srv.mw)
	srv.l.Infof(ctx, "Document domain registered")
}
