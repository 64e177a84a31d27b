package httpserver

import (
	"context"

	"github.com/spu-coder/my-ai-advisor/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(
		srv.mw.RequestID(),
		srv.mw.SecurityHeaders(),
		srv.mw.RateLimit(),
		srv.mw.RequestSize(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Request guards enabled (production)")
	} else {
		srv.l.Infof(ctx, "Request guards enabled (%s)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	srv.setupAdvisorDomain(ctx, api)

	if srv.progressUC != nil {
		srv.setupProgressDomain(ctx, api)
	} else {
		srv.l.Warnf(ctx, "Progress use case not configured, skipping /api/v1/progress routes")
	}

	if srv.graphUC != nil {
		srv.setupGraphDomain(ctx, api)
	} else {
		srv.l.Warnf(ctx, "Graph use case not configured, skipping /api/v1/graph routes")
	}

	if srv.documentUC != nil {
		srv.setupDocumentDomain(ctx, api)
	} else {
		srv.l.Warnf(ctx, "Document use case not configured, skipping /api/v1/documents routes")
	}

	return nil
}
