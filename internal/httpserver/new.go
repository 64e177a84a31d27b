package httpserver

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	"github.com/spu-coder/my-ai-advisor/internal/document"
	"github.com/spu-coder/my-ai-advisor/internal/graph"
	"github.com/spu-coder/my-ai-advisor/internal/middleware"
	"github.com/spu-coder/my-ai-advisor/internal/progress"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	db          *sql.DB

	// Domains
	advisorUC  advisor.UseCase
	progressUC progress.UseCase
	graphUC    graph.UseCase
	documentUC document.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	// DB backs the readiness check. Optional.
	DB          *sql.DB

	// TrustedProxies may set the client address headers. Empty trusts none.
	TrustedProxies []string

	// Domains. A nil use case leaves its routes unregistered.
	AdvisorUC  advisor.UseCase
	ProgressUC progress.UseCase
	GraphUC    graph.UseCase
	DocumentUC document.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		db:          cfg.DB,
		advisorUC:   cfg.AdvisorUC,
		progressUC:  cfg.ProgressUC,
		graphUC:     cfg.GraphUC,
		documentUC:  cfg.DocumentUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.advisorUC == nil {
		return errors.New("advisor use case is required")
	}
	return nil
}
