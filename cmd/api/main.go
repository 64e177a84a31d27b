package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spu-coder/my-ai-advisor/config"
	_ "github.com/spu-coder/my-ai-advisor/docs" // Swagger docs
	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	advisorUC "github.com/spu-coder/my-ai-advisor/internal/advisor/usecase"
	"github.com/spu-coder/my-ai-advisor/internal/bridge"
	"github.com/spu-coder/my-ai-advisor/internal/generation"
	graphRepo "github.com/spu-coder/my-ai-advisor/internal/graph/repository/sqlite"
	graphUC "github.com/spu-coder/my-ai-advisor/internal/graph/usecase"
	"github.com/spu-coder/my-ai-advisor/internal/httpserver"
	"github.com/spu-coder/my-ai-advisor/internal/middleware"
	progressRepo "github.com/spu-coder/my-ai-advisor/internal/progress/repository/sqlite"
	progressUC "github.com/spu-coder/my-ai-advisor/internal/progress/usecase"
	"github.com/spu-coder/my-ai-advisor/internal/router"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
	"github.com/spu-coder/my-ai-advisor/pkg/scope"
	"github.com/spu-coder/my-ai-advisor/pkg/sqlite"
)

// @title                      My AI Advisor API
// @description                Academic advisor: question routing over official documents, student progress and the course skills graph.
// @version                    1
// @host                       localhost:8000
// @schemes                    http
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the JWT.
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting My AI Advisor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite: ", err)
		return
	}
	defer db.Close()

	migrations := append(append([]string{}, progressRepo.Migrations...), graphRepo.Migrations...)
	if err := sqlite.Migrate(ctx, db, migrations...); err != nil {
		logger.Error(ctx, "Failed to migrate SQLite: ", err)
		return
	}
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	llm, err := newLLMManager(cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "LLM provider: %s (%s)", llm.Name(), llm.Model())

	// 4. Domains
	progressUseCase := progressUC.New(progressRepo.New(db, logger), logger)
	graphUseCase := graphUC.New(graphRepo.New(db, logger), logger)
	documentUseCase := newDocumentUseCase(ctx, cfg, logger)

	gateway := generation.New(llm, generation.Config{Timeout: cfg.Advisor.GenerationTimeout}, logger)
	pool, err := bridge.New(cfg.Advisor.MaxConcurrent)
	if err != nil {
		logger.Error(ctx, "Failed to create worker pool: ", err)
		return
	}

	advisorUseCase := advisorUC.New(gateway, router.New(gateway, logger), pool, advisor.Collaborators{
		Documents: documentUseCase,
		Progress:  progressUseCase,
		Graph:     graphUseCase,
	}, logger)

	// 5. Auth & request guards
	jwtManager, err := scope.New(scope.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	mw := middleware.New(logger, jwtManager, cfg.Security)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		DB:             db,
		TrustedProxies: cfg.Security.TrustedProxies,
		AdvisorUC:      advisorUseCase,
		ProgressUC:     progressUseCase,
		GraphUC:        graphUseCase,
		DocumentUC:     documentUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
