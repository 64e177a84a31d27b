package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spu-coder/my-ai-advisor/config"
	"github.com/spu-coder/my-ai-advisor/internal/document"
	"github.com/spu-coder/my-ai-advisor/internal/document/repository"
	documentRepo "github.com/spu-coder/my-ai-advisor/internal/document/repository/qdrant"
	documentUC "github.com/spu-coder/my-ai-advisor/internal/document/usecase"
	"github.com/spu-coder/my-ai-advisor/pkg/gdrive"
	"github.com/spu-coder/my-ai-advisor/pkg/llmprovider"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
	"github.com/spu-coder/my-ai-advisor/pkg/qdrant"
	"github.com/spu-coder/my-ai-advisor/pkg/voyage"
)

func newLLMManager(cfg config.LLMConfig, logger log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(&cfg)
	if err != nil {
		return nil, err
	}

	retryDelay, err := parseOptionalDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	maxTotal, err := parseOptionalDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger), nil
}

func parseOptionalDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

// newDocumentUseCase wires the optional vector store, embeddings and Drive
// source. Missing pieces are logged and left nil.
func newDocumentUseCase(ctx context.Context, cfg *config.Config, logger log.Logger) document.UseCase {
	var repo repository.Repository
	if cfg.Qdrant.URL != "" {
		client := qdrant.NewClient(cfg.Qdrant.URL)
		if cfg.Qdrant.APIKey != "" {
			client = client.WithAPIKey(cfg.Qdrant.APIKey)
		}
		repo = documentRepo.New(client, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
		logger.Infof(ctx, "Qdrant collection %q at %s", cfg.Qdrant.CollectionName, cfg.Qdrant.URL)
	} else {
		logger.Warn(ctx, "Qdrant not configured (optional): document retrieval disabled")
	}

	var embedder voyage.IVoyage
	if cfg.Voyage.APIKey != "" {
		client, err := voyage.New(voyage.Config{APIKey: cfg.Voyage.APIKey, Model: cfg.Voyage.Model})
		if err != nil {
			logger.Warnf(ctx, "Voyage not available (optional): %v", err)
		} else {
			embedder = client
		}
	} else {
		logger.Warn(ctx, "Voyage API key missing (optional): document retrieval disabled")
	}

	var drive documentUC.DriveSource
	if cfg.GoogleDrive.CredentialsPath != "" {
		client, err := gdrive.NewClientFromCredentialsFile(ctx, cfg.GoogleDrive.CredentialsPath, "")
		if err != nil {
			logger.Warnf(ctx, "Google Drive not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gdrive-auth/main.go` to generate token.json")
		} else {
			drive = client
			logger.Info(ctx, "Google Drive document source initialized")
		}
	}

	return documentUC.New(repo, embedder, drive, documentUC.Config{
		TopK:          cfg.Qdrant.TopK,
		MinScore:      cfg.Qdrant.MinScore,
		DriveFolderID: cfg.GoogleDrive.FolderID,
	}, logger)
}
