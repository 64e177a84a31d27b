package usecase

import (
	"context"

	"github.com/spu-coder/my-ai-advisor/internal/document"
	"github.com/spu-coder/my-ai-advisor/internal/document/repository"
	"github.com/spu-coder/my-ai-advisor/pkg/gdrive"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
	"github.com/spu-coder/my-ai-advisor/pkg/voyage"
)

// DriveSource lists and reads the files of a Drive folder. *gdrive.Client
// satisfies it.
type DriveSource interface {
	ListTextFiles(ctx context.Context, folderID string) ([]gdrive.File, error)
	ReadText(ctx context.Context, f gdrive.File) (string, error)
}

type Config struct {
	TopK          int
	MinScore      float64
	DriveFolderID string
}

type implUseCase struct {
	repo     repository.Repository
	embedder voyage.IVoyage
	drive    DriveSource
	cfg      Config
	l        log.Logger
}

var _ document.UseCase = (*implUseCase)(nil)

// New creates a new document UseCase. repo and embedder may be nil when the
// vector store is not configured; Retrieve then finds nothing. drive may be
// nil when no Drive folder is configured.
func New(repo repository.Repository, embedder voyage.IVoyage, drive DriveSource, cfg Config, l log.Logger) *implUseCase {
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	return &implUseCase{
		repo:     repo,
		embedder: embedder,
		drive:    drive,
		cfg:      cfg,
		l:        l,
	}
}

func (uc *implUseCase) configured() bool {
	return uc.repo != nil && uc.embedder != nil
}
