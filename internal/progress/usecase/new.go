package usecase

import (
	"github.com/spu-coder/my-ai-advisor/internal/progress"
	"github.com/spu-coder/my-ai-advisor/internal/progress/repository"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ progress.UseCase = (*implUseCase)(nil)

// New creates a new progress UseCase.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
