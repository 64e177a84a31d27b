package usecase

import (
	"github.com/spu-coder/my-ai-advisor/internal/graph"
	"github.com/spu-coder/my-ai-advisor/internal/graph/repository"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ graph.UseCase = (*implUseCase)(nil)

// New creates a new graph UseCase.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
