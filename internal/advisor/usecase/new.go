package usecase

import (
	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	"github.com/spu-coder/my-ai-advisor/internal/bridge"
	"github.com/spu-coder/my-ai-advisor/internal/generation"
	"github.com/spu-coder/my-ai-advisor/internal/router"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

// implUseCase is the private implementation of advisor.UseCase.
type implUseCase struct {
	gateway generation.Gateway
	router  router.Router
	pool    *bridge.Pool
	collab  advisor.Collaborators
	l       log.Logger
}

var _ advisor.UseCase = (*implUseCase)(nil)

// New creates a new advisor UseCase. collab is what Ask hands to each
// question; HandleQuestion callers pass their own.
func New(gateway generation.Gateway, r router.Router, pool *bridge.Pool, collab advisor.Collaborators, l log.Logger) *implUseCase {
	return &implUseCase{
		gateway: gateway,
		router:  r,
		pool:    pool,
		collab:  collab,
		l:       l,
	}
}
