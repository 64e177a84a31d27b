package http

import (
	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc advisor.UseCase
}

// New creates a new HTTP handler for the advisor domain.
func New(l log.Logger, uc advisor.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
