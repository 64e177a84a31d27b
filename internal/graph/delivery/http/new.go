package http

import (
	"github.com/spu-coder/my-ai-advisor/internal/graph"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc graph.UseCase
}

// New creates a new HTTP handler for the graph domain.
func New(l log.Logger, uc graph.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
