package http

import (
	"github.com/spu-coder/my-ai-advisor/internal/document"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc document.UseCase
}

// New creates a new HTTP handler for the document domain.
func New(l log.Logger, uc document.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
