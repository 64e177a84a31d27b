package router

import (
	"context"

	"github.com/spu-coder/my-ai-advisor/internal/generation"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

// Router maps a question to an Intent. Classify never fails.
type Router interface {
	Classify(ctx context.Context, question string) Intent
}

// SemanticRouter classifies questions with one generation call.
type SemanticRouter struct {
	gateway generation.Gateway
	l       log.Logger
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(gateway generation.Gateway, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		gateway: gateway,
		l:       l,
	}
}
