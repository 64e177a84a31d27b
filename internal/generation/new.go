package generation

import (
	"context"
	"time"

	"github.com/spu-coder/my-ai-advisor/pkg/llmprovider"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

// Gateway is the single point of contact with the text-generation service.
// Generate never fails: every error becomes a user-facing message.
type Gateway interface {
	Generate(ctx context.Context, prompt string) string
}

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Model() string
}

type Config struct {
	Timeout time.Duration
}

type implGateway struct {
	gen     Generator
	timeout time.Duration
	l       log.Logger
}

var _ Gateway = (*implGateway)(nil)

// New creates a Gateway over gen. A zero timeout uses DefaultTimeout.
func New(gen Generator, cfg Config, l log.Logger) *implGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &implGateway{
		gen:     gen,
		timeout: cfg.Timeout,
		l:       l,
	}
}
