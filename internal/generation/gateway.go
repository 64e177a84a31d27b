package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spu-coder/my-ai-advisor/pkg/llmprovider"
)

// Generate sends one prompt and returns the trimmed answer or a canned message.
func (g *implGateway) Generate(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := llmprovider.NewUserRequest(prompt)
	req.Temperature = Temperature
	req.TopP = TopP
	req.MaxTokens = MaxTokens

	resp, err := g.gen.GenerateContent(ctx, req)
	if err != nil {
		g.l.Warnf(ctx, "%s: %v", LogPrefixGenerate, err)
		return g.failureMessage(ctx, err)
	}

	if len(resp.Content.Parts) == 0 {
		return MsgEmptyAnswer
	}
	return strings.TrimSpace(resp.Text())
}

func (g *implGateway) failureMessage(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, llmprovider.ErrProviderTimeout),
		ctx.Err() == context.DeadlineExceeded:
		return MsgTimeout
	case errors.Is(err, llmprovider.ErrProviderUnavailable):
		return fmt.Sprintf(MsgConnectionError, rootCause(err), g.gen.Model())
	default:
		return fmt.Sprintf(MsgUnexpectedError, rootCause(err))
	}
}

// rootCause strips the manager and provider wrapping so users see the
// transport error itself.
func rootCause(err error) error {
	var pe *llmprovider.ProviderError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err
	}
	return err
}
