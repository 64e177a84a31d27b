package llmprovider

import (
	"context"
	"errors"
	"strings"

	"github.com/spu-coder/my-ai-advisor/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface. A response without the
// "response" field yields an empty Parts slice.
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ollamaReq := &ollama.GenerateRequest{
		Model:  a.client.Model(),
		Prompt: promptText(req),
		System: systemText(req),
		Options: &ollama.Options{
			Temperature: req.Temperature,
			TopP:        req.TopP,
			NumPredict:  req.MaxTokens,
		},
	}

	resp, err := a.client.Generate(ctx, ollamaReq)
	if err != nil {
		return nil, wrapOllamaError(err)
	}

	var parts []Part
	if resp.Response != nil {
		parts = []Part{{Text: *resp.Response}}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: ProviderOllama,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return ProviderOllama
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

func wrapOllamaError(err error) error {
	pe := &ProviderError{Provider: ProviderOllama, Err: err}
	switch {
	case errors.Is(err, ollama.ErrTimeout):
		pe.Kind = ErrProviderTimeout
	case errors.Is(err, ollama.ErrConnection):
		pe.Kind = ErrProviderUnavailable
	}
	return pe
}

func joinParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "")
}
