package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicAdapter adapts the Anthropic Messages API to Provider.
type AnthropicAdapter struct {
	client *anthropic.Client
	model  string
}

// AnthropicConfig configures an AnthropicAdapter.
type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewAnthropicAdapter creates a new Anthropic adapter with SDK retries disabled.
func NewAnthropicAdapter(cfg AnthropicConfig) (*AnthropicAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("anthropic: model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := anthropic.NewClient(opts...)
	return &AnthropicAdapter{client: &client, model: cfg.Model}, nil
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(maxTokens),
		Messages:  convertToAnthropicMessages(req.Messages),
	}
	if system := systemText(req); system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.TopP > 0 {
		params.TopP = anthropic.Float(req.TopP)
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classifyTransportError(ProviderAnthropic, err)
	}

	var parts []Part
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok && b.Text != "" {
			parts = append(parts, Part{Text: b.Text})
		}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: ProviderAnthropic,
		ModelName:    string(msg.Model),
		Usage: &Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}, nil
}

// Name returns the provider name
func (a *AnthropicAdapter) Name() string {
	return ProviderAnthropic
}

// Model returns the model name
func (a *AnthropicAdapter) Model() string {
	return a.model
}

func convertToAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	result := make([]anthropic.MessageParam, 0, len(msgs))
	for _, msg := range msgs {
		block := anthropic.NewTextBlock(joinParts(msg.Parts))
		if msg.Role == RoleAssistant {
			result = append(result, anthropic.NewAssistantMessage(block))
			continue
		}
		result = append(result, anthropic.NewUserMessage(block))
	}
	return result
}
