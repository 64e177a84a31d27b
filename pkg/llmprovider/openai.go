package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIAdapter talks to any OpenAI-compatible chat completions endpoint
// (OpenAI, DeepSeek, Qwen compatible mode, Ollama's /v1).
type OpenAIAdapter struct {
	client *openai.Client
	name   string
	model  string
}

// OpenAIConfig configures an OpenAIAdapter.
type OpenAIConfig struct {
	Name    string
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter. SDK retries are
// disabled; retry policy belongs to Manager.
func NewOpenAIAdapter(cfg OpenAIConfig) (*OpenAIAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%s: model is required", cfg.Name)
	}
	if cfg.Name == "" {
		cfg.Name = ProviderOpenAI
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

	client := openai.NewClient(opts...)
	return &OpenAIAdapter{client: &client, name: cfg.Name, model: cfg.Model}, nil
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Messages: convertToOpenAIMessages(req),
		Model:    a.model,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.TopP > 0 {
		params.TopP = openai.Float(req.TopP)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classifyTransportError(a.name, err)
	}

	var parts []Part
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		parts = []Part{{Text: resp.Choices[0].Message.Content}}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func convertToOpenAIMessages(req *Request) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if system := systemText(req); system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	for _, msg := range req.Messages {
		text := joinParts(msg.Parts)
		switch msg.Role {
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(text))
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(text))
		default:
			messages = append(messages, openai.UserMessage(text))
		}
	}
	return messages
}
