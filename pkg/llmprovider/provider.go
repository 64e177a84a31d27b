package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for text-generation backends.
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "ollama", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a normalized single-shot generation request.
// Zero sampling values mean "provider default".
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	TopP              float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part is one text fragment of a message.
type Part struct {
	Text string
}

// Response represents a normalized generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// NewUserRequest builds a request holding a single user prompt.
func NewUserRequest(prompt string) *Request {
	return &Request{
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: prompt}}},
		},
	}
}

// Text concatenates the text parts of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return joinParts(r.Content.Parts)
}

// promptText flattens a request into one prompt string for completion-style backends.
func promptText(req *Request) string {
	texts := make([]string, 0, len(req.Messages))
	for _, msg := range req.Messages {
		texts = append(texts, joinParts(msg.Parts))
	}
	return strings.Join(texts, "\n\n")
}

func systemText(req *Request) string {
	if req.SystemInstruction == nil {
		return ""
	}
	return joinParts(req.SystemInstruction.Parts)
}
