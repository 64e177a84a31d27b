package ollama

import "context"

// IOllama is the Ollama generate API client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate runs one non-streaming completion.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Model returns the default model.
	Model() string
}

// New creates a new Ollama client with the given configuration.
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
