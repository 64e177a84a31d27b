package ollama

import "time"

const (
	// DefaultModel is the model pulled on the advisor host.
	DefaultModel = "llama3:8b"

	// DefaultBaseURL is the local Ollama daemon.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeout bounds a single generation call.
	DefaultTimeout = 180 * time.Second

	generatePath = "/api/generate"
)
