package voyage

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey = errors.New("voyage: API key is required")
	ErrNoInput       = errors.New("voyage: at least one text is required")
)

// Config configures the Voyage client.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

type voyageImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// EmbedRequest is the request body for the embeddings API.
type EmbedRequest struct {
	Input     []string  `json:"input"`
	Model     string    `json:"model"`
	InputType InputType `json:"input_type,omitempty"`
}

// EmbedResponse is the response from the embeddings API.
type EmbedResponse struct {
	Object string          `json:"object"`
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  UsageInfo       `json:"usage"`
}

// EmbeddingData contains a single embedding vector.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"` // position in the input array
}

// UsageInfo contains token usage statistics.
type UsageInfo struct {
	TotalTokens int `json:"total_tokens"`
}

// ErrorResponse is the error body returned by the Voyage API.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Error  struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// APIError is a non-200 answer from Voyage.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("voyage API error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("voyage API error (%d): %s", e.StatusCode, e.Message)
}
