package ollama

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds Ollama client configuration.
type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Validate fills defaults and checks the configuration.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("ollama: invalid base URL %q", c.BaseURL)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	System  string   `json:"system,omitempty"`
	Stream  bool     `json:"stream"`
	Options *Options `json:"options,omitempty"`
}

// Options are the sampling parameters understood by Ollama.
type Options struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// GenerateResponse is the non-streaming response of /api/generate.
// Response is a pointer so a missing field can be told apart from "".
type GenerateResponse struct {
	Model           string  `json:"model"`
	Response        *string `json:"response"`
	Done            bool    `json:"done"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
	TotalDuration   int64   `json:"total_duration"`
}
