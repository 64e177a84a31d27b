package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends one non-streaming generate request.
func (o *ollamaImpl) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	body := *req
	if body.Model == "" {
		body.Model = o.model
	}
	body.Stream = false

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeOther, Message: "failed to marshal request", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+generatePath, bytes.NewBuffer(payload))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeOther, Message: "failed to create request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ClientError{
			Type:    ErrTypeOther,
			Message: "unexpected response",
			Cause:   &APIError{StatusCode: resp.StatusCode, Body: string(raw)},
		}
	}

	var out GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if ctx.Err() != nil {
			return nil, classifyTransportError(ctx.Err())
		}
		return nil, &ClientError{Type: ErrTypeOther, Message: "failed to decode response", Cause: err}
	}

	return &out, nil
}

// Model returns the default model.
func (o *ollamaImpl) Model() string {
	return o.model
}
