package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// OllamaClient talks to a local Ollama instance through its OpenAI-compatible
// endpoint. Ollama requires an api key header but ignores its value.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// OllamaConfig mirrors config.OllamaConfig without importing pkg/config,
// keeping the client usable standalone.
type OllamaConfig struct {
	BaseURL string
	Model   string
}

// NewOllamaClient creates an Ollama client. Pass a nil config to fall back to
// environment variables.
func NewOllamaClient(cfg *OllamaConfig) *OllamaClient {
	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("OLLAMA_BASE_URL")
		if base == "" {
			base = "http://localhost:11434/v1"
		}
	}

	model := "mistral"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	return &OllamaClient{
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name identifies the client in logs and error details
func (o *OllamaClient) Name() string {
	return "ollama"
}

// ChatCompletion sends the request to Ollama and returns the assistant content
func (o *OllamaClient) ChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	if req.Model == "" {
		req.Model = o.model
	}

	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	endpoint := o.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer ollama")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from ollama")
	}
	return cr.Choices[0].Message.Content, nil
}
