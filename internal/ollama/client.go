package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nao1215/docaudit/internal/config"
)

// Generation options. Low temperature keeps rewrites consistent; the predict
// cap keeps single-paragraph responses from rambling.
const (
	temperature = 0.3
	numPredict  = 150
)

// StatusError is a non-200 answer from the backend. Callers branch on the
// code: a client error means the backend cannot serve this model at all,
// except 429, which means back off for this request only.
type StatusError struct {
	// StatusCode is the HTTP status returned.
	StatusCode int

	// Body is the response body, kept for logging.
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("ollama: unexpected status %d", e.StatusCode)
}

// Client is a minimal Ollama API client covering the two endpoints the
// assistive shim needs: model listing and non-streaming generation.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client for the configured backend address and model.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.OllamaURL,
		model:      cfg.OllamaModel,
		httpClient: &http.Client{Timeout: cfg.GenerateTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// taggedModel is one entry of the model listing.
type taggedModel struct {
	Name string `json:"name"`
}

// tagsResponse is the GET /api/tags payload.
type tagsResponse struct {
	Models []taggedModel `json:"models"`
}

// ListModels returns the names of the models the backend has available.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("ollama: build tags request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama: list models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("ollama: decode tags response: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// generateOptions are the model sampling options sent with each request.
type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

// generateRequest is the POST /api/generate payload.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

// generateResponse is the non-streaming generation answer.
type generateResponse struct {
	Response string `json:"response"`
}

// Generate runs one non-streaming generation request and returns the raw
// response text. Non-200 statuses come back as *StatusError.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: temperature,
			NumPredict:  numPredict,
		},
	})
	if err != nil {
		return "", fmt.Errorf("ollama: marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("ollama: build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", fmt.Errorf("ollama: decode generate response: %w", err)
	}
	return gen.Response, nil
}
