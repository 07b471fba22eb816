// Package ollama wraps the Ollama API client behind the small surface qq
// needs: streaming chat with sampling options and a reachability check.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
)

type Client struct {
	client  *api.Client
	model   string
	baseURL string
}

// StreamCallback receives each content chunk of a streamed response.
type StreamCallback func(chunk string) error

func NewClient(baseURL, model string) (*Client, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.1:latest"
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	client := api.NewClient(parsedURL, http.DefaultClient)

	return &Client{
		client:  client,
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Chat sends a chat request. With stream set, the callback fires per
// chunk; otherwise Ollama delivers the full message in one response.
func (c *Client) Chat(ctx context.Context, messages []api.Message, temperature float64, stream bool, callback StreamCallback) error {
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": temperature,
		},
	}

	respFunc := func(resp api.ChatResponse) error {
		if callback != nil && resp.Message.Content != "" {
			return callback(resp.Message.Content)
		}
		return nil
	}

	return c.client.Chat(ctx, req, respFunc)
}

func (c *Client) GetModel() string {
	return c.model
}

func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.client.List(ctx)
	return err
}
