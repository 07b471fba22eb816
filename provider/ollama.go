package provider

import (
	"context"
	"fmt"

	"github.com/ollama/ollama/api"

	"qq/model"
	"qq/ollama"
)

// OllamaProvider wraps the ollama.Client to implement model.Provider for
// local models. No API key is involved.
type OllamaProvider struct {
	client *ollama.Client
}

// NewOllamaProvider creates a new Ollama provider instance.
func NewOllamaProvider(baseURL, modelName string) (*OllamaProvider, error) {
	client, err := ollama.NewClient(baseURL, modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	return &OllamaProvider{
		client: client,
	}, nil
}

// Chat implements model.Provider.Chat by converting messages and
// delegating to the wrapped client.
func (p *OllamaProvider) Chat(ctx context.Context, conv model.Conversation, opts model.Options, callback model.StreamCallback) error {
	apiMessages := make([]api.Message, 0, len(conv))
	for _, msg := range conv {
		apiMessages = append(apiMessages, api.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return p.client.Chat(ctx, apiMessages, opts.Temperature, opts.Stream, func(chunk string) error {
		if callback != nil {
			return callback(chunk)
		}
		return nil
	})
}

// GetModel implements model.Provider.GetModel.
func (p *OllamaProvider) GetModel() string {
	return p.client.GetModel()
}

// Ping implements model.Provider.Ping.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}
