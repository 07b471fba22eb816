package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"qq/model"
)

// maxTokens bounds every Anthropic request; the API requires it.
const anthropicMaxTokens = 4096

// AnthropicProvider implements model.Provider using the official
// Anthropic Go SDK.
type AnthropicProvider struct {
	client  *anthropic.Client
	model   anthropic.Model
	baseURL string
	apiKey  string
}

// NewAnthropicProvider creates a new Anthropic provider instance.
// Returns an error if the API key is missing.
func NewAnthropicProvider(baseURL, apiKey, modelName string) (*AnthropicProvider, error) {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}

	var anthropicModel anthropic.Model
	if modelName == "" {
		anthropicModel = anthropic.ModelClaudeSonnet4_5_20250929
	} else {
		anthropicModel = anthropic.Model(modelName)
	}

	client := anthropic.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client:  &client,
		model:   anthropicModel,
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

// Chat implements model.Provider.Chat.
func (p *AnthropicProvider) Chat(ctx context.Context, conv model.Conversation, opts model.Options, callback model.StreamCallback) error {
	anthropicMessages, systemBlocks := convertToAnthropicMessages(conv)

	params := anthropic.MessageNewParams{
		Model:       p.model,
		Messages:    anthropicMessages,
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(opts.Temperature),
	}
	if len(systemBlocks) > 0 {
		params.System = systemBlocks
	}

	if !opts.Stream {
		msg, err := p.client.Messages.New(ctx, params)
		if err != nil {
			return fmt.Errorf("Anthropic request failed: %w", err)
		}
		return emitAnthropicText(msg.Content, callback)
	}

	stream := p.client.Messages.NewStreaming(ctx, params)

	for stream.Next() {
		event := stream.Current()

		switch eventVariant := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch deltaVariant := eventVariant.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				if callback != nil {
					if err := callback(deltaVariant.Text); err != nil {
						return err
					}
				}
			}
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("Anthropic streaming error: %w", err)
	}

	return nil
}

// GetModel implements model.Provider.GetModel.
func (p *AnthropicProvider) GetModel() string {
	return string(p.model)
}

// Ping implements model.Provider.Ping by making a minimal request;
// Anthropic has no dedicated health endpoint.
func (p *AnthropicProvider) Ping(ctx context.Context) error {
	_, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: 1,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("ping")),
		},
	})

	if err != nil {
		return fmt.Errorf("Anthropic ping failed: %w", err)
	}
	return nil
}

// convertToAnthropicMessages converts qq messages to Anthropic format.
// System turns go to the separate system parameter, not the messages
// array.
func convertToAnthropicMessages(conv model.Conversation) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var systemBlocks []anthropic.TextBlockParam
	anthropicMsgs := make([]anthropic.MessageParam, 0, len(conv))

	for _, msg := range conv {
		switch msg.Role {
		case model.RoleSystem:
			systemBlocks = append(systemBlocks, anthropic.TextBlockParam{
				Text: msg.Content,
			})

		case model.RoleAssistant:
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)),
			)

		default:
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)),
			)
		}
	}

	return anthropicMsgs, systemBlocks
}

func emitAnthropicText(content []anthropic.ContentBlockUnion, callback model.StreamCallback) error {
	if callback == nil {
		return nil
	}
	for _, block := range content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			if err := callback(text.Text); err != nil {
				return err
			}
		}
	}
	return nil
}
