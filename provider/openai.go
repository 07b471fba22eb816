package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"qq/model"
)

// OpenAIProvider implements model.Provider using the official OpenAI Go
// SDK.
type OpenAIProvider struct {
	client  openai.Client
	model   string
	baseURL string
	apiKey  string
}

// NewOpenAIProvider creates a new OpenAI provider instance.
// Returns an error if the API key is missing.
func NewOpenAIProvider(baseURL, apiKey, modelName string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAIProvider{
		client:  client,
		model:   modelName,
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

// Chat implements model.Provider.Chat.
func (p *OpenAIProvider) Chat(ctx context.Context, conv model.Conversation, opts model.Options, callback model.StreamCallback) error {
	params := openai.ChatCompletionNewParams{
		Messages:    convertToOpenAIMessages(conv),
		Model:       openai.ChatModel(p.model),
		Temperature: openai.Float(opts.Temperature),
	}

	if !opts.Stream {
		resp, err := p.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return fmt.Errorf("OpenAI request failed: %w", err)
		}
		if len(resp.Choices) > 0 && callback != nil {
			return callback(resp.Choices[0].Message.Content)
		}
		return nil
	}

	stream := p.client.Chat.Completions.NewStreaming(ctx, params)

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			if callback != nil {
				if err := callback(chunk.Choices[0].Delta.Content); err != nil {
					return err
				}
			}
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("OpenAI streaming error: %w", err)
	}

	return nil
}

// GetModel implements model.Provider.GetModel.
func (p *OpenAIProvider) GetModel() string {
	return p.model
}

// Ping implements model.Provider.Ping by attempting to list models.
func (p *OpenAIProvider) Ping(ctx context.Context) error {
	_, err := p.client.Models.List(ctx)
	if err != nil {
		return fmt.Errorf("OpenAI ping failed: %w", err)
	}
	return nil
}

// convertToOpenAIMessages converts qq messages to OpenAI chat format.
func convertToOpenAIMessages(conv model.Conversation) []openai.ChatCompletionMessageParamUnion {
	openaiMsgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(conv))

	for _, msg := range conv {
		switch msg.Role {
		case model.RoleSystem:
			openaiMsgs = append(openaiMsgs, openai.SystemMessage(msg.Content))
		case model.RoleAssistant:
			openaiMsgs = append(openaiMsgs, openai.AssistantMessage(msg.Content))
		default:
			openaiMsgs = append(openaiMsgs, openai.UserMessage(msg.Content))
		}
	}

	return openaiMsgs
}
