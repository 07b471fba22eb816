// Package testutil provides mock providers for testing the session
// controller without network access.
package testutil

import (
	"context"
	"strings"

	"qq/model"
)

// MockProvider implements model.Provider for testing.
type MockProvider struct {
	// Fragments are delivered through the callback on each Chat call
	// when ChatFunc is not overridden: one at a time when streaming,
	// joined into a single callback otherwise.
	Fragments []string

	// ChatFunc overrides the default streaming behavior.
	ChatFunc func(ctx context.Context, conv model.Conversation, opts model.Options, callback model.StreamCallback) error

	// PingFunc overrides the default Ping behavior.
	PingFunc func(ctx context.Context) error

	// Conversations records the conversation passed to each Chat call.
	Conversations []model.Conversation

	currentModel string
}

// NewMockProvider creates a mock provider that streams the given
// fragments on every Chat call.
func NewMockProvider(modelName string, fragments ...string) *MockProvider {
	return &MockProvider{
		Fragments:    fragments,
		currentModel: modelName,
	}
}

func (m *MockProvider) Chat(ctx context.Context, conv model.Conversation, opts model.Options, callback model.StreamCallback) error {
	m.Conversations = append(m.Conversations, append(model.Conversation(nil), conv...))
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, conv, opts, callback)
	}
	if !opts.Stream {
		return callback(strings.Join(m.Fragments, ""))
	}
	for _, fragment := range m.Fragments {
		if err := callback(fragment); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// SingleUserMessage builds a minimal conversation for tests.
func SingleUserMessage(content string) model.Conversation {
	conv := model.NewConversation("test system prompt")
	conv.AddUser(content)
	return conv
}
