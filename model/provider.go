package model

import "context"

// Provider abstracts LLM provider implementations (Anthropic, OpenAI,
// Ollama) using qq's provider-agnostic types.
//
// This interface lives in the model package rather than the provider
// package so implementations can import model without creating an import
// cycle.
type Provider interface {
	// Chat sends the conversation and delivers the response through the
	// callback. With Options.Stream set, the callback fires once per
	// fragment as it arrives; otherwise it fires once with the full text.
	Chat(ctx context.Context, conv Conversation, opts Options, callback StreamCallback) error

	// GetModel returns the currently selected model name.
	GetModel() string

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// StreamCallback is called for each fragment of the response. Returning
// an error aborts the exchange.
type StreamCallback func(chunk string) error

// Options carries per-request sampling and transport parameters.
type Options struct {
	Temperature float64
	Stream      bool
}
