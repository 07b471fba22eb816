// Package provider implements model.Provider for the LLM backends qq can
// talk to: Anthropic, OpenAI, and a local Ollama server.
//
// The provider abstraction keeps the session controller provider-agnostic.
// Each implementation handles the conversion between qq's model.Message
// and the backend SDK's wire types, and adapts the backend's streaming
// API to the model.StreamCallback contract.
//
// The factory routes a model name to a backend the way the original
// completion libraries do: "claude-*" goes to Anthropic, "gpt-*" and the
// o-series to OpenAI, and anything else to Ollama.
package provider

// Type identifies the provider implementation.
type Type string

const (
	TypeOllama    Type = "ollama"
	TypeOpenAI    Type = "openai"
	TypeAnthropic Type = "anthropic"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    Type
	BaseURL string
	Model   string
	APIKey  string // For OpenAI/Anthropic (unused for Ollama)
}
