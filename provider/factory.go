package provider

import (
	"fmt"
	"strings"

	"qq/model"
)

// NewProvider creates a provider from configuration. This is the
// centralized factory; it dispatches on Config.Type.
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case TypeOllama:
		return NewOllamaProvider(cfg.BaseURL, cfg.Model)
	case TypeOpenAI:
		return NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case TypeAnthropic:
		return NewAnthropicProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// TypeForModel routes a model name to a provider type the way completion
// routers do: Claude models to Anthropic, GPT and o-series models to
// OpenAI, everything else to a local Ollama server.
func TypeForModel(modelName string) Type {
	name := strings.ToLower(modelName)
	switch {
	case strings.HasPrefix(name, "claude"):
		return TypeAnthropic
	case strings.HasPrefix(name, "gpt"),
		strings.HasPrefix(name, "o1"),
		strings.HasPrefix(name, "o3"),
		strings.HasPrefix(name, "o4"),
		strings.HasPrefix(name, "chatgpt"):
		return TypeOpenAI
	default:
		return TypeOllama
	}
}
