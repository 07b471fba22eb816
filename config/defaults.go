package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultUserConfig returns the built-in settings used when no
// settings.toml exists yet.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		DataDirectory: GetDefaultDataDir(),
		Defaults: DefaultsConfig{
			Model:       "claude-sonnet-4-5-20250929",
			Temperature: 0.5,
		},
		Providers: ProvidersConfig{
			OllamaHost: "http://localhost:11434",
		},
	}
}

// WriteDefaultSettings creates the config directory and writes a
// settings.toml with the built-in defaults. Called on first run.
func WriteDefaultSettings() error {
	if err := os.MkdirAll(GetConfigDir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(DefaultUserConfig()); err != nil {
		return fmt.Errorf("failed to encode default settings: %w", err)
	}

	// 0600: keeps the settings file private like the rest of the data dir
	return os.WriteFile(GetSettingsFilePath(), buf.Bytes(), 0600)
}
