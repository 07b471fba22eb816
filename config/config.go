// Package config handles qq's settings file, environment overrides,
// credential checks, and debug logging.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// RequiredKeys are the credential variables that must be present before
// qq does anything else. Checked at startup, before any network call.
var RequiredKeys = []string{"OPENAI_API_KEY", "ANTHROPIC_API_KEY"}

// UserConfig mirrors the settings.toml layout.
type UserConfig struct {
	DataDirectory string          `toml:"data_directory"`
	Defaults      DefaultsConfig  `toml:"defaults"`
	Providers     ProvidersConfig `toml:"providers"`
}

type DefaultsConfig struct {
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
}

type ProvidersConfig struct {
	AnthropicBaseURL string `toml:"anthropic_base_url,omitempty"`
	OpenAIBaseURL    string `toml:"openai_base_url,omitempty"`
	OllamaHost       string `toml:"ollama_host"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DataDirectory    string
	DefaultModel     string
	Temperature      float64
	AnthropicBaseURL string
	OpenAIBaseURL    string
	OllamaHost       string
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) applyEnvOverrides() {
	if m := os.Getenv("QQ_MODEL"); m != "" {
		c.DefaultModel = m
	}
	if dataDir := os.Getenv("QQ_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if host := os.Getenv("QQ_OLLAMA_HOST"); host != "" {
		c.OllamaHost = host
	}
	if t := os.Getenv("QQ_TEMPERATURE"); t != "" {
		if v, err := strconv.ParseFloat(t, 64); err == nil {
			c.Temperature = v
		}
	}
}

// MissingCredentials returns the required credential variables that are
// not set in the environment, in declaration order.
func MissingCredentials() []string {
	var missing []string
	for _, key := range RequiredKeys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// CheckCredentials returns an error naming every missing credential
// variable, or nil when all are present.
func CheckCredentials() error {
	missing := MissingCredentials()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("the following API key(s) are not set: %s", strings.Join(missing, ", "))
}

func CheckDebug() bool {
	debug := os.Getenv("QQ_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the debug log in the data directory when debugging
// is enabled via flag or QQ_DEBUG.
func InitDebugLog(dataDir string, force bool) {
	if !force && !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600: debug output may contain prompt and response text
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== debug logging started ===")
}

// Load resolves the runtime configuration: built-in defaults, then
// settings.toml if present (created on first run), then environment
// overrides. The data directory is created if missing.
func Load() (*Config, error) {
	userCfg := DefaultUserConfig()

	settingsPath := GetSettingsFilePath()
	if FileExists(settingsPath) {
		if _, err := toml.DecodeFile(settingsPath, userCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", settingsPath, err)
		}
	} else if err := WriteDefaultSettings(); err != nil {
		return nil, fmt.Errorf("failed to create settings file: %w", err)
	}

	cfg := &Config{
		DataDirectory:    userCfg.DataDirectory,
		DefaultModel:     userCfg.Defaults.Model,
		Temperature:      userCfg.Defaults.Temperature,
		AnthropicBaseURL: userCfg.Providers.AnthropicBaseURL,
		OpenAIBaseURL:    userCfg.Providers.OpenAIBaseURL,
		OllamaHost:       userCfg.Providers.OllamaHost,
	}
	cfg.applyEnvOverrides()

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}
