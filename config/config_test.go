package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMissingCredentials(t *testing.T) {
	tests := []struct {
		name      string
		openai    string
		anthropic string
		want      []string
	}{
		{"both set", "sk-test", "sk-ant-test", nil},
		{"openai missing", "", "sk-ant-test", []string{"OPENAI_API_KEY"}},
		{"anthropic missing", "sk-test", "", []string{"ANTHROPIC_API_KEY"}},
		{"both missing", "", "", []string{"OPENAI_API_KEY", "ANTHROPIC_API_KEY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tt.openai)
			t.Setenv("ANTHROPIC_API_KEY", tt.anthropic)

			got := MissingCredentials()
			if len(got) != len(tt.want) {
				t.Fatalf("MissingCredentials() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MissingCredentials()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckCredentialsNamesMissingKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	err := CheckCredentials()
	if err == nil {
		t.Fatal("CheckCredentials() = nil, want error")
	}
	for _, key := range RequiredKeys {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("CheckCredentials() error %q does not name %s", err, key)
		}
	}
}

func TestLoadCreatesDefaultSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("QQ_MODEL", "")
	t.Setenv("QQ_DATA_DIR", "")
	t.Setenv("QQ_OLLAMA_HOST", "")
	t.Setenv("QQ_TEMPERATURE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !FileExists(filepath.Join(home, ".config", "qq", "settings.toml")) {
		t.Error("Load() did not create settings.toml on first run")
	}
	if cfg.DefaultModel == "" {
		t.Error("Load() returned empty default model")
	}
	if cfg.Temperature != 0.5 {
		t.Errorf("Load() temperature = %v, want 0.5", cfg.Temperature)
	}
	if info, err := os.Stat(cfg.DataDir()); err != nil || !info.IsDir() {
		t.Errorf("Load() did not create data directory %s", cfg.DataDir())
	}
	if cfg.DataDir() != GetDefaultDataDir() {
		t.Errorf("DataDir() = %q, want platform default %q", cfg.DataDir(), GetDefaultDataDir())
	}
}

func TestDefaultUserConfigDerivesDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := DefaultUserConfig().DataDirectory, GetDefaultDataDir(); got != want {
		t.Errorf("DefaultUserConfig().DataDirectory = %q, want %q", got, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("QQ_MODEL", "gpt-4o-mini")
	t.Setenv("QQ_DATA_DIR", filepath.Join(home, "qq-data"))
	t.Setenv("QQ_OLLAMA_HOST", "http://ollama.local:11434")
	t.Setenv("QQ_TEMPERATURE", "0.9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultModel != "gpt-4o-mini" {
		t.Errorf("DefaultModel = %q, want env override", cfg.DefaultModel)
	}
	if cfg.DataDir() != filepath.Join(home, "qq-data") {
		t.Errorf("DataDir() = %q, want env override", cfg.DataDir())
	}
	if cfg.OllamaHost != "http://ollama.local:11434" {
		t.Errorf("OllamaHost = %q, want env override", cfg.OllamaHost)
	}
	if cfg.Temperature != 0.9 {
		t.Errorf("Temperature = %v, want 0.9", cfg.Temperature)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/alice")

	if got := ExpandPath("~/data"); got != "/home/alice/data" {
		t.Errorf("ExpandPath(~/data) = %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want empty", got)
	}
}
