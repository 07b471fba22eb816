package ollama

import "testing"

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient("", "")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.GetModel() != "llama3.1:latest" {
		t.Errorf("default model = %q", client.GetModel())
	}
	if client.baseURL != "http://localhost:11434" {
		t.Errorf("default base URL = %q", client.baseURL)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	if _, err := NewClient("://not-a-url", "llama3.1"); err == nil {
		t.Fatal("NewClient() error = nil, want invalid URL error")
	}
}

func TestNewClientKeepsRequestedModel(t *testing.T) {
	client, err := NewClient("", "qwen2.5-coder")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.GetModel() != "qwen2.5-coder" {
		t.Errorf("GetModel() = %q, want %q", client.GetModel(), "qwen2.5-coder")
	}
}
