package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qq/provider"
	"qq/provider/testutil"
)

func TestPreflightPingsOllama(t *testing.T) {
	mock := testutil.NewMockProvider("llama3.1:latest")
	pinged := false
	mock.PingFunc = func(ctx context.Context) error {
		pinged = true
		return nil
	}

	if err := preflight(context.Background(), mock, provider.TypeOllama); err != nil {
		t.Fatalf("preflight() error = %v", err)
	}
	if !pinged {
		t.Error("preflight() did not ping the Ollama provider")
	}
}

func TestPreflightReportsUnreachableOllama(t *testing.T) {
	mock := testutil.NewMockProvider("llama3.1:latest")
	mock.PingFunc = func(ctx context.Context) error {
		return errors.New("connection refused")
	}

	err := preflight(context.Background(), mock, provider.TypeOllama)
	if err == nil {
		t.Fatal("preflight() error = nil, want unreachable error")
	}
	if !strings.Contains(err.Error(), "not reachable") {
		t.Errorf("preflight() error = %q, want mention of reachability", err)
	}
}

func TestPreflightSkipsHostedBackends(t *testing.T) {
	for _, providerType := range []provider.Type{provider.TypeAnthropic, provider.TypeOpenAI} {
		mock := testutil.NewMockProvider("test-model")
		mock.PingFunc = func(ctx context.Context) error {
			t.Errorf("preflight() pinged %s backend", providerType)
			return nil
		}
		if err := preflight(context.Background(), mock, providerType); err != nil {
			t.Errorf("preflight(%s) error = %v", providerType, err)
		}
	}
}
