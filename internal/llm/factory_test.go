package llm

import (
	"strings"
	"testing"
)

func TestNewProvider_EmptyDisablesPipeline(t *testing.T) {
	p, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("empty provider should not error: %v", err)
	}
	if p != nil {
		t.Error("expected nil provider when none is configured")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "bard"}); err == nil {
		t.Error("expected error for unknown provider")
	} else if !strings.Contains(err.Error(), "bard") {
		t.Errorf("error should name the provider, got %v", err)
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("expected error without API key")
	}

	p, err := NewProvider(Config{Provider: "OpenAI", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("expected openai, got %q", p.Name())
	}
}

func TestNewProvider_ClaudeAlias(t *testing.T) {
	p, err := NewProvider(Config{Provider: "claude", APIKey: "sk-ant-test"})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if p.Name() != "anthropic" {
		t.Errorf("expected anthropic for the claude alias, got %q", p.Name())
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	p, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("ollama needs no API key: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("expected ollama, got %q", p.Name())
	}
}
