package ai

import (
	"context"
	"testing"

	"github.com/windoze95/cookiemice-api/internal/config"
)

func TestNewTextProvider_NoKey(t *testing.T) {
	cfg := &config.Config{EnvVars: config.EnvVars{GenerationProvider: config.ProviderGemini}}
	p, err := NewTextProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Error("expected nil provider without an API key")
	}
}

func TestNewTextProvider_OpenAI(t *testing.T) {
	cfg := &config.Config{EnvVars: config.EnvVars{
		GenerationProvider: config.ProviderOpenAI,
		OpenAIAPIKey:       "sk-test",
	}}
	p, err := NewTextProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*OpenAIProvider); !ok {
		t.Errorf("expected *OpenAIProvider, got %T", p)
	}
	if _, ok := p.(ModelLister); !ok {
		t.Error("expected OpenAI provider to list models")
	}
}

func TestNewTextProvider_Anthropic(t *testing.T) {
	cfg := &config.Config{EnvVars: config.EnvVars{
		GenerationProvider: config.ProviderAnthropic,
		AnthropicAPIKey:    "sk-ant-test",
	}}
	p, err := NewTextProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(ModelLister); ok {
		t.Error("anthropic provider should not implement ModelLister")
	}
}

func TestNewSpeechProvider_NoCredentials(t *testing.T) {
	for _, name := range []string{config.SpeechGoogle, config.SpeechOpenAI} {
		cfg := &config.Config{EnvVars: config.EnvVars{SpeechProvider: name}}
		p, err := NewSpeechProvider(context.Background(), cfg)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if p != nil {
			t.Errorf("%s: expected nil provider without credentials", name)
		}
	}
}

func TestNewSpeechProvider_Unknown(t *testing.T) {
	cfg := &config.Config{EnvVars: config.EnvVars{SpeechProvider: "azure"}}
	if _, err := NewSpeechProvider(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown speech provider")
	}
}
