package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("GENERATION_PROVIDER", "gemini")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.EnvVars.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.EnvVars.Port)
	}
	if !cfg.EnvVars.AISoftDegrade {
		t.Error("AISoftDegrade should default to true")
	}
	if cfg.EnvVars.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.EnvVars.RequestTimeout)
	}
	if err := cfg.CheckConfigEnvFields(); err != nil {
		t.Errorf("CheckConfigEnvFields error: %v", err)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_SOFT_DEGRADE", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.EnvVars.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.EnvVars.Port)
	}
	if cfg.EnvVars.AISoftDegrade {
		t.Error("AISoftDegrade should be false")
	}
	if len(cfg.EnvVars.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want 2 entries", cfg.EnvVars.CORSOrigins)
	}
	if cfg.EnvVars.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.EnvVars.RequestTimeout)
	}
}

func TestCheckConfigEnvFields_MissingRequired(t *testing.T) {
	cfg := &Config{EnvVars: EnvVars{Port: "3000"}}
	err := cfg.CheckConfigEnvFields()
	if err == nil {
		t.Fatal("CheckConfigEnvFields should fail when DATABASE_URL is empty")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error = %q, want it to name DATABASE_URL", err.Error())
	}
}

func TestValidate_Providers(t *testing.T) {
	cfg := &Config{EnvVars: EnvVars{GenerationProvider: "anthropic", SpeechProvider: "openai"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate error: %v", err)
	}

	cfg.EnvVars.GenerationProvider = "palm"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject an unknown generation provider")
	}

	cfg.EnvVars.GenerationProvider = "gemini"
	cfg.EnvVars.SpeechProvider = "vosk"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject an unknown speech provider")
	}
}

func TestGenerationAPIKey(t *testing.T) {
	cfg := &Config{EnvVars: EnvVars{
		GoogleAPIKey:    "g",
		AnthropicAPIKey: "a",
		OpenAIAPIKey:    "o",
	}}

	cases := map[string]string{ProviderGemini: "g", ProviderAnthropic: "a", ProviderOpenAI: "o"}
	for provider, want := range cases {
		cfg.EnvVars.GenerationProvider = provider
		if got := cfg.GenerationAPIKey(); got != want {
			t.Errorf("GenerationAPIKey(%s) = %q, want %q", provider, got, want)
		}
	}
}

func TestRenderPrompt(t *testing.T) {
	got, err := RenderPrompt("Respond in {{.Language}}. {{.RecipeContext}}", map[string]interface{}{
		"Language":      "Hindi",
		"RecipeContext": "",
	})
	if err != nil {
		t.Fatalf("RenderPrompt error: %v", err)
	}
	if got != "Respond in Hindi." {
		t.Errorf("RenderPrompt = %q, want 'Respond in Hindi.'", got)
	}
}

func TestRenderPrompt_BadTemplate(t *testing.T) {
	if _, err := RenderPrompt("{{.Language", nil); err == nil {
		t.Error("RenderPrompt should fail on an unterminated action")
	}
}

func TestLoadPrompts_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte("ask:\n  system: \"Chef mode. Respond in {{.Language}}.\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	prompts, err := LoadPrompts(path)
	if err != nil {
		t.Fatalf("LoadPrompts error: %v", err)
	}
	if prompts.Ask.System != "Chef mode. Respond in {{.Language}}." {
		t.Errorf("Ask.System = %q", prompts.Ask.System)
	}
}

func TestLoadPrompts_EmptyFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte("ask: {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	prompts, err := LoadPrompts(path)
	if err != nil {
		t.Fatalf("LoadPrompts error: %v", err)
	}
	if prompts.Ask.System != DefaultPrompts().Ask.System {
		t.Error("empty ask.system should fall back to the default prompt")
	}
}

func TestLoadPrompts_ShippedFile(t *testing.T) {
	prompts, err := LoadPrompts("../../configs/prompts.yaml")
	if err != nil {
		t.Fatalf("LoadPrompts error: %v", err)
	}
	if !strings.Contains(prompts.Ask.System, "{{.Language}}") {
		t.Error("shipped ask prompt should interpolate the language")
	}
}

func TestLoadPrompts_MissingFile(t *testing.T) {
	if _, err := LoadPrompts(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadPrompts should fail for a missing file")
	}
}
