package ai

import (
	"context"
	"fmt"

	"github.com/windoze95/cookiemice-api/internal/config"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// NewTextProvider builds the generation provider selected by GENERATION_PROVIDER.
// It returns a nil provider and no error when the provider has no credential,
// so callers can degrade instead of failing at startup.
func NewTextProvider(ctx context.Context, cfg *config.Config) (TextProvider, error) {
	apiKey := cfg.GenerationAPIKey()
	if apiKey == "" {
		logger.Get().Warn("generation API key not set, AI answers disabled",
			zap.String("provider", cfg.EnvVars.GenerationProvider))
		return nil, nil
	}

	model := cfg.EnvVars.GenerationModel
	switch cfg.EnvVars.GenerationProvider {
	case config.ProviderAnthropic:
		return NewAnthropicProvider(apiKey, model), nil
	case config.ProviderOpenAI:
		return NewOpenAIProvider(apiKey, model), nil
	case config.ProviderGemini:
		p, err := NewGeminiProvider(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.EnvVars.GenerationProvider)
	}
}

// NewSpeechProvider builds the speech provider selected by SPEECH_PROVIDER.
// Like NewTextProvider it returns nil, nil when no credential is available.
func NewSpeechProvider(ctx context.Context, cfg *config.Config) (SpeechProvider, error) {
	switch cfg.EnvVars.SpeechProvider {
	case config.SpeechOpenAI:
		if cfg.EnvVars.OpenAIAPIKey == "" {
			logger.Get().Warn("OPENAI_API_KEY not set, speech endpoints disabled")
			return nil, nil
		}
		return NewOpenAISpeechProvider(cfg.EnvVars.OpenAIAPIKey), nil
	case config.SpeechGoogle:
		var opts []option.ClientOption
		switch {
		case cfg.EnvVars.GoogleCredentials != "":
			opts = append(opts, option.WithCredentialsFile(cfg.EnvVars.GoogleCredentials))
		case cfg.EnvVars.GoogleAPIKey != "":
			opts = append(opts, option.WithAPIKey(cfg.EnvVars.GoogleAPIKey))
		default:
			logger.Get().Warn("no Google credentials set, speech endpoints disabled")
			return nil, nil
		}
		p, err := NewGoogleSpeechProvider(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown speech provider %q", cfg.EnvVars.SpeechProvider)
	}
}
