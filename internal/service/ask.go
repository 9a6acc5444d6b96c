package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/windoze95/cookiemice-api/internal/ai"
	"github.com/windoze95/cookiemice-api/internal/config"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
)

// NotConfiguredAnswer is returned in place of an answer when no generation
// provider is configured and soft degradation is enabled.
const NotConfiguredAnswer = "AI service not configured. Please set the generation API key environment variable."

// ErrListingUnsupported is returned by ListModels for providers that cannot enumerate models.
var ErrListingUnsupported = errors.New("model listing not supported by this provider")

// AskService answers free-form cooking questions.
type AskService struct {
	Prompts      *config.Prompts
	TextProvider ai.TextProvider
	Selector     *RecipeContextSelector
	// SoftDegrade answers with NotConfiguredAnswer instead of failing when
	// TextProvider is nil.
	SoftDegrade bool
}

// NewAskService creates a new AskService. A nil textProvider means generation is not configured.
func NewAskService(cfg *config.Config, textProvider ai.TextProvider, selector *RecipeContextSelector) *AskService {
	prompts := cfg.Prompts
	if prompts == nil {
		prompts = config.DefaultPrompts()
	}
	return &AskService{
		Prompts:      prompts,
		TextProvider: textProvider,
		Selector:     selector,
		SoftDegrade:  cfg.EnvVars.AISoftDegrade,
	}
}

// Ask builds the prompt for question and returns the provider's answer.
// language is free-form text for the response language; "" means English.
func (s *AskService) Ask(ctx context.Context, question string, language string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", &models.ValidationError{Field: "question", Message: "No question provided"}
	}
	lang := models.ResolveLanguage(language)

	if s.TextProvider == nil {
		if s.SoftDegrade {
			return NotConfiguredAnswer, nil
		}
		return "", ai.ErrNotConfigured
	}

	hint, err := s.Selector.BuildHint(ctx, question, lang)
	if err != nil {
		return "", err
	}

	system, err := config.RenderPrompt(s.Prompts.Ask.System, map[string]interface{}{
		"Language":      string(lang),
		"RecipeContext": hint,
	})
	if err != nil {
		return "", err
	}

	answer, err := s.TextProvider.GenerateText(ctx, system+"\n\nUser: "+question)
	if err != nil {
		logger.Get().Error("answer generation failed",
			zap.String("language", string(lang)),
			zap.Error(err),
		)
		return "", err
	}
	return answer, nil
}

// ListModels returns the models offered by the configured provider.
func (s *AskService) ListModels(ctx context.Context) ([]ai.ModelInfo, error) {
	if s.TextProvider == nil {
		return nil, ai.ErrNotConfigured
	}
	lister, ok := s.TextProvider.(ai.ModelLister)
	if !ok {
		return nil, ErrListingUnsupported
	}

	list, err := lister.ListModels(ctx)
	if err != nil {
		logger.Get().Error("model listing failed", zap.Error(err))
		return nil, err
	}
	if list == nil {
		list = []ai.ModelInfo{}
	}
	return list, nil
}

// RenderHTML converts a markdown answer to HTML.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render answer: %w", err)
	}
	return buf.String(), nil
}
