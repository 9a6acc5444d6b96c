package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-1.5-pro"

// GeminiProvider implements TextProvider and ModelLister using Google Gemini.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini client authenticated with apiKey.
func NewGeminiProvider(ctx context.Context, apiKey string, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// GenerateText sends prompt as a single user turn and returns the text reply.
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(p.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyStatus(googleStatus(err), fmt.Errorf("gemini API error: %w", err))
	}

	text := extractGeminiText(resp)
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}

// ListModels returns every model visible to the API key.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var models []ModelInfo
	it := p.client.ListModels(ctx)
	for {
		m, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, classifyStatus(googleStatus(err), fmt.Errorf("gemini list models: %w", err))
		}
		models = append(models, ModelInfo{
			Name:        m.Name,
			DisplayName: m.DisplayName,
			Description: m.Description,
		})
	}
	return models, nil
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// extractGeminiText joins the text parts of the first candidate.
func extractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
