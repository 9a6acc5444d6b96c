package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements TextProvider and ModelLister using OpenAI chat completions.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI chat provider. An empty model selects GPT-4o mini.
func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{client: openai.NewClient(apiKey), model: model}
}

// GenerateText sends prompt as a single user message and returns the reply.
func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyStatus(openAIStatus(err), fmt.Errorf("OpenAI API error: %w", err))
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("OpenAI API returned an empty message")
	}
	return resp.Choices[0].Message.Content, nil
}

// ListModels returns the models visible to the API key.
func (p *OpenAIProvider) ListModels(ctx context.Context) ([]ModelInfo, error) {
	list, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, classifyStatus(openAIStatus(err), fmt.Errorf("OpenAI list models: %w", err))
	}
	models := make([]ModelInfo, len(list.Models))
	for i, m := range list.Models {
		models[i] = ModelInfo{Name: m.ID}
	}
	return models, nil
}
