package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements TextProvider using Claude.
type AnthropicProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicProvider creates a new AnthropicProvider with the given API key.
// An empty model selects Claude 3.5 Sonnet.
func NewAnthropicProvider(apiKey string, model string) *AnthropicProvider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	m := anthropic.ModelClaude3_5Sonnet20241022
	if model != "" {
		m = anthropic.Model(model)
	}
	return &AnthropicProvider{client: client, model: m}
}

// GenerateText sends prompt as a single user message and returns the text reply.
func (p *AnthropicProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			newUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", classifyStatus(anthropicStatus(err), fmt.Errorf("claude API error: %w", err))
	}

	return extractTextContent(resp)
}

// newUserMessage creates a user message param with the given content blocks.
func newUserMessage(blocks ...anthropic.ContentBlockParamUnion) anthropic.MessageParam {
	return anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleUser,
		Content: blocks,
	}
}

// extractTextContent returns the concatenated text blocks from a Claude response.
func extractTextContent(msg *anthropic.Message) (string, error) {
	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", errors.New("no text content in Claude response")
	}
	return text, nil
}
