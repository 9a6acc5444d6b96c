package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// SinglePrompt holds a single system prompt (no user template).
type SinglePrompt struct {
	System string `yaml:"system"`
}

// Prompts is the top-level prompt configuration loaded from YAML.
type Prompts struct {
	Ask SinglePrompt `yaml:"ask"`
}

const defaultAskSystem = `You are a helpful cooking assistant. Provide concise, accurate cooking advice.
Always format your answer as structured markdown:
- start with a headline (# Title),
- follow with a short sub-headline (## ...),
- give the details as a bulleted list,
- end with a callout block (> Tip: ...) that summarises the key takeaway.
Respond in {{.Language}}. {{.RecipeContext}}`

// DefaultPrompts returns the built-in prompt set used when no file is configured.
func DefaultPrompts() *Prompts {
	return &Prompts{
		Ask: SinglePrompt{System: defaultAskSystem},
	}
}

// LoadPrompts reads and parses a YAML prompt configuration file. Missing
// entries fall back to DefaultPrompts.
func LoadPrompts(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	prompts := DefaultPrompts()
	if err := yaml.Unmarshal(data, prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompts YAML: %w", err)
	}
	if strings.TrimSpace(prompts.Ask.System) == "" {
		prompts.Ask.System = defaultAskSystem
	}

	return prompts, nil
}

// RenderPrompt executes Go template interpolation on a prompt string.
// The data map provides values for template placeholders like {{.Language}}
// and {{.RecipeContext}}.
func RenderPrompt(tmpl string, data map[string]interface{}) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
