package ai

import (
	"context"
	"errors"

	"github.com/windoze95/cookiemice-api/internal/audio"
)

// TextProvider sends a fully assembled prompt to a text-generation API.
type TextProvider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ModelLister is implemented by text providers that can enumerate their models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// SpeechProvider handles speech-to-text and text-to-speech.
type SpeechProvider interface {
	// Transcribe returns the best transcript, or "" when nothing was recognised.
	Transcribe(ctx context.Context, pcm *audio.PCM, languageCode string) (string, error)
	// Synthesize returns MP3 audio for text in the given BCP-47 language.
	Synthesize(ctx context.Context, text string, languageCode string) ([]byte, error)
}

// ModelInfo describes one model offered by a text provider.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}

var (
	// ErrNotConfigured means no client could be built for the upstream API.
	ErrNotConfigured = errors.New("AI service not configured")
	// ErrInvalidCredentials means the upstream API rejected our credentials.
	ErrInvalidCredentials = errors.New("invalid API credentials")
	// ErrModelUnavailable means the requested model or service does not exist.
	ErrModelUnavailable = errors.New("model not found or not supported")
)
