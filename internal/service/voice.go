package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/windoze95/cookiemice-api/internal/ai"
	"github.com/windoze95/cookiemice-api/internal/audio"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/models"
	"go.uber.org/zap"
)

// NoTranscriptText is returned when recognition produces no transcript.
const NoTranscriptText = "Could not understand audio"

// Speech language codes.
const (
	SpeechLanguageEnglish = "en-US"
	SpeechLanguageHindi   = "hi-IN"
)

// VoiceService converts between speech and text.
type VoiceService struct {
	SpeechProvider ai.SpeechProvider
}

// NewVoiceService creates a new VoiceService. A nil speechProvider means speech is not configured.
func NewVoiceService(speechProvider ai.SpeechProvider) *VoiceService {
	return &VoiceService{SpeechProvider: speechProvider}
}

// ResolveSpeechLanguage maps a language code or recipe language name onto a
// supported speech language, defaulting to en-US.
func ResolveSpeechLanguage(language string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "hi-in", "hi", strings.ToLower(string(models.LanguageHindi)), strings.ToLower(string(models.LanguageHaryanvi)):
		return SpeechLanguageHindi
	default:
		return SpeechLanguageEnglish
	}
}

// SpeechToText transcribes the recording stored at path. The caller owns the file.
func (s *VoiceService) SpeechToText(ctx context.Context, path string, language string) (string, error) {
	if s.SpeechProvider == nil {
		return "", ai.ErrNotConfigured
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read audio: %w", err)
	}

	pcm, err := audio.Decode(raw)
	if err != nil {
		if errors.Is(err, audio.ErrUnsupportedFormat) {
			return "", &models.ValidationError{Field: "audio", Message: err.Error()}
		}
		return "", fmt.Errorf("failed to decode audio: %w", err)
	}
	if len(pcm.Data) == 0 {
		return "", &models.ValidationError{Field: "audio", Message: "Audio file is empty"}
	}

	languageCode := ResolveSpeechLanguage(language)
	text, err := s.SpeechProvider.Transcribe(ctx, pcm, languageCode)
	if err != nil {
		logger.Get().Error("speech recognition failed",
			zap.String("language", languageCode),
			zap.Error(err),
		)
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return NoTranscriptText, nil
	}
	return text, nil
}

// TextToSpeech returns MP3 audio for text.
func (s *VoiceService) TextToSpeech(ctx context.Context, text string, language string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &models.ValidationError{Field: "text", Message: "No text provided"}
	}
	if s.SpeechProvider == nil {
		return nil, ai.ErrNotConfigured
	}

	languageCode := ResolveSpeechLanguage(language)
	data, err := s.SpeechProvider.Synthesize(ctx, text, languageCode)
	if err != nil {
		logger.Get().Error("speech synthesis failed",
			zap.String("language", languageCode),
			zap.Error(err),
		)
		return nil, err
	}
	return data, nil
}
