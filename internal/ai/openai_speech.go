package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/windoze95/cookiemice-api/internal/audio"
)

// openAIVoices maps a language prefix to a fixed TTS voice.
var openAIVoices = map[string]openai.SpeechVoice{
	"en": openai.VoiceAlloy,
	"hi": openai.VoiceNova,
}

// OpenAISpeechProvider implements SpeechProvider using Whisper and OpenAI TTS.
type OpenAISpeechProvider struct {
	client *openai.Client
}

// NewOpenAISpeechProvider creates a new Whisper/TTS speech provider.
func NewOpenAISpeechProvider(apiKey string) *OpenAISpeechProvider {
	return &OpenAISpeechProvider{client: openai.NewClient(apiKey)}
}

// Transcribe re-wraps the PCM as WAV and transcribes it with Whisper.
func (p *OpenAISpeechProvider) Transcribe(ctx context.Context, pcm *audio.PCM, languageCode string) (string, error) {
	if pcm == nil || len(pcm.Data) == 0 {
		return "", errors.New("audio data is empty")
	}

	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(audio.EncodeWAV(pcm)),
		FilePath: "audio.wav",
		Language: languagePrefix(languageCode),
	})
	if err != nil {
		return "", classifyStatus(openAIStatus(err), fmt.Errorf("Whisper API error: %w", err))
	}
	return strings.TrimSpace(resp.Text), nil
}

// Synthesize returns MP3 speech for text using tts-1.
func (p *OpenAISpeechProvider) Synthesize(ctx context.Context, text string, languageCode string) ([]byte, error) {
	voice, ok := openAIVoices[languagePrefix(languageCode)]
	if !ok {
		voice = openai.VoiceAlloy
	}

	resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, classifyStatus(openAIStatus(err), fmt.Errorf("OpenAI TTS error: %w", err))
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read TTS audio: %w", err)
	}
	return data, nil
}

// languagePrefix turns "hi-IN" into "hi".
func languagePrefix(languageCode string) string {
	prefix, _, _ := strings.Cut(languageCode, "-")
	return strings.ToLower(prefix)
}
