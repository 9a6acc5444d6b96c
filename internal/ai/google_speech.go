package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/windoze95/cookiemice-api/internal/audio"
	"google.golang.org/api/option"
	speech "google.golang.org/api/speech/v1"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

// googleVoices is the fixed voice used for each supported language.
var googleVoices = map[string]texttospeech.VoiceSelectionParams{
	"en-US": {LanguageCode: "en-US", Name: "en-US-Standard-C", SsmlGender: "FEMALE"},
	"hi-IN": {LanguageCode: "hi-IN", Name: "hi-IN-Standard-A", SsmlGender: "FEMALE"},
}

// GoogleSpeechProvider implements SpeechProvider using Cloud Speech-to-Text
// and Cloud Text-to-Speech.
type GoogleSpeechProvider struct {
	stt *speech.Service
	tts *texttospeech.Service
}

// NewGoogleSpeechProvider creates both Cloud speech services with the same credentials.
func NewGoogleSpeechProvider(ctx context.Context, opts ...option.ClientOption) (*GoogleSpeechProvider, error) {
	stt, err := speech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech-to-text client: %w", err)
	}
	tts, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &GoogleSpeechProvider{stt: stt, tts: tts}, nil
}

// Transcribe submits LINEAR16 audio and joins the top alternative of each result.
func (p *GoogleSpeechProvider) Transcribe(ctx context.Context, pcm *audio.PCM, languageCode string) (string, error) {
	if pcm == nil || len(pcm.Data) == 0 {
		return "", errors.New("audio data is empty")
	}

	req := &speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			Encoding:          "LINEAR16",
			SampleRateHertz:   int64(pcm.SampleRate),
			AudioChannelCount: int64(pcm.Channels),
			LanguageCode:      languageCode,
		},
		Audio: &speech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(pcm.Data),
		},
	}

	resp, err := p.stt.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", classifyStatus(googleStatus(err), fmt.Errorf("speech-to-text API error: %w", err))
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		if t := strings.TrimSpace(result.Alternatives[0].Transcript); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}

// Synthesize requests MP3 audio for text with the language's fixed voice.
func (p *GoogleSpeechProvider) Synthesize(ctx context.Context, text string, languageCode string) ([]byte, error) {
	voice, ok := googleVoices[languageCode]
	if !ok {
		voice = texttospeech.VoiceSelectionParams{LanguageCode: languageCode, SsmlGender: "NEUTRAL"}
	}

	req := &texttospeech.SynthesizeSpeechRequest{
		Input:       &texttospeech.SynthesisInput{Text: text},
		Voice:       &voice,
		AudioConfig: &texttospeech.AudioConfig{AudioEncoding: "MP3"},
	}

	resp, err := p.tts.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, classifyStatus(googleStatus(err), fmt.Errorf("text-to-speech API error: %w", err))
	}

	audioBytes, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("base64 decode error: %w", err)
	}
	return audioBytes, nil
}
