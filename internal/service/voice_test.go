package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/windoze95/cookiemice-api/internal/ai"
	"github.com/windoze95/cookiemice-api/internal/audio"
	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/testutil"
)

func writeTempAudio(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.wav")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write temp audio: %v", err)
	}
	return path
}

func TestResolveSpeechLanguage(t *testing.T) {
	cases := map[string]string{
		"":         SpeechLanguageEnglish,
		"English":  SpeechLanguageEnglish,
		"en-US":    SpeechLanguageEnglish,
		"hi-IN":    SpeechLanguageHindi,
		"Hindi":    SpeechLanguageHindi,
		"Haryanvi": SpeechLanguageHindi,
		"fr-FR":    SpeechLanguageEnglish,
	}
	for in, want := range cases {
		if got := ResolveSpeechLanguage(in); got != want {
			t.Errorf("ResolveSpeechLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSpeechToText_Transcript(t *testing.T) {
	var gotPCM *audio.PCM
	var gotLang string
	provider := &testutil.MockSpeechProvider{
		TranscribeFunc: func(ctx context.Context, pcm *audio.PCM, languageCode string) (string, error) {
			gotPCM, gotLang = pcm, languageCode
			return "how do I make chai", nil
		},
	}
	svc := NewVoiceService(provider)

	text, err := svc.SpeechToText(context.Background(), writeTempAudio(t, testutil.TestWAV()), "hi-IN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "how do I make chai" {
		t.Errorf("text = %q", text)
	}
	if gotLang != "hi-IN" {
		t.Errorf("language = %q, want hi-IN", gotLang)
	}
	if gotPCM == nil || len(gotPCM.Data) != len(testutil.TestPCM().Data) {
		t.Error("expected WAV header to be stripped before recognition")
	}
}

func TestSpeechToText_NoTranscript(t *testing.T) {
	provider := &testutil.MockSpeechProvider{
		TranscribeFunc: func(ctx context.Context, pcm *audio.PCM, languageCode string) (string, error) {
			return "", nil
		},
	}
	svc := NewVoiceService(provider)

	text, err := svc.SpeechToText(context.Background(), writeTempAudio(t, testutil.TestWAV()), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != NoTranscriptText {
		t.Errorf("text = %q, want %q", text, NoTranscriptText)
	}
}

func TestSpeechToText_UnsupportedWAV(t *testing.T) {
	pcm := testutil.TestPCM()
	pcm.SampleRate = 44100
	svc := NewVoiceService(&testutil.MockSpeechProvider{})

	_, err := svc.SpeechToText(context.Background(), writeTempAudio(t, audio.EncodeWAV(pcm)), "")
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "audio" {
		t.Fatalf("expected audio ValidationError, got %v", err)
	}
}

func TestSpeechToText_NotConfigured(t *testing.T) {
	svc := NewVoiceService(nil)

	_, err := svc.SpeechToText(context.Background(), writeTempAudio(t, testutil.TestWAV()), "")
	if !errors.Is(err, ai.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestTextToSpeech(t *testing.T) {
	var gotLang string
	provider := &testutil.MockSpeechProvider{
		SynthesizeFunc: func(ctx context.Context, text string, languageCode string) ([]byte, error) {
			gotLang = languageCode
			return []byte("ID3"), nil
		},
	}
	svc := NewVoiceService(provider)

	data, err := svc.TextToSpeech(context.Background(), "Namaste", "Haryanvi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "ID3" {
		t.Errorf("data = %q", data)
	}
	if gotLang != SpeechLanguageHindi {
		t.Errorf("language = %q, want hi-IN", gotLang)
	}
}

func TestTextToSpeech_EmptyText(t *testing.T) {
	svc := NewVoiceService(nil)

	_, err := svc.TextToSpeech(context.Background(), "  ", "")
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) || vErr.Message != "No text provided" {
		t.Fatalf("expected 'No text provided', got %v", err)
	}
}

func TestTextToSpeech_UpstreamAuthError(t *testing.T) {
	provider := &testutil.MockSpeechProvider{
		SynthesizeFunc: func(ctx context.Context, text string, languageCode string) ([]byte, error) {
			return nil, ai.ErrInvalidCredentials
		},
	}
	svc := NewVoiceService(provider)

	if _, err := svc.TextToSpeech(context.Background(), "hello", ""); !errors.Is(err, ai.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
