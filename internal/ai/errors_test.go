package ai

import (
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

func TestClassifyStatus_Unauthorized(t *testing.T) {
	upstream := errors.New("boom")
	err := classifyStatus(http.StatusUnauthorized, upstream)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if !errors.Is(err, upstream) {
		t.Error("expected upstream error to stay in the chain")
	}
}

func TestClassifyStatus_Forbidden(t *testing.T) {
	if err := classifyStatus(http.StatusForbidden, errors.New("x")); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestClassifyStatus_NotFound(t *testing.T) {
	if err := classifyStatus(http.StatusNotFound, errors.New("x")); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestClassifyStatus_Other(t *testing.T) {
	upstream := errors.New("server exploded")
	err := classifyStatus(http.StatusInternalServerError, upstream)
	if err != upstream {
		t.Errorf("expected upstream error unchanged, got %v", err)
	}
}

func TestOpenAIStatus(t *testing.T) {
	err := &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}
	if got := openAIStatus(err); got != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", got)
	}
	if got := openAIStatus(errors.New("plain")); got != 0 {
		t.Errorf("expected 0 for unknown error, got %d", got)
	}
}

func TestGoogleStatus_APIError(t *testing.T) {
	err := &googleapi.Error{Code: http.StatusNotFound, Message: "model not found"}
	if got := googleStatus(err); got != http.StatusNotFound {
		t.Errorf("expected 404, got %d", got)
	}
}

func TestGoogleStatus_InvalidKeyMessage(t *testing.T) {
	err := errors.New("googleapi: Error 400: API key not valid. Please pass a valid API key.")
	if got := googleStatus(err); got != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", got)
	}
}

func TestLanguagePrefix(t *testing.T) {
	if got := languagePrefix("hi-IN"); got != "hi" {
		t.Errorf("expected hi, got %q", got)
	}
	if got := languagePrefix("EN"); got != "en" {
		t.Errorf("expected en, got %q", got)
	}
}
