package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/service"
	"go.uber.org/zap"
)

// MaxAudioUploadSize caps speech-to-text uploads.
const MaxAudioUploadSize = 10 << 20

// VoiceHandler is the handler for speech-to-text and text-to-speech requests.
type VoiceHandler struct {
	Service   *service.VoiceService
	UploadDir string
}

// NewVoiceHandler is the constructor function for initializing a new VoiceHandler.
// Uploads are staged under uploadDir for the duration of a request.
func NewVoiceHandler(voiceService *service.VoiceService, uploadDir string) *VoiceHandler {
	return &VoiceHandler{Service: voiceService, UploadDir: uploadDir}
}

// SpeechToText transcribes the multipart "audio" file.
func (h *VoiceHandler) SpeechToText(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxAudioUploadSize)

	file, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}

	path := filepath.Join(h.UploadDir, uuid.NewString())
	// a failed copy can still leave a partial file behind
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.For(c).Warn("failed to remove staged upload", zap.String("path", path), zap.Error(err))
		}
	}()
	src, err := file.Open()
	if err != nil {
		respondError(c, err, "open audio upload")
		return
	}
	defer src.Close()
	if err := stageUpload(src, path); err != nil {
		respondError(c, err, "stage audio upload")
		return
	}

	text, err := h.Service.SpeechToText(c.Request.Context(), path, c.PostForm("language"))
	if err != nil {
		respondUpstreamError(c, err, "transcribe audio", speechUpstream)
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// stageUpload copies src to path. A partially written file is removed on failure.
func stageUpload(src io.Reader, path string) error {
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create staged upload: %w", err)
	}
	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write staged upload: %w", copyErr)
	}
	return nil
}

type textToSpeechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// TextToSpeech returns MP3 audio for the requested text.
func (h *VoiceHandler) TextToSpeech(c *gin.Context) {
	var req textToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	}

	data, err := h.Service.TextToSpeech(c.Request.Context(), req.Text, req.Language)
	if err != nil {
		respondUpstreamError(c, err, "synthesize speech", speechUpstream)
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", data)
}
