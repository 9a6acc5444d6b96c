package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/cookiemice-api/internal/ai"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/repository"
	"go.uber.org/zap"
)

// upstream names the external API a handler depends on, for error messages.
type upstream struct {
	notConfigured      string
	invalidCredentials string
	unavailable        string
}

var (
	generationUpstream = upstream{
		notConfigured:      "AI service not configured.",
		invalidCredentials: "Invalid AI API key. Please check the generation API key configuration.",
		unavailable:        "AI model not found or not supported. Please check GENERATION_MODEL.",
	}
	speechUpstream = upstream{
		notConfigured:      "Speech service not configured.",
		invalidCredentials: "Invalid speech service credentials. Please check the speech API configuration.",
		unavailable:        "Speech service not found or not supported.",
	}
)

// respondError writes the {"error": ...} response matching err's type.
// Unexpected errors are logged; action describes the failed operation.
func respondError(c *gin.Context, err error, action string) {
	var (
		vErr  *models.ValidationError
		nfErr repository.NotFoundError
	)

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		logger.For(c).Warn("request timed out during "+action, zap.Error(err))
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out"})
	default:
		logger.For(c).Error("failed to "+action, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error: " + err.Error()})
	}
}

// respondUpstreamError is respondError for handlers backed by an external API.
func respondUpstreamError(c *gin.Context, err error, action string, up upstream) {
	var msg string
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		msg = up.notConfigured
	case errors.Is(err, ai.ErrInvalidCredentials):
		msg = up.invalidCredentials
	case errors.Is(err, ai.ErrModelUnavailable):
		msg = up.unavailable
	default:
		respondError(c, err, action)
		return
	}

	logger.For(c).Error("failed to "+action, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
