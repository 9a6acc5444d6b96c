package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/cookiemice-api/internal/ai"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/service"
	"go.uber.org/zap"
)

// AskHandler is the handler for question answering and model listing.
type AskHandler struct {
	Service *service.AskService
}

// NewAskHandler is the constructor function for initializing a new AskHandler.
func NewAskHandler(askService *service.AskService) *AskHandler {
	return &AskHandler{Service: askService}
}

type askRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

// Ask answers a cooking question. ?format=html adds an HTML rendering of the answer.
func (h *AskHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	answer, err := h.Service.Ask(c.Request.Context(), req.Question, req.Language)
	if err != nil {
		respondUpstreamError(c, err, "answer question", generationUpstream)
		return
	}

	resp := gin.H{"answer": answer}
	if c.Query("format") == "html" {
		html, err := service.RenderHTML(answer)
		if err != nil {
			logger.For(c).Warn("failed to render answer html", zap.Error(err))
		} else {
			resp["answerHtml"] = html
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ListModels returns the models offered by the generation provider.
func (h *AskHandler) ListModels(c *gin.Context) {
	models, err := h.Service.ListModels(c.Request.Context())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"models": models})
	case errors.Is(err, ai.ErrNotConfigured):
		c.JSON(http.StatusOK, gin.H{"error": generationUpstream.notConfigured})
	case errors.Is(err, service.ErrListingUnsupported):
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	default:
		respondUpstreamError(c, err, "list models", generationUpstream)
	}
}
